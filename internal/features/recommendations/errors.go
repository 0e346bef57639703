package recommendations

import (
	"fmt"

	apperrors "github.com/xyz-asif/studycoach/pkg/errors"
)

// ServiceError describes a failed call to the recommendation service.
// StatusCode is zero when no response was received.
type ServiceError struct {
	StatusCode int
	URL        string
	Body       string
	Kind       apperrors.Kind
	Err        error
}

func (e *ServiceError) Error() string {
	msg := fmt.Sprintf("recommender %s", e.URL)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" returned %d", e.StatusCode)
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the matching sentinel first, then the cause
func (e *ServiceError) Unwrap() []error {
	errs := []error{e.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (e *ServiceError) sentinel() *apperrors.Error {
	switch e.Kind {
	case apperrors.KindServiceUnavailable:
		return apperrors.ErrRecommenderDown
	case apperrors.KindValidation:
		return apperrors.ErrRecommenderRequest
	default:
		return apperrors.ErrRecommenderFailed
	}
}

// Details is surfaced in the response data
func (e *ServiceError) Details() map[string]interface{} {
	details := map[string]interface{}{"url": e.URL}
	if e.StatusCode != 0 {
		details["status"] = e.StatusCode
	}
	if e.Body != "" {
		details["body"] = e.Body
	}
	return details
}

func (e *ServiceError) outcome() string {
	switch e.Kind {
	case apperrors.KindServiceUnavailable:
		return "unavailable"
	case apperrors.KindValidation:
		return "bad_request"
	default:
		return "upstream"
	}
}
