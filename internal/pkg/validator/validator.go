package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
)

const (
	// MinPasswordLength applies to registration and password changes
	MinPasswordLength = 12
	// MaxPasswordBytes is the bcrypt input limit
	MaxPasswordBytes = 72

	passwordSpecials = `!@#$%^&*(),.?":{}|<>`
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	registerOnce sync.Once
	registerErr  error
)

// IsValidEmail checks the loose email shape used across the API
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// PasswordProblems lists every rule the password breaks, in a fixed order
func PasswordProblems(password string) []string {
	var (
		hasUpper   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsDigit(char):
			hasNumber = true
		case strings.ContainsRune(passwordSpecials, char):
			hasSpecial = true
		}
	}

	var problems []string
	if len(password) < MinPasswordLength {
		problems = append(problems, fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength))
	}
	if len(password) > MaxPasswordBytes {
		problems = append(problems, fmt.Sprintf("Password must be at most %d bytes", MaxPasswordBytes))
	}
	if !hasUpper {
		problems = append(problems, "Password must contain at least one uppercase letter")
	}
	if !hasNumber {
		problems = append(problems, "Password must contain at least one number")
	}
	if !hasSpecial {
		problems = append(problems, "Password must contain at least one special character")
	}
	return problems
}

// IsStrongPassword checks if the password meets security requirements
func IsStrongPassword(password string) bool {
	return len(PasswordProblems(password)) == 0
}

// Register installs the custom binding tags on gin's validator engine:
//
//	looseemail      matches IsValidEmail
//	strongpassword  matches IsStrongPassword
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*playground.Validate)
		if !ok {
			registerErr = errors.New("unexpected binding validator engine")
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

// RegisterOn installs the custom tags on v
func RegisterOn(v *playground.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	if err := v.RegisterValidation("looseemail", func(fl playground.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("strongpassword", func(fl playground.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
}

var messageTemplates = map[string]string{
	"required":   "%s is required",
	"looseemail": "Invalid email format",
	"email":      "Invalid email format",
	"min":        "%s must be at least %s",
	"max":        "%s must be at most %s",
	"gte":        "%s must be greater than or equal to %s",
	"lte":        "%s must be less than or equal to %s",
	"gt":         "%s must be greater than %s",
}

// Message turns a binding error into a client-facing sentence.
// Decode errors collapse to a generic message.
func Message(err error) string {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request format"
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, translate(fe))
	}
	return strings.Join(messages, "; ")
}

func translate(fe playground.FieldError) string {
	if fe.Tag() == "strongpassword" {
		value, _ := fe.Value().(string)
		return strings.Join(PasswordProblems(value), "; ")
	}

	field := fe.Field()
	template, ok := messageTemplates[fe.Tag()]
	if !ok {
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
	if strings.Count(template, "%s") == 2 {
		return fmt.Sprintf(template, field, fe.Param())
	}
	if strings.Contains(template, "%s") {
		return fmt.Sprintf(template, field)
	}
	return template
}
