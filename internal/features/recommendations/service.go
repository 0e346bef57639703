package recommendations

import (
	"context"
	"strings"
)

// Recommender is the upstream ranking service
type Recommender interface {
	RecommendCourses(ctx context.Context, q Query) ([]Recommendation, error)
}

type Service struct {
	recommender Recommender
}

func NewService(recommender Recommender) *Service {
	return &Service{recommender: recommender}
}

// Recommend defaults K to DefaultK and caps it at MaxK
func (s *Service) Recommend(ctx context.Context, cmd RecommendCommand) ([]RecommendationDTO, error) {
	k := cmd.K
	if k <= 0 {
		k = DefaultK
	}
	if k > MaxK {
		k = MaxK
	}

	recs, err := s.recommender.RecommendCourses(ctx, Query{
		InterestsText:     strings.TrimSpace(cmd.InterestsText),
		PreferredLevel:    cmd.PreferredLevel,
		PreferredLocation: cmd.PreferredLocation,
		K:                 k,
	})
	if err != nil {
		return nil, err
	}
	return ToApplicationList(recs), nil
}
