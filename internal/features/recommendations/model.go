package recommendations

import (
	"math"

	apperrors "github.com/xyz-asif/studycoach/pkg/errors"
)

// Recommendation is a ranked module suggestion. Score is always in [0, 1].
type Recommendation struct {
	ModuleID   int
	ModuleName string
	Score      float64
	Location   string
	Level      string
	Reason     string
}

func NewRecommendation(moduleID int, moduleName string, score float64, location, level, reason string) (Recommendation, error) {
	if math.IsNaN(score) || score < 0 || score > 1 {
		return Recommendation{}, apperrors.ErrInvalidScore
	}
	return Recommendation{
		ModuleID:   moduleID,
		ModuleName: moduleName,
		Score:      score,
		Location:   location,
		Level:      level,
		Reason:     reason,
	}, nil
}

// RecommendationDTO is the wire shape shared by the recommender and our clients
type RecommendationDTO struct {
	ModuleID    int     `json:"module_id" example:"101"`
	ModuleName  string  `json:"module_name" example:"Data Science Basics"`
	Score       float64 `json:"score" example:"0.87"`
	Location    string  `json:"location" example:"Breda"`
	Level       string  `json:"level" example:"NLQF5"`
	WaaromMatch string  `json:"waarom_match" example:"Matches your interest in data"`
}

// Query is what the recommender is asked
type Query struct {
	InterestsText     string `json:"interests_text"`
	PreferredLevel    string `json:"preferred_level"`
	PreferredLocation string `json:"preferred_location"`
	K                 int    `json:"k"`
}

type RecommendRequest struct {
	InterestsText     string `json:"interests_text" binding:"required"`
	PreferredLevel    string `json:"preferred_level"`
	PreferredLocation string `json:"preferred_location"`
	K                 int    `json:"k" binding:"omitempty,gte=0"`
}

type RecommendCommand struct {
	InterestsText     string
	PreferredLevel    string
	PreferredLocation string
	K                 int
}

const (
	DefaultK = 3
	MaxK     = 20

	MinInterestsLength = 10
)
