package recommendations

import (
	"fmt"
)

func ToDomain(dto RecommendationDTO) (Recommendation, error) {
	return NewRecommendation(dto.ModuleID, dto.ModuleName, dto.Score, dto.Location, dto.Level, dto.WaaromMatch)
}

func ToApplication(r Recommendation) RecommendationDTO {
	return RecommendationDTO{
		ModuleID:    r.ModuleID,
		ModuleName:  r.ModuleName,
		Score:       r.Score,
		Location:    r.Location,
		Level:       r.Level,
		WaaromMatch: r.Reason,
	}
}

// ToDomainList fails on the first invalid entry
func ToDomainList(dtos []RecommendationDTO) ([]Recommendation, error) {
	out := make([]Recommendation, 0, len(dtos))
	for i, dto := range dtos {
		r, err := ToDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("recommendation %d (module %d): %w", i, dto.ModuleID, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func ToApplicationList(rs []Recommendation) []RecommendationDTO {
	out := make([]RecommendationDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToApplication(r))
	}
	return out
}
