package modules

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseModuleID parses the human-facing module id from a path segment
func ParseModuleID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid module id: %q", raw)
	}
	return id, nil
}

// ParseIDList parses a comma-separated id list, ignoring empty items
func ParseIDList(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		id, err := ParseModuleID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ToFilters converts bound query parameters into repository filters
func (q *ListQuery) ToFilters() (Filters, error) {
	ids, err := ParseIDList(q.IDs)
	if err != nil {
		return Filters{}, err
	}
	return Filters{
		Name:        strings.TrimSpace(q.Name),
		Level:       strings.TrimSpace(q.Level),
		StudyCredit: q.StudyCredit,
		Location:    strings.TrimSpace(q.Location),
		Difficulty:  q.Difficulty,
		IDs:         ids,
	}, nil
}
