package modules

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Module is a catalog entry in the Modules collection. Seeded externally.
type Module struct {
	MongoID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ModuleID            int                `bson:"module_id" json:"module_id"`
	Name                string             `bson:"name" json:"name"`
	ShortDescription    []string           `bson:"shortdescription" json:"shortdescription"`
	Description         string             `bson:"description" json:"description"`
	StudyCredit         int                `bson:"studycredit" json:"studycredit"`
	Location            []string           `bson:"location" json:"location"`
	Level               string             `bson:"level" json:"level"`
	LearningOutcomes    string             `bson:"learningoutcomes" json:"learningoutcomes"`
	EstimatedDifficulty int                `bson:"estimated_difficulty" json:"estimated_difficulty"`
	AvailableSpots      int                `bson:"available_spots" json:"available_spots"`
	StartDate           string             `bson:"start_date" json:"start_date"`
}

// ModuleMinimal is the projection used in account summaries
type ModuleMinimal struct {
	MongoID  primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ModuleID int                `bson:"module_id" json:"module_id"`
	Name     string             `bson:"name" json:"name"`
}

// Filters narrows List. Zero values impose no constraint.
type Filters struct {
	Name        string
	Level       string
	StudyCredit int
	Location    string
	Difficulty  int
	IDs         []int
}

// ListQuery binds GET /modules query parameters
type ListQuery struct {
	Name        string `form:"name"`
	Level       string `form:"level"`
	StudyCredit int    `form:"studyCredit" binding:"omitempty,gte=0"`
	Location    string `form:"location"`
	Difficulty  int    `form:"difficulty" binding:"omitempty,gte=0"`
	IDs         string `form:"ids"`
	Page        string `form:"page"`
	Limit       string `form:"limit"`
}

// DetailResponse is returned by GET /modules/:id
type DetailResponse struct {
	Module      *Module `json:"module"`
	IsFavorited bool    `json:"isFavorited"`
	IsEnrolled  bool    `json:"isEnrolled"`
}
