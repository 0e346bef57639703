package users

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/studycoach/internal/features/modules"
)

// Profile is the relationship view of a user document
type Profile struct {
	ID              primitive.ObjectID `bson:"_id" json:"_id"`
	Name            string             `bson:"name" json:"name"`
	StudentProfile  string             `bson:"studentProfile" json:"studentProfile"`
	FavoriteModules []int              `bson:"favoriteModules" json:"favoriteModules"`
	ChosenModules   []int              `bson:"chosenModules" json:"chosenModules"`
}

// Account is the summary shown on the account page
type Account struct {
	Name           string                  `json:"name"`
	StudentProfile string                  `json:"studentProfile"`
	ChosenModules  []modules.ModuleMinimal `json:"chosenModules"`
}

// FavoriteStatus is the body of every favorites endpoint
type FavoriteStatus struct {
	ModuleID int  `json:"moduleId"`
	Favorite bool `json:"favorite"`
}

// EnrollmentStatus is the body of every enrollment endpoint
type EnrollmentStatus struct {
	ModuleID int  `json:"moduleId"`
	Enrolled bool `json:"enrolled"`
}

type EnrollRequest struct {
	ModuleID int `json:"module_id" binding:"required,gt=0"`
}

type UpdateProfileRequest struct {
	StudentProfile *string `json:"studentProfile" binding:"omitempty,max=2000"`
}

// Relationship sets on the user document
const (
	fieldFavorites = "favoriteModules"
	fieldChosen    = "chosenModules"
)
