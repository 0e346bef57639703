package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account document in the Users collection.
// Password holds the bcrypt hash and never leaves the server.
type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email           string             `bson:"email" json:"email"`
	Password        string             `bson:"password" json:"-"`
	Name            string             `bson:"name" json:"name"`
	StudentProfile  string             `bson:"studentProfile" json:"studentProfile"`
	FavoriteModules []int              `bson:"favoriteModules" json:"favoriteModules"`
	ChosenModules   []int              `bson:"chosenModules" json:"chosenModules"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// RegisterRequest represents the payload for account creation
type RegisterRequest struct {
	Email          string `json:"email" binding:"required,looseemail"`
	Password       string `json:"password" binding:"required,strongpassword"`
	Name           string `json:"name" binding:"required"`
	StudentProfile string `json:"studentProfile"`
}

// LoginRequest represents the payload for email/password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest carries optional account fields; nil means unchanged
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1"`
	Email *string `json:"email" binding:"omitempty,looseemail"`
}

// UpdatePasswordRequest represents the payload for a password change
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,strongpassword"`
}

type RegisterCommand struct {
	Email          string
	Password       string
	Name           string
	StudentProfile string
}

type LoginCommand struct {
	Email    string
	Password string
}

type UpdateUserCommand struct {
	Name  *string
	Email *string
}
