package validator

import (
	"errors"
	"strings"
	"testing"

	playground "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"student@example.com", true},
		{"a@b.c", true},
		{"", false},
		{"no-at-sign.com", false},
		{"two words@example.com", false},
		{"user@nodot", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			require.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestPasswordProblems(t *testing.T) {
	require.Empty(t, PasswordProblems("Sup3r$ecretPass"))
	require.True(t, IsStrongPassword("Abcdefghij1!"))

	problems := PasswordProblems("short")
	require.Len(t, problems, 4)
	require.Equal(t, "Password must be at least 12 characters long", problems[0])

	require.Equal(t,
		[]string{"Password must contain at least one special character"},
		PasswordProblems("Abcdefghijk1"),
	)
	require.Equal(t,
		[]string{"Password must be at most 72 bytes"},
		PasswordProblems("Aa1!"+strings.Repeat("x", 80)),
	)
	require.True(t, IsStrongPassword("Aa1!"+strings.Repeat("x", 68)))

	// underscore is not in the accepted special set
	require.False(t, IsStrongPassword("Abcdefghijk1_"))
}

type signup struct {
	Email    string `json:"email" validate:"required,looseemail"`
	Password string `json:"password" validate:"required,strongpassword"`
	Name     string `json:"name" validate:"required"`
}

func TestRegisterOn_CustomTags(t *testing.T) {
	v := playground.New()
	require.NoError(t, RegisterOn(v))

	err := v.Struct(signup{Email: "student@example.com", Password: "Sup3r$ecretPass", Name: "Sam"})
	require.NoError(t, err)

	err = v.Struct(signup{Email: "nope", Password: "weak", Name: ""})
	require.Error(t, err)

	msg := Message(err)
	require.Contains(t, msg, "Invalid email format")
	require.Contains(t, msg, "Password must be at least 12 characters long")
	require.Contains(t, msg, "name is required")
}

func TestMessage_NonValidationError(t *testing.T) {
	require.Equal(t, "Invalid request format", Message(errors.New("unexpected EOF")))
}
