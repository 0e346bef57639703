package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret", 7*24*time.Hour)

	tok, err := m.Generate("64b7f0c2a1b2c3d4e5f60718")
	require.NoError(t, err)

	claims, err := m.Validate(tok)
	require.NoError(t, err)
	require.Equal(t, "64b7f0c2a1b2c3d4e5f60718", claims.UserID)
	require.Equal(t, issuer, claims.Issuer)
	require.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidate_WrongSecret(t *testing.T) {
	tok, err := NewManager("one", time.Hour).Generate("u1")
	require.NoError(t, err)

	_, err = NewManager("two", time.Hour).Validate(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Expired(t *testing.T) {
	m := NewManager("s", time.Hour)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := m.Generate("u1")
	require.NoError(t, err)

	_, err = NewManager("s", time.Hour).Validate(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_RejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{UserID: "u1", RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewManager("s", time.Hour).Validate(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerate_RequiresUserID(t *testing.T) {
	_, err := NewManager("s", time.Hour).Generate("")
	require.Error(t, err)
}
