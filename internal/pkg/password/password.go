package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xyz-asif/studycoach/pkg/errors"
)

// ErrTooLong is returned for inputs bcrypt cannot hash
var ErrTooLong = apperrors.New(apperrors.KindValidation, "PASSWORD_TOO_LONG", "Password must be at most 72 bytes")

// Cost is the bcrypt work factor for stored credentials
const Cost = 12

// dummyHash is compared against when no account exists so lookups for
// unknown and known emails take the same time
var dummyHash []byte

func init() {
	h, err := bcrypt.GenerateFromPassword([]byte("studycoach-placeholder"), Cost)
	if err != nil {
		panic(err)
	}
	dummyHash = h
}

// Hash returns the bcrypt hash of plain
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperrors.Wrap(ErrTooLong.Kind, ErrTooLong.Code, ErrTooLong.Message, err)
		}
		return "", err
	}
	return string(h), nil
}

// Compare reports whether plain matches hash. Malformed hashes are errors.
func Compare(hash, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}

// CompareDummy burns one comparison against a fixed hash
func CompareDummy(plain string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plain))
}
