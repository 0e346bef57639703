package auth

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/studycoach/internal/pkg/password"
	apperrors "github.com/xyz-asif/studycoach/pkg/errors"
)

// fakeStore is an in-memory Store keyed by hex id
type fakeStore struct {
	mu      sync.Mutex
	users   map[string]*User
	findErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[string]*User{}}
}

func (s *fakeStore) Create(_ context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == NormalizeEmail(user.Email) {
			return apperrors.ErrEmailTaken
		}
	}
	user.ID = primitive.NewObjectID()
	user.Email = NormalizeEmail(user.Email)
	cp := *user
	s.users[user.ID.Hex()] = &cp
	return nil
}

func (s *fakeStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	for _, u := range s.users {
		if u.Email == NormalizeEmail(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) FindByID(_ context.Context, userID string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *fakeStore) Update(_ context.Context, userID string, updates bson.M) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	if v, ok := updates["name"].(string); ok {
		u.Name = v
	}
	if v, ok := updates["email"].(string); ok {
		u.Email = NormalizeEmail(v)
	}
	if v, ok := updates["password"].(string); ok {
		u.Password = v
	}
	cp := *u
	return &cp, nil
}

func (s *fakeStore) Delete(_ context.Context, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		return false, nil
	}
	delete(s.users, userID)
	return true, nil
}

type fakeTokens struct{}

func (fakeTokens) Generate(userID string) (string, error) {
	return "token-for-" + userID, nil
}

const strongPassword = "Sup3r$ecretPass"

func register(t *testing.T, svc *Service, email string) *AuthResponse {
	t.Helper()
	res, err := svc.Register(context.Background(), RegisterCommand{
		Email:          email,
		Password:       strongPassword,
		Name:           "Sam Student",
		StudentProfile: "Likes data science",
	})
	require.NoError(t, err)
	return res
}

func TestRegister(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, fakeTokens{})

	res := register(t, svc, "Sam@Example.com")
	require.Equal(t, "sam@example.com", res.User.Email)
	require.Equal(t, "token-for-"+res.User.ID.Hex(), res.Token)

	stored, _ := store.FindByID(context.Background(), res.User.ID.Hex())
	require.NotEqual(t, strongPassword, stored.Password)
	ok, err := password.Compare(stored.Password, strongPassword)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRegister_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	svc := NewService(newFakeStore(), fakeTokens{})
	register(t, svc, "sam@example.com")

	_, err := svc.Register(context.Background(), RegisterCommand{
		Email: "SAM@example.com", Password: strongPassword, Name: "Other",
	})
	require.ErrorIs(t, err, apperrors.ErrEmailTaken)
	require.Equal(t, "User with this email already exists", apperrors.ErrEmailTaken.Message)
}

func TestLogin(t *testing.T) {
	svc := NewService(newFakeStore(), fakeTokens{})
	reg := register(t, svc, "sam@example.com")

	res, err := svc.Login(context.Background(), LoginCommand{Email: " SAM@example.com ", Password: strongPassword})
	require.NoError(t, err)
	require.Equal(t, reg.User.ID, res.User.ID)
	require.NotEmpty(t, res.Token)
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	svc := NewService(newFakeStore(), fakeTokens{})
	register(t, svc, "sam@example.com")

	_, errUnknown := svc.Login(context.Background(), LoginCommand{Email: "nobody@example.com", Password: strongPassword})
	_, errWrong := svc.Login(context.Background(), LoginCommand{Email: "sam@example.com", Password: "Wr0ng$Password"})

	require.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	require.ErrorIs(t, errWrong, apperrors.ErrInvalidCredentials)
	require.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestLogin_StoreError(t *testing.T) {
	store := newFakeStore()
	store.findErr = errors.New("connection reset")
	svc := NewService(store, fakeTokens{})

	_, err := svc.Login(context.Background(), LoginCommand{Email: "sam@example.com", Password: "x"})
	require.Error(t, err)
	require.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestGetCurrentUser_Missing(t *testing.T) {
	svc := NewService(newFakeStore(), fakeTokens{})
	user, err := svc.GetCurrentUser(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestUpdateUser(t *testing.T) {
	svc := NewService(newFakeStore(), fakeTokens{})
	sam := register(t, svc, "sam@example.com")
	register(t, svc, "alex@example.com")
	ctx := context.Background()

	name := "Samantha"
	user, err := svc.UpdateUser(ctx, sam.User.ID.Hex(), UpdateUserCommand{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Samantha", user.Name)

	taken := "ALEX@example.com"
	_, err = svc.UpdateUser(ctx, sam.User.ID.Hex(), UpdateUserCommand{Email: &taken})
	require.ErrorIs(t, err, apperrors.ErrEmailInUse)

	caseOnly := "Sam@Example.COM"
	user, err = svc.UpdateUser(ctx, sam.User.ID.Hex(), UpdateUserCommand{Email: &caseOnly})
	require.NoError(t, err)
	require.Equal(t, "sam@example.com", user.Email)

	user, err = svc.UpdateUser(ctx, primitive.NewObjectID().Hex(), UpdateUserCommand{Name: &name})
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestUpdatePassword(t *testing.T) {
	svc := NewService(newFakeStore(), fakeTokens{})
	sam := register(t, svc, "sam@example.com")
	ctx := context.Background()
	id := sam.User.ID.Hex()

	err := svc.UpdatePassword(ctx, id, "wrong", "N3w$ecretPassword")
	require.ErrorIs(t, err, apperrors.ErrIncorrectPassword)

	err = svc.UpdatePassword(ctx, primitive.NewObjectID().Hex(), strongPassword, "N3w$ecretPassword")
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)

	require.NoError(t, svc.UpdatePassword(ctx, id, strongPassword, "N3w$ecretPassword"))

	_, err = svc.Login(ctx, LoginCommand{Email: "sam@example.com", Password: strongPassword})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = svc.Login(ctx, LoginCommand{Email: "sam@example.com", Password: "N3w$ecretPassword"})
	require.NoError(t, err)
}

func TestDeleteUser(t *testing.T) {
	svc := NewService(newFakeStore(), fakeTokens{})
	sam := register(t, svc, "sam@example.com")
	ctx := context.Background()

	deleted, err := svc.DeleteUser(ctx, sam.User.ID.Hex())
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = svc.DeleteUser(ctx, sam.User.ID.Hex())
	require.NoError(t, err)
	require.False(t, deleted)
}
