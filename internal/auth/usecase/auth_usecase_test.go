package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"todolist-backend/internal/auth/domain"
	"todolist-backend/internal/auth/dto"
	"todolist-backend/internal/shared"
	"todolist-backend/pkg/config"
)

// fakeUserRepo is an in-memory UserRepository keyed by email.
type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(user *domain.User) error {
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	return r.users[email], nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	err := uc.Register(&dto.SignupRequest{Email: "u@test.com", Password: "Abc1!def"})
	require.NoError(t, err)

	// The stored password is a bcrypt hash, never the plaintext.
	stored := repo.users["u@test.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "Abc1!def", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("Abc1!def")))

	token, err := uc.Login(&dto.LoginRequest{Email: "u@test.com", Password: "Abc1!def"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := uc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, userID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	require.NoError(t, uc.Register(&dto.SignupRequest{Email: "u@test.com", Password: "Abc1!def"}))

	err := uc.Register(&dto.SignupRequest{Email: "u@test.com", Password: "Other1!pw"})
	assert.ErrorIs(t, err, shared.ErrEmailAlreadyExists)
}

func TestLoginUniformError(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	require.NoError(t, uc.Register(&dto.SignupRequest{Email: "u@test.com", Password: "Abc1!def"}))

	// Unknown email and wrong password must be indistinguishable.
	_, errUnknown := uc.Login(&dto.LoginRequest{Email: "nobody@test.com", Password: "Abc1!def"})
	_, errWrongPw := uc.Login(&dto.LoginRequest{Email: "u@test.com", Password: "Wrong1!pw"})

	assert.ErrorIs(t, errUnknown, shared.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, shared.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestValidateTokenExpired(t *testing.T) {
	repo := newFakeUserRepo()
	cfg := testConfig()
	cfg.JWTAccessExpiry = -1 * time.Minute
	uc := NewAuthUsecase(repo, cfg)

	require.NoError(t, uc.Register(&dto.SignupRequest{Email: "u@test.com", Password: "Abc1!def"}))
	token, err := uc.Login(&dto.LoginRequest{Email: "u@test.com", Password: "Abc1!def"})
	require.NoError(t, err)

	_, err = uc.ValidateToken(token)
	assert.ErrorIs(t, err, shared.ErrInvalidToken)
}

func TestValidateTokenMalformed(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), testConfig())

	_, err := uc.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, shared.ErrInvalidToken)

	_, err = uc.ValidateToken("")
	assert.ErrorIs(t, err, shared.ErrInvalidToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	require.NoError(t, uc.Register(&dto.SignupRequest{Email: "u@test.com", Password: "Abc1!def"}))
	token, err := uc.Login(&dto.LoginRequest{Email: "u@test.com", Password: "Abc1!def"})
	require.NoError(t, err)

	other := NewAuthUsecase(repo, &config.Config{JWTSecret: "other-secret", JWTAccessExpiry: time.Hour})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, shared.ErrInvalidToken)
}
