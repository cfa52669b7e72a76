package usecase

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"todolist-backend/internal/auth/domain"
	"todolist-backend/internal/auth/dto"
	"todolist-backend/internal/auth/repository"
	"todolist-backend/internal/shared"
	"todolist-backend/pkg/config"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Register(req *dto.SignupRequest) error {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return err
	}

	if existing != nil {
		return shared.ErrEmailAlreadyExists
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &domain.User{
		Email:    req.Email,
		Password: hashedPassword,
	}

	return u.userRepo.Create(user)
}

func (u *authUsecase) Login(req *dto.LoginRequest) (string, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return "", err
	}

	// Unknown email and wrong password collapse into the same error so the
	// response never reveals which one it was.
	if user == nil {
		return "", shared.ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return "", shared.ErrInvalidCredentials
	}

	return u.generateAccessToken(user)
}

func (u *authUsecase) generateAccessToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(u.config.JWTAccessExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

// ValidateToken verifies the signature and expiry and yields the embedded
// user id. No store round-trip: the token is the proof of identity.
func (u *authUsecase) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return "", shared.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", shared.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", shared.ErrInvalidToken
	}

	return userID, nil
}
