package services

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/antonkovh/medminder/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAuthInput   = errors.New("invalid auth input")
	ErrUserStoreFailed    = errors.New("user store failed")
)

const minPasswordLength = 8

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, bool, error)
	FindByID(userID uint) (models.User, bool, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(email string, password string, name string, role string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidAuthInput
	}
	if len(password) < minPasswordLength {
		return ErrInvalidAuthInput
	}
	if strings.TrimSpace(name) == "" {
		return ErrInvalidAuthInput
	}
	if !models.IsValidRole(role) {
		return ErrInvalidAuthInput
	}
	return nil
}

func (service *AuthService) Register(email string, password string, name string, role string) (models.User, error) {
	normalized := NormalizeEmail(email)
	if err := validateRegistration(normalized, password, name, role); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(normalized)
	if err != nil {
		return models.User{}, ErrUserStoreFailed
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrUserStoreFailed
	}

	user := models.User{
		Email:        normalized,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(name),
		Role:         role,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, ErrUserStoreFailed
	}
	return user, nil
}

func (service *AuthService) Login(email string, password string) (models.User, error) {
	user, found, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		return models.User{}, ErrUserStoreFailed
	}
	if !found {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, bool, error) {
	return service.users.FindByID(userID)
}
