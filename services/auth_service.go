package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/IvanPareja1/profitness-app-sub003/models"
	"github.com/IvanPareja1/profitness-app-sub003/utils"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

var ErrInvalidCredentials = errors.New("invalid email or password")

func (s *AuthService) RegisterUser(email, password, fullName string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		FullName: fullName,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, &StorageError{Op: "create user", Err: err}
	}
	return &user, nil
}

// AuthenticateUser checks the credentials and returns a signed JWT for the
// user. Credential failures are deliberately indistinguishable between
// unknown email and wrong password.
func (s *AuthService) AuthenticateUser(email, password string) (string, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", &StorageError{Op: "get user", Err: err}
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateJWT(user.ID, user.Email)
}
