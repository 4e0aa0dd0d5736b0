package auth

import (
	"errors"

	"github.com/JordiPons-11/chessrank/pkg/apperrors"
	"gorm.io/gorm"
)

type AuthRepository interface {
	CreateUser(user *User) error
	GetUserByID(id uint) (*User, error)
	FindUserByUsername(username string) (*User, error)
}

type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(user *User) error {
	if user.Username == "" || user.PasswordHash == "" {
		return apperrors.Validationf("username and password are required")
	}
	return apperrors.FromDB(r.db.Create(user).Error)
}

func (r *authRepository) GetUserByID(id uint) (*User, error) {
	var user User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *authRepository) FindUserByUsername(username string) (*User, error) {
	var user User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
