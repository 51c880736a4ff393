package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"hotelease-backend/models"
	"hotelease-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

type RegisterInput struct {
	CompanyName string
	Address     map[string]string
	Name        string
	Email       string
	Password    string
}

type AuthResult struct {
	User  *models.User
	Token string
}

// Register creates a new company together with its first admin user, as one
// transaction, and returns a signed token for the admin.
func (s *AuthService) Register(in RegisterInput) (*AuthResult, error) {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.CompanyName == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: company name and user name are required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var user models.User
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var adminRole models.Role
		if err := tx.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
			return fmt.Errorf("admin role not found: %w", err)
		}

		company := models.Company{Name: in.CompanyName}
		if len(in.Address) > 0 {
			raw, err := json.Marshal(in.Address)
			if err != nil {
				return fmt.Errorf("%w: invalid address", ErrInvalidInput)
			}
			company.Address = datatypes.JSON(raw)
		}
		if err := tx.Create(&company).Error; err != nil {
			if isDuplicateKeyError(err) {
				return fmt.Errorf("%w: company name already registered", ErrConflict)
			}
			return fmt.Errorf("failed to create company: %w", err)
		}

		user = models.User{
			CompanyID: company.ID,
			Name:      in.Name,
			Email:     in.Email,
			Password:  string(hash),
			RoleID:    adminRole.ID,
			IsActive:  true,
		}
		if err := tx.Create(&user).Error; err != nil {
			if isDuplicateKeyError(err) {
				return fmt.Errorf("%w: email already registered", ErrConflict)
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		user.Role = adminRole
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	token, err := utils.GenerateAccessToken(user.ID, user.CompanyID, user.Role.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResult{User: &user, Token: token}, nil
}

// Login checks credentials and issues a token. Credential failures are
// indistinguishable from unknown emails on purpose.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.DB.Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrInvalidInput)
		}
		return nil, fmt.Errorf("db error loading user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrInvalidInput)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: user account is deactivated", ErrInvalidState)
	}

	token, err := utils.GenerateAccessToken(user.ID, user.CompanyID, user.Role.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResult{User: &user, Token: token}, nil
}
