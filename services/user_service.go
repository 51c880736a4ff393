package services

import (
	"errors"
	"fmt"
	"strings"

	"hotelease-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

type UserInput struct {
	Name     string
	Email    string
	Password string
	RoleName string
}

func (s *UserService) roleByName(name string) (*models.Role, error) {
	var role models.Role
	if err := s.DB.Where("name = ?", strings.TrimSpace(name)).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown role: %s", ErrInvalidInput, name)
		}
		return nil, fmt.Errorf("db error loading role: %w", err)
	}
	return &role, nil
}

// Create adds a staff user to the caller's company.
func (s *UserService) Create(companyID uint, in UserInput) (*models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(in.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	role, err := s.roleByName(in.RoleName)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		CompanyID: companyID,
		Name:      in.Name,
		Email:     in.Email,
		Password:  string(hash),
		RoleID:    role.ID,
		IsActive:  true,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return s.GetByID(companyID, user.ID)
}

func (s *UserService) GetByID(companyID, userID uint) (*models.User, error) {
	var user models.User
	err := s.DB.Preload("Role").Where("id = ? AND company_id = ?", userID, companyID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found in your company", ErrNotFound)
		}
		return nil, fmt.Errorf("db error loading user %d: %w", userID, err)
	}
	return &user, nil
}

func (s *UserService) GetByCompany(companyID uint) ([]models.User, error) {
	var users []models.User
	err := s.DB.Preload("Role").Where("company_id = ?", companyID).Order("name ASC").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	return users, nil
}

// Update changes name and role; email and password are immutable here.
func (s *UserService) Update(companyID, userID uint, name, roleName string) (*models.User, error) {
	user, err := s.GetByID(companyID, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		updates["name"] = trimmed
	}
	if roleName != "" {
		role, err := s.roleByName(roleName)
		if err != nil {
			return nil, err
		}
		updates["role_id"] = role.ID
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.GetByID(companyID, userID)
}

// Deactivate blocks a user from logging in without deleting their records.
func (s *UserService) Deactivate(companyID, userID uint) error {
	user, err := s.GetByID(companyID, userID)
	if err != nil {
		return err
	}
	if err := s.DB.Model(user).Update("is_active", false).Error; err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}
