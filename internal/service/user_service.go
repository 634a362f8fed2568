package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobsreport/internal/cache"
	apperrors "jobsreport/internal/errors"
	"jobsreport/internal/model"
	"jobsreport/internal/repository"
)

// CreateUserInput carries the fields accepted when creating a user.
type CreateUserInput struct {
	Name            string           `json:"name" validate:"required"`
	Username        string           `json:"username" validate:"required,min=3"`
	Password        string           `json:"password" validate:"required,min=6"`
	Email           string           `json:"email" validate:"omitempty,email"`
	Role            model.Role       `json:"role" validate:"required,oneof=admin operator supervisor"`
	Status          model.UserStatus `json:"status" validate:"omitempty,oneof=active inactive"`
	HourlyRate      decimal.Decimal  `json:"hourly_rate"`
	ExtraCost       decimal.Decimal  `json:"extra_cost"`
	Phone           string           `json:"phone"`
	Address         string           `json:"address"`
	Notes           string           `json:"notes"`
	SubcontractorID *uuid.UUID       `json:"subcontractor_id"`
}

// UserPatch is a partial update; present fields overwrite, absent
// fields leave the stored value untouched.
type UserPatch struct {
	Name            *string           `json:"name"`
	Username        *string           `json:"username" validate:"omitempty,min=3"`
	Password        *string           `json:"password" validate:"omitempty,min=6"`
	Email           *string           `json:"email" validate:"omitempty,email"`
	Role            *model.Role       `json:"role" validate:"omitempty,oneof=admin operator supervisor"`
	Status          *model.UserStatus `json:"status" validate:"omitempty,oneof=active inactive"`
	HourlyRate      *decimal.Decimal  `json:"hourly_rate"`
	ExtraCost       *decimal.Decimal  `json:"extra_cost"`
	Phone           *string           `json:"phone"`
	Address         *string           `json:"address"`
	Notes           *string           `json:"notes"`
	SubcontractorID *uuid.UUID        `json:"subcontractor_id"`
}

// UserService exposes user management operations.
type UserService interface {
	CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, patch UserPatch) (*model.User, error)
	// DeleteUser removes the user and the user's own work reports.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error) {
	existing, err := s.repo.FindByUsername(ctx, in.Username)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	status := in.Status
	if status == "" {
		status = model.UserStatusActive
	}

	user := &model.User{
		Name:            in.Name,
		Username:        in.Username,
		PasswordHash:    string(hashed),
		Email:           in.Email,
		Role:            in.Role,
		Status:          status,
		HourlyRate:      in.HourlyRate,
		ExtraCost:       in.ExtraCost,
		Phone:           in.Phone,
		Address:         in.Address,
		Notes:           in.Notes,
		SubcontractorID: in.SubcontractorID,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.invalidateSummary(ctx)
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, patch UserPatch) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Status != nil {
		user.Status = *patch.Status
	}
	if patch.HourlyRate != nil {
		user.HourlyRate = *patch.HourlyRate
	}
	if patch.ExtraCost != nil {
		user.ExtraCost = *patch.ExtraCost
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.Address != nil {
		user.Address = *patch.Address
	}
	if patch.Notes != nil {
		user.Notes = *patch.Notes
	}
	if patch.SubcontractorID != nil {
		user.SubcontractorID = patch.SubcontractorID
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.invalidateSummary(ctx)
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.invalidateSummary(ctx)
	return nil
}

func (s *userService) invalidateSummary(ctx context.Context) {
	_ = s.cache.Delete(ctx, summaryCacheKey)
}
