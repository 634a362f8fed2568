package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "jobsreport/internal/errors"
	"jobsreport/internal/model"
	"jobsreport/internal/repository"
)

// CreateSubcontractorInput carries the fields accepted when creating a
// subcontractor.
type CreateSubcontractorInput struct {
	Name          string            `json:"name" validate:"required"`
	VATNumber     string            `json:"vat_number"`
	ContactPerson string            `json:"contact_person"`
	Phone         string            `json:"phone"`
	Email         string            `json:"email" validate:"omitempty,email"`
	Address       string            `json:"address"`
	BillingType   model.BillingMode `json:"billing_type" validate:"omitempty,oneof=hourly fixed"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        model.UserStatus  `json:"status" validate:"omitempty,oneof=active inactive"`
	Notes         string            `json:"notes"`
}

// SubcontractorPatch is a partial update; present fields overwrite.
type SubcontractorPatch struct {
	Name          *string            `json:"name"`
	VATNumber     *string            `json:"vat_number"`
	ContactPerson *string            `json:"contact_person"`
	Phone         *string            `json:"phone"`
	Email         *string            `json:"email" validate:"omitempty,email"`
	Address       *string            `json:"address"`
	BillingType   *model.BillingMode `json:"billing_type" validate:"omitempty,oneof=hourly fixed"`
	Amount        *decimal.Decimal   `json:"amount"`
	Status        *model.UserStatus  `json:"status" validate:"omitempty,oneof=active inactive"`
	Notes         *string            `json:"notes"`
}

// SubcontractorService exposes subcontractor management operations.
type SubcontractorService interface {
	CreateSubcontractor(ctx context.Context, in CreateSubcontractorInput) (*model.Subcontractor, error)
	GetSubcontractor(ctx context.Context, id uuid.UUID) (*model.Subcontractor, error)
	ListSubcontractors(ctx context.Context) ([]model.Subcontractor, error)
	UpdateSubcontractor(ctx context.Context, id uuid.UUID, patch SubcontractorPatch) (*model.Subcontractor, error)
	// DeleteSubcontractor removes the firm and detaches any user linked
	// to it; the users survive.
	DeleteSubcontractor(ctx context.Context, id uuid.UUID) error
}

type subcontractorService struct {
	repo repository.SubcontractorRepository
}

// NewSubcontractorService builds a SubcontractorService.
func NewSubcontractorService(repo repository.SubcontractorRepository) SubcontractorService {
	return &subcontractorService{repo: repo}
}

func (s *subcontractorService) CreateSubcontractor(ctx context.Context, in CreateSubcontractorInput) (*model.Subcontractor, error) {
	status := in.Status
	if status == "" {
		status = model.UserStatusActive
	}

	sub := &model.Subcontractor{
		Name:          in.Name,
		VATNumber:     in.VATNumber,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		BillingType:   in.BillingType,
		Amount:        in.Amount,
		Status:        status,
		Notes:         in.Notes,
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("create subcontractor: %w", err)
	}
	return sub, nil
}

func (s *subcontractorService) GetSubcontractor(ctx context.Context, id uuid.UUID) (*model.Subcontractor, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubcontractorNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (s *subcontractorService) ListSubcontractors(ctx context.Context) ([]model.Subcontractor, error) {
	return s.repo.List(ctx)
}

func (s *subcontractorService) UpdateSubcontractor(ctx context.Context, id uuid.UUID, patch SubcontractorPatch) (*model.Subcontractor, error) {
	sub, err := s.GetSubcontractor(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		sub.Name = *patch.Name
	}
	if patch.VATNumber != nil {
		sub.VATNumber = *patch.VATNumber
	}
	if patch.ContactPerson != nil {
		sub.ContactPerson = *patch.ContactPerson
	}
	if patch.Phone != nil {
		sub.Phone = *patch.Phone
	}
	if patch.Email != nil {
		sub.Email = *patch.Email
	}
	if patch.Address != nil {
		sub.Address = *patch.Address
	}
	if patch.BillingType != nil {
		sub.BillingType = *patch.BillingType
	}
	if patch.Amount != nil {
		sub.Amount = *patch.Amount
	}
	if patch.Status != nil {
		sub.Status = *patch.Status
	}
	if patch.Notes != nil {
		sub.Notes = *patch.Notes
	}

	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("update subcontractor: %w", err)
	}
	return sub, nil
}

func (s *subcontractorService) DeleteSubcontractor(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetSubcontractor(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteDetachingUsers(ctx, id); err != nil {
		return fmt.Errorf("delete subcontractor: %w", err)
	}
	return nil
}
