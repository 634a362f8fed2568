package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"jobsreport/internal/cache"
	apperrors "jobsreport/internal/errors"
	"jobsreport/internal/model"
	"jobsreport/internal/repository"
)

// CreateProjectInput carries the fields accepted when creating a project.
type CreateProjectInput struct {
	ClientID    uuid.UUID           `json:"client_id" validate:"required"`
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description"`
	Address     string              `json:"address"`
	Notes       string              `json:"notes"`
	Status      model.ProjectStatus `json:"status" validate:"omitempty,oneof=active closed"`

	SiteContactName  string `json:"site_contact_name"`
	SiteContactPhone string `json:"site_contact_phone"`
	SiteContactEmail string `json:"site_contact_email" validate:"omitempty,email"`
	SiteContactRole  string `json:"site_contact_role"`

	FinancialAgreement model.BillingMode `json:"financial_agreement" validate:"omitempty,oneof=hourly fixed"`
	SellingPrice       decimal.Decimal   `json:"selling_price"`
}

// ProjectPatch is a partial update; present fields overwrite.
type ProjectPatch struct {
	ClientID    *uuid.UUID           `json:"client_id"`
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	Address     *string              `json:"address"`
	Notes       *string              `json:"notes"`
	Status      *model.ProjectStatus `json:"status" validate:"omitempty,oneof=active closed"`

	SiteContactName  *string `json:"site_contact_name"`
	SiteContactPhone *string `json:"site_contact_phone"`
	SiteContactEmail *string `json:"site_contact_email" validate:"omitempty,email"`
	SiteContactRole  *string `json:"site_contact_role"`

	FinancialAgreement *model.BillingMode `json:"financial_agreement" validate:"omitempty,oneof=hourly fixed"`
	SellingPrice       *decimal.Decimal   `json:"selling_price"`
}

// ProjectService exposes project management operations.
type ProjectService interface {
	CreateProject(ctx context.Context, in CreateProjectInput) (*model.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListProjects(ctx context.Context) ([]model.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, patch ProjectPatch) (*model.Project, error)
	// DeleteProject removes the project and its work reports atomically.
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	repo       repository.ProjectRepository
	clientRepo repository.ClientRepository
	cache      *cache.Client
}

// NewProjectService builds a ProjectService.
func NewProjectService(repo repository.ProjectRepository, clientRepo repository.ClientRepository, cache *cache.Client) ProjectService {
	return &projectService{repo: repo, clientRepo: clientRepo, cache: cache}
}

func (s *projectService) CreateProject(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	if _, err := s.clientRepo.FindByID(ctx, in.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, fmt.Errorf("check client: %w", err)
	}

	status := in.Status
	if status == "" {
		status = model.ProjectStatusActive
	}

	project := &model.Project{
		ClientID:           in.ClientID,
		Name:               in.Name,
		Description:        in.Description,
		Address:            in.Address,
		Notes:              in.Notes,
		Status:             status,
		SiteContactName:    in.SiteContactName,
		SiteContactPhone:   in.SiteContactPhone,
		SiteContactEmail:   in.SiteContactEmail,
		SiteContactRole:    in.SiteContactRole,
		FinancialAgreement: in.FinancialAgreement,
		SellingPrice:       in.SellingPrice,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.invalidateSummary(ctx)
	return project, nil
}

func (s *projectService) GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]model.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectService) UpdateProject(ctx context.Context, id uuid.UUID, patch ProjectPatch) (*model.Project, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.ClientID != nil {
		project.ClientID = *patch.ClientID
	}
	if patch.Name != nil {
		project.Name = *patch.Name
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.Address != nil {
		project.Address = *patch.Address
	}
	if patch.Notes != nil {
		project.Notes = *patch.Notes
	}
	if patch.Status != nil {
		project.Status = *patch.Status
	}
	if patch.SiteContactName != nil {
		project.SiteContactName = *patch.SiteContactName
	}
	if patch.SiteContactPhone != nil {
		project.SiteContactPhone = *patch.SiteContactPhone
	}
	if patch.SiteContactEmail != nil {
		project.SiteContactEmail = *patch.SiteContactEmail
	}
	if patch.SiteContactRole != nil {
		project.SiteContactRole = *patch.SiteContactRole
	}
	if patch.FinancialAgreement != nil {
		project.FinancialAgreement = *patch.FinancialAgreement
	}
	if patch.SellingPrice != nil {
		project.SellingPrice = *patch.SellingPrice
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.invalidateSummary(ctx)
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProject(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	s.invalidateSummary(ctx)
	return nil
}

func (s *projectService) invalidateSummary(ctx context.Context) {
	_ = s.cache.Delete(ctx, summaryCacheKey)
}
