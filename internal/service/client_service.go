package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobsreport/internal/cache"
	apperrors "jobsreport/internal/errors"
	"jobsreport/internal/model"
	"jobsreport/internal/repository"
)

// CreateClientInput carries the fields accepted when creating a client.
type CreateClientInput struct {
	Name             string             `json:"name" validate:"required"`
	VATNumber        string             `json:"vat_number"`
	BillingAddress   string             `json:"billing_address"`
	MainContactName  string             `json:"main_contact_name"`
	MainContactPhone string             `json:"main_contact_phone"`
	Email            string             `json:"email" validate:"omitempty,email"`
	Status           model.ClientStatus `json:"status" validate:"omitempty,oneof=active inactive"`
	Notes            string             `json:"notes"`
}

// ClientPatch is a partial update; present fields overwrite.
type ClientPatch struct {
	Name             *string             `json:"name"`
	VATNumber        *string             `json:"vat_number"`
	BillingAddress   *string             `json:"billing_address"`
	MainContactName  *string             `json:"main_contact_name"`
	MainContactPhone *string             `json:"main_contact_phone"`
	Email            *string             `json:"email" validate:"omitempty,email"`
	Status           *model.ClientStatus `json:"status" validate:"omitempty,oneof=active inactive"`
	Notes            *string             `json:"notes"`
}

// ClientService exposes client management operations.
type ClientService interface {
	CreateClient(ctx context.Context, in CreateClientInput) (*model.Client, error)
	GetClient(ctx context.Context, id uuid.UUID) (*model.Client, error)
	ListClients(ctx context.Context) ([]model.Client, error)
	UpdateClient(ctx context.Context, id uuid.UUID, patch ClientPatch) (*model.Client, error)
	// DeleteClient cascades through the client's projects to their work
	// reports, atomically.
	DeleteClient(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	repo  repository.ClientRepository
	cache *cache.Client
}

// NewClientService builds a ClientService with repository and cache.
func NewClientService(repo repository.ClientRepository, cache *cache.Client) ClientService {
	return &clientService{repo: repo, cache: cache}
}

func (s *clientService) CreateClient(ctx context.Context, in CreateClientInput) (*model.Client, error) {
	status := in.Status
	if status == "" {
		status = model.ClientStatusActive
	}

	client := &model.Client{
		Name:             in.Name,
		VATNumber:        in.VATNumber,
		BillingAddress:   in.BillingAddress,
		MainContactName:  in.MainContactName,
		MainContactPhone: in.MainContactPhone,
		Email:            in.Email,
		Status:           status,
		Notes:            in.Notes,
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	s.invalidateSummary(ctx)
	return client, nil
}

func (s *clientService) GetClient(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]model.Client, error) {
	return s.repo.List(ctx)
}

func (s *clientService) UpdateClient(ctx context.Context, id uuid.UUID, patch ClientPatch) (*model.Client, error) {
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		client.Name = *patch.Name
	}
	if patch.VATNumber != nil {
		client.VATNumber = *patch.VATNumber
	}
	if patch.BillingAddress != nil {
		client.BillingAddress = *patch.BillingAddress
	}
	if patch.MainContactName != nil {
		client.MainContactName = *patch.MainContactName
	}
	if patch.MainContactPhone != nil {
		client.MainContactPhone = *patch.MainContactPhone
	}
	if patch.Email != nil {
		client.Email = *patch.Email
	}
	if patch.Status != nil {
		client.Status = *patch.Status
	}
	if patch.Notes != nil {
		client.Notes = *patch.Notes
	}

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}

	s.invalidateSummary(ctx)
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetClient(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	s.invalidateSummary(ctx)
	return nil
}

func (s *clientService) invalidateSummary(ctx context.Context) {
	_ = s.cache.Delete(ctx, summaryCacheKey)
}
