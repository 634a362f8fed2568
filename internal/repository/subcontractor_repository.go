package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobsreport/internal/model"
)

// SubcontractorRepository defines persistence operations for subcontractors.
type SubcontractorRepository interface {
	Create(ctx context.Context, sub *model.Subcontractor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Subcontractor, error)
	List(ctx context.Context) ([]model.Subcontractor, error)
	Update(ctx context.Context, sub *model.Subcontractor) error
	// DeleteDetachingUsers removes the subcontractor and clears the
	// link on any user pointing at it, in one transaction. Users
	// themselves are kept.
	DeleteDetachingUsers(ctx context.Context, id uuid.UUID) error
}

type subcontractorRepository struct {
	db *gorm.DB
}

// NewSubcontractorRepository builds a GORM-backed repository.
func NewSubcontractorRepository(db *gorm.DB) SubcontractorRepository {
	return &subcontractorRepository{db: db}
}

func (r *subcontractorRepository) Create(ctx context.Context, sub *model.Subcontractor) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subcontractorRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Subcontractor, error) {
	var sub model.Subcontractor
	if err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subcontractorRepository) List(ctx context.Context) ([]model.Subcontractor, error) {
	var subs []model.Subcontractor
	if err := r.db.WithContext(ctx).Order("created_at").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subcontractorRepository) Update(ctx context.Context, sub *model.Subcontractor) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

func (r *subcontractorRepository) DeleteDetachingUsers(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).Where("subcontractor_id = ?", id).
			Update("subcontractor_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Subcontractor{}, "id = ?", id).Error
	})
}
