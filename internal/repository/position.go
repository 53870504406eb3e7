package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"performance-portal-backend/internal/database/models"
)

// PositionRepository handles database operations for positions
type PositionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// Create creates a new position
func (r *PositionRepository) Create(position *models.Position) error {
	return r.db.Create(position).Error
}

// GetByID retrieves a position by ID, excluding soft-deleted positions
func (r *PositionRepository) GetByID(id uuid.UUID) (*models.Position, error) {
	var position models.Position
	err := r.db.First(&position, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// GetByIDIncludingDeleted retrieves a position by ID even after soft deletion.
// History rows keep referencing deleted positions, so lookups from the
// assignment ledger go through here.
func (r *PositionRepository) GetByIDIncludingDeleted(id uuid.UUID) (*models.Position, error) {
	var position models.Position
	err := r.db.Unscoped().First(&position, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// GetByCompanyID retrieves the live position set of a company. This is the
// adjacency list the hierarchy resolver walks in memory, replacing a
// recursive CTE.
func (r *PositionRepository) GetByCompanyID(companyID uuid.UUID) ([]models.Position, error) {
	var positions []models.Position
	err := r.db.Where("company_id = ?", companyID).Find(&positions).Error
	return positions, err
}

// GetByCompanyIDIncludingDeleted retrieves all positions of a company,
// soft-deleted ones included
func (r *PositionRepository) GetByCompanyIDIncludingDeleted(companyID uuid.UUID) ([]models.Position, error) {
	var positions []models.Position
	err := r.db.Unscoped().Where("company_id = ?", companyID).Find(&positions).Error
	return positions, err
}

// UpdateTitle updates only the title of a position
func (r *PositionRepository) UpdateTitle(id uuid.UUID, title string) error {
	result := r.db.Model(&models.Position{}).Where("id = ?", id).Update("title", title)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Reparent moves a position under a new parent, keeping its subtree attached
// (the children's parent pointers are untouched)
func (r *PositionRepository) Reparent(id uuid.UUID, newParentID *uuid.UUID) error {
	result := r.db.Model(&models.Position{}).Where("id = ?", id).Update("parent_id", newParentID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReparentPromotingChildren moves only the named position; its direct
// children are repointed to the position's old parent in the same
// transaction, so the rest of the tree keeps its shape and no subtree is
// orphaned.
func (r *PositionRepository) ReparentPromotingChildren(id uuid.UUID, newParentID, oldParentID *uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Position{}).
			Where("parent_id = ?", id).
			Update("parent_id", oldParentID).Error; err != nil {
			return err
		}
		result := tx.Model(&models.Position{}).Where("id = ?", id).Update("parent_id", newParentID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// SoftDelete marks a position as deleted without removing the row
func (r *PositionRepository) SoftDelete(id uuid.UUID) error {
	result := r.db.Delete(&models.Position{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountChildren returns the number of live direct children of a position
func (r *PositionRepository) CountChildren(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Position{}).Where("parent_id = ?", id).Count(&count).Error
	return count, err
}
