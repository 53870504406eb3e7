package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"performance-portal-backend/internal/cache"
	"performance-portal-backend/internal/database/models"
	apperrors "performance-portal-backend/internal/errors"
	"performance-portal-backend/internal/hierarchy"
	"performance-portal-backend/internal/repository"
)

// Reparent modes. with-subordinates moves the whole subtree; without-
// subordinates moves only the node and promotes its direct children to the
// node's old parent.
const (
	ModeWithSubordinates    = "with-subordinates"
	ModeWithoutSubordinates = "without-subordinates"
)

// PositionService handles business logic for positions, including the two
// reparent modes and the acyclicity checks that protect the tree invariant.
type PositionService struct {
	repo        repository.PositionRepositoryInterface
	companyRepo repository.CompanyRepositoryInterface
	treeCache   *cache.TreeCache
	validator   *validator.Validate
}

// NewPositionService creates a new position service
func NewPositionService(repo repository.PositionRepositoryInterface, companyRepo repository.CompanyRepositoryInterface, treeCache *cache.TreeCache, validator *validator.Validate) *PositionService {
	return &PositionService{
		repo:        repo,
		companyRepo: companyRepo,
		treeCache:   treeCache,
		validator:   validator,
	}
}

// CreatePositionRequest represents the request to create a position
type CreatePositionRequest struct {
	CompanyID uuid.UUID  `json:"company_id" validate:"required"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	Title     string     `json:"title" validate:"required,min=1,max=200"`
}

// UpdateTitleRequest represents the request to rename a position
type UpdateTitleRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}

// UpdateParentRequest represents the request to move a position. A nil
// NewParentID makes the position a head position.
type UpdateParentRequest struct {
	NewParentID *uuid.UUID `json:"new_parent_id,omitempty"`
	Mode        string     `json:"mode" validate:"required"`
}

// PositionResponse represents the response for position operations
type PositionResponse struct {
	ID        uuid.UUID  `json:"id"`
	CompanyID uuid.UUID  `json:"company_id"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	Title     string     `json:"title"`
	Deleted   bool       `json:"deleted,omitempty"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

// Create creates a new position under a company, optionally under a parent
func (s *PositionService) Create(ctx context.Context, req *CreatePositionRequest) (*PositionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.companyRepo.GetByID(req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to verify company: %w", err)
	}

	if req.ParentID != nil {
		parent, err := s.repo.GetByID(*req.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrParentPositionNotFound
			}
			return nil, fmt.Errorf("failed to verify parent position: %w", err)
		}
		if parent.CompanyID != req.CompanyID {
			return nil, apperrors.ErrParentCompanyMismatch
		}
	}

	position := &models.Position{
		CompanyID: req.CompanyID,
		ParentID:  req.ParentID,
		Title:     req.Title,
	}
	if err := s.repo.Create(position); err != nil {
		return nil, fmt.Errorf("failed to create position: %w", err)
	}

	s.treeCache.InvalidateCompany(ctx, req.CompanyID.String())

	return s.toResponse(position), nil
}

// GetByID retrieves a position by ID
func (s *PositionService) GetByID(id uuid.UUID) (*PositionResponse, error) {
	position, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}
	return s.toResponse(position), nil
}

// UpdateTitle renames a position without touching the tree shape
func (s *PositionService) UpdateTitle(ctx context.Context, id uuid.UUID, req *UpdateTitleRequest) (*PositionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.repo.UpdateTitle(id, req.Title); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to update position title: %w", err)
	}

	position, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload position: %w", err)
	}

	s.treeCache.InvalidateCompany(ctx, position.CompanyID.String())

	return s.toResponse(position), nil
}

// UpdateParent moves a position to a new parent in one of the two modes.
// Both modes reject a new parent that would make the position its own
// ancestor.
func (s *PositionService) UpdateParent(ctx context.Context, id uuid.UUID, req *UpdateParentRequest) (*PositionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Mode != ModeWithSubordinates && req.Mode != ModeWithoutSubordinates {
		return nil, apperrors.ErrInvalidReparentMode
	}

	position, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}

	if req.NewParentID != nil {
		if *req.NewParentID == id {
			return nil, apperrors.ErrSelfParent
		}

		newParent, err := s.repo.GetByID(*req.NewParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrParentPositionNotFound
			}
			return nil, fmt.Errorf("failed to verify new parent: %w", err)
		}
		if newParent.CompanyID != position.CompanyID {
			return nil, apperrors.ErrParentCompanyMismatch
		}

		// In-memory ancestor walk over the current tree, replacing a
		// recursive SQL check. Both modes reject a parent inside the
		// moved node's subtree.
		positions, err := s.repo.GetByCompanyID(position.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("failed to load company positions: %w", err)
		}
		if hierarchy.WouldCreateCycle(id, *req.NewParentID, positions) {
			return nil, apperrors.ErrCyclicParent
		}
	}

	switch req.Mode {
	case ModeWithSubordinates:
		err = s.repo.Reparent(id, req.NewParentID)
	case ModeWithoutSubordinates:
		err = s.repo.ReparentPromotingChildren(id, req.NewParentID, position.ParentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reparent position: %w", err)
	}

	s.treeCache.InvalidateCompany(ctx, position.CompanyID.String())

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload position: %w", err)
	}
	return s.toResponse(updated), nil
}

// Delete soft-deletes a position. The row stays because assignment history
// references it.
func (s *PositionService) Delete(ctx context.Context, id uuid.UUID) error {
	position, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPositionNotFound
		}
		return fmt.Errorf("failed to get position: %w", err)
	}

	if err := s.repo.SoftDelete(id); err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}

	s.treeCache.InvalidateCompany(ctx, position.CompanyID.String())
	return nil
}

func (s *PositionService) toResponse(position *models.Position) *PositionResponse {
	return &PositionResponse{
		ID:        position.ID,
		CompanyID: position.CompanyID,
		ParentID:  position.ParentID,
		Title:     position.Title,
		Deleted:   position.DeletedAt.Valid,
		CreatedAt: position.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: position.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
