package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"performance-portal-backend/internal/cache"
	"performance-portal-backend/internal/database/models"
	apperrors "performance-portal-backend/internal/errors"
	"performance-portal-backend/internal/repository"
)

// ScoreService handles business logic for performance scores. Scores are
// immutable once written except through the explicit Update operation, and
// reads never mutate.
type ScoreService struct {
	repo         repository.ScoreRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	positionRepo repository.PositionRepositoryInterface
	treeCache    *cache.TreeCache
	validator    *validator.Validate
}

// NewScoreService creates a new score service
func NewScoreService(repo repository.ScoreRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, positionRepo repository.PositionRepositoryInterface, treeCache *cache.TreeCache, validator *validator.Validate) *ScoreService {
	return &ScoreService{
		repo:         repo,
		employeeRepo: employeeRepo,
		positionRepo: positionRepo,
		treeCache:    treeCache,
		validator:    validator,
	}
}

// CreateScoreRequest represents the request to record a score
type CreateScoreRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	AuthorID   uuid.UUID `json:"author_id" validate:"required"`
	PositionID uuid.UUID `json:"position_id" validate:"required"`
	Efficiency int       `json:"efficiency" validate:"required,min=1,max=5"`
	Engagement int       `json:"engagement" validate:"required,min=1,max=5"`
	Competency int       `json:"competency" validate:"required,min=1,max=5"`
}

// UpdateScoreRequest represents the request to correct an existing score
type UpdateScoreRequest struct {
	Efficiency int `json:"efficiency" validate:"required,min=1,max=5"`
	Engagement int `json:"engagement" validate:"required,min=1,max=5"`
	Competency int `json:"competency" validate:"required,min=1,max=5"`
}

// ScoreResponse represents the response for score operations
type ScoreResponse struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	PositionID uuid.UUID `json:"position_id"`
	Efficiency int       `json:"efficiency"`
	Engagement int       `json:"engagement"`
	Competency int       `json:"competency"`
	CreatedAt  time.Time `json:"created_at"`
}

// ScoreListResponse represents a paginated list of scores
type ScoreListResponse struct {
	Scores   []ScoreResponse `json:"scores"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create records a new score. Sub-score range is validated before any store
// access.
func (s *ScoreService) Create(ctx context.Context, req *CreateScoreRequest) (*ScoreResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.employeeRepo.GetByID(req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}
	if _, err := s.employeeRepo.GetByID(req.AuthorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("author")
		}
		return nil, fmt.Errorf("failed to verify author: %w", err)
	}
	// The position records the rating context; it may already be
	// soft-deleted by the time a late score lands.
	position, err := s.positionRepo.GetByIDIncludingDeleted(req.PositionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to verify position: %w", err)
	}

	score := &models.Score{
		EmployeeID: req.EmployeeID,
		AuthorID:   req.AuthorID,
		PositionID: req.PositionID,
		Efficiency: req.Efficiency,
		Engagement: req.Engagement,
		Competency: req.Competency,
	}
	if err := s.repo.Create(score); err != nil {
		return nil, fmt.Errorf("failed to create score: %w", err)
	}

	s.treeCache.InvalidateCompany(ctx, position.CompanyID.String())

	return toScoreResponse(score), nil
}

// Update corrects an existing score's sub-scores
func (s *ScoreService) Update(ctx context.Context, id uuid.UUID, req *UpdateScoreRequest) (*ScoreResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	score, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScoreNotFound
		}
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	score.Efficiency = req.Efficiency
	score.Engagement = req.Engagement
	score.Competency = req.Competency
	if err := s.repo.Update(score); err != nil {
		return nil, fmt.Errorf("failed to update score: %w", err)
	}

	if position, err := s.positionRepo.GetByIDIncludingDeleted(score.PositionID); err == nil {
		s.treeCache.InvalidateCompany(ctx, position.CompanyID.String())
	}

	return toScoreResponse(score), nil
}

// LatestScore returns the employee's most recent score within the window.
// An empty window yields (nil, nil) — a defined "no score" result, never an
// error, so tree rendering can show a neutral state.
func (s *ScoreService) LatestScore(employeeID uuid.UUID, from, to time.Time) (*ScoreResponse, error) {
	if from.After(to) {
		return nil, apperrors.ErrInvalidScoreWindow
	}
	if _, err := s.employeeRepo.GetByID(employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}

	score, err := s.repo.LatestForEmployee(employeeID, from, to)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest score: %w", err)
	}
	return toScoreResponse(score), nil
}

// GetByEmployee returns an employee's scores, newest first, paginated
func (s *ScoreService) GetByEmployee(employeeID uuid.UUID, page, pageSize int) (*ScoreListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	scores, total, err := s.repo.GetByEmployee(employeeID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}

	resp := &ScoreListResponse{
		Scores:   make([]ScoreResponse, 0, len(scores)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range scores {
		resp.Scores = append(resp.Scores, *toScoreResponse(&scores[i]))
	}
	return resp, nil
}

func toScoreResponse(score *models.Score) *ScoreResponse {
	return &ScoreResponse{
		ID:         score.ID,
		EmployeeID: score.EmployeeID,
		AuthorID:   score.AuthorID,
		PositionID: score.PositionID,
		Efficiency: score.Efficiency,
		Engagement: score.Engagement,
		Competency: score.Competency,
		CreatedAt:  score.CreatedAt,
	}
}
