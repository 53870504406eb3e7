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

// AssignmentService owns the write path of both occupancy ledgers and the
// invariants they protect: no future dates, start before end, and at most
// one open interval per employee per ledger. A second open assignment is
// rejected outright; callers close the prior interval first.
type AssignmentService struct {
	positionAssignRepo repository.PositionAssignmentRepositoryInterface
	postAssignRepo     repository.PostAssignmentRepositoryInterface
	positionRepo       repository.PositionRepositoryInterface
	postRepo           repository.PostRepositoryInterface
	employeeRepo       repository.EmployeeRepositoryInterface
	treeCache          *cache.TreeCache
	validator          *validator.Validate
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	positionAssignRepo repository.PositionAssignmentRepositoryInterface,
	postAssignRepo repository.PostAssignmentRepositoryInterface,
	positionRepo repository.PositionRepositoryInterface,
	postRepo repository.PostRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	treeCache *cache.TreeCache,
	validator *validator.Validate,
) *AssignmentService {
	return &AssignmentService{
		positionAssignRepo: positionAssignRepo,
		postAssignRepo:     postAssignRepo,
		positionRepo:       positionRepo,
		postRepo:           postRepo,
		employeeRepo:       employeeRepo,
		treeCache:          treeCache,
		validator:          validator,
	}
}

// AssignPositionRequest represents the request to open a position assignment
type AssignPositionRequest struct {
	PositionID uuid.UUID `json:"position_id" validate:"required"`
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	StartDate  string    `json:"start_date" validate:"required"`
}

// AssignPostRequest represents the request to open a post assignment
type AssignPostRequest struct {
	PostID     uuid.UUID `json:"post_id" validate:"required"`
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	StartDate  string    `json:"start_date" validate:"required"`
}

// CloseAssignmentRequest represents the request to close an open assignment.
// SubjectID is the position or post id depending on the ledger.
type CloseAssignmentRequest struct {
	SubjectID  uuid.UUID `json:"subject_id" validate:"required"`
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	EndDate    string    `json:"end_date" validate:"required"`
}

// PositionAssignmentResponse represents one interval of the position ledger
type PositionAssignmentResponse struct {
	ID         uuid.UUID `json:"id"`
	PositionID uuid.UUID `json:"position_id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	StartDate  string    `json:"start_date"`
	EndDate    *string   `json:"end_date,omitempty"`
}

// PostAssignmentResponse represents one interval of the post ledger
type PostAssignmentResponse struct {
	ID         uuid.UUID `json:"id"`
	PostID     uuid.UUID `json:"post_id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	StartDate  string    `json:"start_date"`
	EndDate    *string   `json:"end_date,omitempty"`
}

// CurrentHolderResponse identifies the current occupant of a position
type CurrentHolderResponse struct {
	PositionID uuid.UUID `json:"position_id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Since      string    `json:"since"`
}

// EmployeeHistoryResponse is the combined assignment history of an employee
type EmployeeHistoryResponse struct {
	EmployeeID          uuid.UUID                    `json:"employee_id"`
	PositionAssignments []PositionAssignmentResponse `json:"position_assignments"`
	PostAssignments     []PostAssignmentResponse     `json:"post_assignments"`
}

// parseDate parses a calendar date and rejects future dates. Assignment
// dates are date-only on the wire; comparisons truncate "now" to the day.
func parseDate(field, value string) (time.Time, error) {
	date, err := time.Parse(models.DateOnly, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "must be a calendar date in YYYY-MM-DD format")
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.After(today) {
		return time.Time{}, apperrors.ErrDateInFuture
	}
	return date, nil
}

// AssignPosition opens a new interval in the position ledger
func (s *AssignmentService) AssignPosition(ctx context.Context, req *AssignPositionRequest) (*PositionAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}
	position, err := s.positionRepo.GetByID(req.PositionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to verify position: %w", err)
	}

	// Close-then-open policy: an employee with an open interval must close
	// it before getting a new one.
	if _, err := s.positionAssignRepo.GetOpenByEmployee(req.EmployeeID); err == nil {
		return nil, apperrors.ErrOpenPositionAssignment
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check open assignment: %w", err)
	}

	// A position seats one employee at a time.
	if _, err := s.positionAssignRepo.GetOpenByPosition(req.PositionID); err == nil {
		return nil, apperrors.ErrPositionAlreadyOccupied
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check position occupancy: %w", err)
	}

	assignment := &models.PositionAssignment{
		PositionID: req.PositionID,
		EmployeeID: req.EmployeeID,
		StartDate:  start,
	}
	if err := s.positionAssignRepo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create position assignment: %w", err)
	}

	s.treeCache.InvalidateCompany(ctx, position.CompanyID.String())

	return toPositionAssignmentResponse(assignment), nil
}

// ClosePositionAssignment closes the open interval of (position, employee)
func (s *AssignmentService) ClosePositionAssignment(ctx context.Context, req *CloseAssignmentRequest) (*PositionAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}

	open, err := s.positionAssignRepo.GetOpenByEmployee(req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to find open assignment: %w", err)
	}
	if open.PositionID != req.SubjectID {
		return nil, apperrors.ErrPositionAssignmentNotFound
	}
	if end.Before(open.StartDate) {
		return nil, apperrors.ErrStartAfterEnd
	}

	if err := s.positionAssignRepo.Close(req.SubjectID, req.EmployeeID, end); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to close position assignment: %w", err)
	}

	if position, err := s.positionRepo.GetByIDIncludingDeleted(req.SubjectID); err == nil {
		s.treeCache.InvalidateCompany(ctx, position.CompanyID.String())
	}

	open.EndDate = &end
	return toPositionAssignmentResponse(open), nil
}

// AssignPost opens a new interval in the post ledger
func (s *AssignmentService) AssignPost(ctx context.Context, req *AssignPostRequest) (*PostAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}
	post, err := s.postRepo.GetByID(req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to verify post: %w", err)
	}

	if _, err := s.postAssignRepo.GetOpenByEmployee(req.EmployeeID); err == nil {
		return nil, apperrors.ErrOpenPostAssignment
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check open assignment: %w", err)
	}

	assignment := &models.PostAssignment{
		PostID:     req.PostID,
		EmployeeID: req.EmployeeID,
		StartDate:  start,
	}
	if err := s.postAssignRepo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create post assignment: %w", err)
	}

	s.treeCache.InvalidateCompany(ctx, post.CompanyID.String())

	return toPostAssignmentResponse(assignment), nil
}

// ClosePostAssignment closes the open interval of (post, employee)
func (s *AssignmentService) ClosePostAssignment(ctx context.Context, req *CloseAssignmentRequest) (*PostAssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}

	open, err := s.postAssignRepo.GetOpenByEmployee(req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to find open assignment: %w", err)
	}
	if open.PostID != req.SubjectID {
		return nil, apperrors.ErrPostAssignmentNotFound
	}
	if end.Before(open.StartDate) {
		return nil, apperrors.ErrStartAfterEnd
	}

	if err := s.postAssignRepo.Close(req.SubjectID, req.EmployeeID, end); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to close post assignment: %w", err)
	}

	if post, err := s.postRepo.GetByID(req.SubjectID); err == nil {
		s.treeCache.InvalidateCompany(ctx, post.CompanyID.String())
	}

	open.EndDate = &end
	return toPostAssignmentResponse(open), nil
}

// CurrentHolder resolves the employee currently occupying a position
func (s *AssignmentService) CurrentHolder(positionID uuid.UUID) (*CurrentHolderResponse, error) {
	if _, err := s.positionRepo.GetByID(positionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to verify position: %w", err)
	}

	open, err := s.positionAssignRepo.GetOpenByPosition(positionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionVacant
		}
		return nil, fmt.Errorf("failed to find current holder: %w", err)
	}

	resp := &CurrentHolderResponse{
		PositionID: positionID,
		EmployeeID: open.EmployeeID,
		Since:      open.StartDate.Format(models.DateOnly),
	}
	if open.Employee != nil {
		resp.FullName = open.Employee.FullName
	}
	return resp, nil
}

// EmployeeHistory returns both ledgers of an employee, newest intervals first
func (s *AssignmentService) EmployeeHistory(employeeID uuid.UUID) (*EmployeeHistoryResponse, error) {
	if _, err := s.employeeRepo.GetByID(employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}

	positionHistory, err := s.positionAssignRepo.GetByEmployee(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load position history: %w", err)
	}
	postHistory, err := s.postAssignRepo.GetByEmployee(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load post history: %w", err)
	}

	resp := &EmployeeHistoryResponse{
		EmployeeID:          employeeID,
		PositionAssignments: make([]PositionAssignmentResponse, 0, len(positionHistory)),
		PostAssignments:     make([]PostAssignmentResponse, 0, len(postHistory)),
	}
	for i := range positionHistory {
		resp.PositionAssignments = append(resp.PositionAssignments, *toPositionAssignmentResponse(&positionHistory[i]))
	}
	for i := range postHistory {
		resp.PostAssignments = append(resp.PostAssignments, *toPostAssignmentResponse(&postHistory[i]))
	}
	return resp, nil
}

func toPositionAssignmentResponse(a *models.PositionAssignment) *PositionAssignmentResponse {
	resp := &PositionAssignmentResponse{
		ID:         a.ID,
		PositionID: a.PositionID,
		EmployeeID: a.EmployeeID,
		StartDate:  a.StartDate.Format(models.DateOnly),
	}
	if a.EndDate != nil {
		end := a.EndDate.Format(models.DateOnly)
		resp.EndDate = &end
	}
	return resp
}

func toPostAssignmentResponse(a *models.PostAssignment) *PostAssignmentResponse {
	resp := &PostAssignmentResponse{
		ID:         a.ID,
		PostID:     a.PostID,
		EmployeeID: a.EmployeeID,
		StartDate:  a.StartDate.Format(models.DateOnly),
	}
	if a.EndDate != nil {
		end := a.EndDate.Format(models.DateOnly)
		resp.EndDate = &end
	}
	return resp
}
