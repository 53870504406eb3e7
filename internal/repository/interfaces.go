package repository

import (
	"time"

	"github.com/google/uuid"

	"performance-portal-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByID(id uuid.UUID) (*models.Company, error)
	GetByName(name string) (*models.Company, error)
	GetAll(limit, offset int) ([]models.Company, int64, error)
	Update(company *models.Company) error
	Delete(id uuid.UUID) error
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByEmail(email string) (*models.Employee, error)
	GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Employee, int64, error)
	GetByIDs(ids []uuid.UUID) ([]models.Employee, error)
	Update(employee *models.Employee) error
	Delete(id uuid.UUID) error
}

// PostRepositoryInterface defines the interface for post repository operations
type PostRepositoryInterface interface {
	Create(post *models.Post) error
	GetByID(id uuid.UUID) (*models.Post, error)
	GetByName(companyID uuid.UUID, name string) (*models.Post, error)
	GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Post, int64, error)
	Update(post *models.Post) error
	Delete(id uuid.UUID) error
}

// PositionRepositoryInterface defines the interface for position repository operations
type PositionRepositoryInterface interface {
	Create(position *models.Position) error
	GetByID(id uuid.UUID) (*models.Position, error)
	GetByIDIncludingDeleted(id uuid.UUID) (*models.Position, error)
	GetByCompanyID(companyID uuid.UUID) ([]models.Position, error)
	GetByCompanyIDIncludingDeleted(companyID uuid.UUID) ([]models.Position, error)
	UpdateTitle(id uuid.UUID, title string) error
	Reparent(id uuid.UUID, newParentID *uuid.UUID) error
	ReparentPromotingChildren(id uuid.UUID, newParentID, oldParentID *uuid.UUID) error
	SoftDelete(id uuid.UUID) error
	CountChildren(id uuid.UUID) (int64, error)
}

// PositionAssignmentRepositoryInterface defines the interface for the
// position-occupancy history ledger
type PositionAssignmentRepositoryInterface interface {
	Create(assignment *models.PositionAssignment) error
	GetByID(id uuid.UUID) (*models.PositionAssignment, error)
	GetOpenByEmployee(employeeID uuid.UUID) (*models.PositionAssignment, error)
	GetOpenByPosition(positionID uuid.UUID) (*models.PositionAssignment, error)
	GetOpenByPositionIDs(positionIDs []uuid.UUID) ([]models.PositionAssignment, error)
	GetByEmployee(employeeID uuid.UUID) ([]models.PositionAssignment, error)
	Close(positionID, employeeID uuid.UUID, endDate time.Time) error
}

// PostAssignmentRepositoryInterface defines the interface for the
// post-occupancy history ledger
type PostAssignmentRepositoryInterface interface {
	Create(assignment *models.PostAssignment) error
	GetByID(id uuid.UUID) (*models.PostAssignment, error)
	GetOpenByEmployee(employeeID uuid.UUID) (*models.PostAssignment, error)
	GetOpenByPost(postID uuid.UUID) ([]models.PostAssignment, error)
	GetByEmployee(employeeID uuid.UUID) ([]models.PostAssignment, error)
	Close(postID, employeeID uuid.UUID, endDate time.Time) error
}

// ScoreRepositoryInterface defines the interface for score repository operations
type ScoreRepositoryInterface interface {
	Create(score *models.Score) error
	GetByID(id uuid.UUID) (*models.Score, error)
	GetByEmployee(employeeID uuid.UUID, limit, offset int) ([]models.Score, int64, error)
	LatestForEmployee(employeeID uuid.UUID, from, to time.Time) (*models.Score, error)
	LatestForEmployees(employeeIDs []uuid.UUID, from, to time.Time) ([]models.Score, error)
	Update(score *models.Score) error
}
