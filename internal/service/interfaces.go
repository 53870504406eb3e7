package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"performance-portal-backend/internal/hierarchy"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CompanyServiceInterface defines the interface for company service
type CompanyServiceInterface interface {
	Create(req *CreateCompanyRequest) (*CompanyResponse, error)
	GetByID(id uuid.UUID) (*CompanyResponse, error)
	List(page, pageSize int) (*CompanyListResponse, error)
	Update(id uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error)
	Delete(id uuid.UUID) error
}

// EmployeeServiceInterface defines the interface for employee service
type EmployeeServiceInterface interface {
	Create(req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(id uuid.UUID) (*EmployeeResponse, error)
	GetByCompany(companyID uuid.UUID, page, pageSize int) (*EmployeeListResponse, error)
	Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(id uuid.UUID) error
}

// PostServiceInterface defines the interface for post service
type PostServiceInterface interface {
	Create(req *CreatePostRequest) (*PostResponse, error)
	GetByID(id uuid.UUID) (*PostResponse, error)
	GetByCompany(companyID uuid.UUID, page, pageSize int) (*PostListResponse, error)
	Update(id uuid.UUID, req *UpdatePostRequest) (*PostResponse, error)
	Delete(id uuid.UUID) error
}

// PositionServiceInterface defines the interface for position service
type PositionServiceInterface interface {
	Create(ctx context.Context, req *CreatePositionRequest) (*PositionResponse, error)
	GetByID(id uuid.UUID) (*PositionResponse, error)
	UpdateTitle(ctx context.Context, id uuid.UUID, req *UpdateTitleRequest) (*PositionResponse, error)
	UpdateParent(ctx context.Context, id uuid.UUID, req *UpdateParentRequest) (*PositionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssignmentServiceInterface defines the interface for the assignment ledger service
type AssignmentServiceInterface interface {
	AssignPosition(ctx context.Context, req *AssignPositionRequest) (*PositionAssignmentResponse, error)
	ClosePositionAssignment(ctx context.Context, req *CloseAssignmentRequest) (*PositionAssignmentResponse, error)
	AssignPost(ctx context.Context, req *AssignPostRequest) (*PostAssignmentResponse, error)
	ClosePostAssignment(ctx context.Context, req *CloseAssignmentRequest) (*PostAssignmentResponse, error)
	CurrentHolder(positionID uuid.UUID) (*CurrentHolderResponse, error)
	EmployeeHistory(employeeID uuid.UUID) (*EmployeeHistoryResponse, error)
}

// ScoreServiceInterface defines the interface for score service
type ScoreServiceInterface interface {
	Create(ctx context.Context, req *CreateScoreRequest) (*ScoreResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateScoreRequest) (*ScoreResponse, error)
	LatestScore(employeeID uuid.UUID, from, to time.Time) (*ScoreResponse, error)
	GetByEmployee(employeeID uuid.UUID, page, pageSize int) (*ScoreListResponse, error)
}

// OrgTreeServiceInterface defines the interface for the org-tree resolution engine
type OrgTreeServiceInterface interface {
	Subordinates(positionID uuid.UUID, includeDeleted bool) ([]hierarchy.Node, error)
	CurrentOccupantsUnder(managerEmployeeID uuid.UUID) ([]hierarchy.OccupiedPosition, error)
	OrgTree(ctx context.Context, managerEmployeeID uuid.UUID, windowFrom, windowTo time.Time, includeScores bool) (*hierarchy.TreeNode, error)
}
