package testutils

import (
	"fmt"
	"time"

	"performance-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with default values
func (f *CompanyFactory) Create() *models.Company {
	id := uuid.New()
	return &models.Company{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique suffix keeps the name index happy across tests
		Name:        "Test Company " + id.String()[:8],
		Description: "A test company",
	}
}

// WithName sets a custom name for the company
func (f *CompanyFactory) WithName(name string) *models.Company {
	company := f.Create()
	company.Name = name
	return company
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID: uuid.New(),
		FullName:  "Jane Doe",
		Email:     fmt.Sprintf("jane.doe+%s@test.com", id.String()[:8]),
		Phone:     "+1-555-0123",
		IsActive:  true,
	}
}

// WithCompany sets the company ID for the employee
func (f *EmployeeFactory) WithCompany(companyID uuid.UUID) *models.Employee {
	employee := f.Create()
	employee.CompanyID = companyID
	return employee
}

// WithFullName sets a custom full name for the employee
func (f *EmployeeFactory) WithFullName(companyID uuid.UUID, fullName string) *models.Employee {
	employee := f.WithCompany(companyID)
	employee.FullName = fullName
	return employee
}

// PostFactory provides methods to create test Post data
type PostFactory struct{}

// NewPostFactory creates a new PostFactory
func NewPostFactory() *PostFactory {
	return &PostFactory{}
}

// Create creates a test Post with default values
func (f *PostFactory) Create() *models.Post {
	id := uuid.New()
	return &models.Post{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:   uuid.New(),
		Name:        "Engineer " + id.String()[:8],
		Grade:       3,
		Description: "A test post",
	}
}

// WithCompany sets the company ID for the post
func (f *PostFactory) WithCompany(companyID uuid.UUID) *models.Post {
	post := f.Create()
	post.CompanyID = companyID
	return post
}

// PositionFactory provides methods to create test Position data
type PositionFactory struct{}

// NewPositionFactory creates a new PositionFactory
func NewPositionFactory() *PositionFactory {
	return &PositionFactory{}
}

// Create creates a test head Position with default values
func (f *PositionFactory) Create() *models.Position {
	id := uuid.New()
	return &models.Position{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID: uuid.New(),
		Title:     "Position " + id.String()[:8],
	}
}

// WithCompany sets the company ID for the position
func (f *PositionFactory) WithCompany(companyID uuid.UUID) *models.Position {
	position := f.Create()
	position.CompanyID = companyID
	return position
}

// WithParent creates a child position under the given parent
func (f *PositionFactory) WithParent(companyID, parentID uuid.UUID) *models.Position {
	position := f.WithCompany(companyID)
	position.ParentID = &parentID
	return position
}

// AssignmentFactory provides methods to create test assignment ledger data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// OpenPosition creates an open position assignment starting daysAgo days back
func (f *AssignmentFactory) OpenPosition(positionID, employeeID uuid.UUID, daysAgo int) *models.PositionAssignment {
	return &models.PositionAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PositionID: positionID,
		EmployeeID: employeeID,
		StartDate:  time.Now().UTC().AddDate(0, 0, -daysAgo).Truncate(24 * time.Hour),
	}
}

// ClosedPosition creates a closed position assignment interval
func (f *AssignmentFactory) ClosedPosition(positionID, employeeID uuid.UUID, startDaysAgo, endDaysAgo int) *models.PositionAssignment {
	assignment := f.OpenPosition(positionID, employeeID, startDaysAgo)
	end := time.Now().UTC().AddDate(0, 0, -endDaysAgo).Truncate(24 * time.Hour)
	assignment.EndDate = &end
	return assignment
}

// OpenPost creates an open post assignment starting daysAgo days back
func (f *AssignmentFactory) OpenPost(postID, employeeID uuid.UUID, daysAgo int) *models.PostAssignment {
	return &models.PostAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PostID:     postID,
		EmployeeID: employeeID,
		StartDate:  time.Now().UTC().AddDate(0, 0, -daysAgo).Truncate(24 * time.Hour),
	}
}

// ClosedPost creates a closed post assignment interval
func (f *AssignmentFactory) ClosedPost(postID, employeeID uuid.UUID, startDaysAgo, endDaysAgo int) *models.PostAssignment {
	assignment := f.OpenPost(postID, employeeID, startDaysAgo)
	end := time.Now().UTC().AddDate(0, 0, -endDaysAgo).Truncate(24 * time.Hour)
	assignment.EndDate = &end
	return assignment
}

// ScoreFactory provides methods to create test Score data
type ScoreFactory struct{}

// NewScoreFactory creates a new ScoreFactory
func NewScoreFactory() *ScoreFactory {
	return &ScoreFactory{}
}

// Create creates a test Score with default values
func (f *ScoreFactory) Create(employeeID, authorID, positionID uuid.UUID) *models.Score {
	return &models.Score{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeID: employeeID,
		AuthorID:   authorID,
		PositionID: positionID,
		Efficiency: 3,
		Engagement: 4,
		Competency: 3,
	}
}

// WithValues creates a score with explicit sub-scores
func (f *ScoreFactory) WithValues(employeeID, authorID, positionID uuid.UUID, efficiency, engagement, competency int) *models.Score {
	score := f.Create(employeeID, authorID, positionID)
	score.Efficiency = efficiency
	score.Engagement = engagement
	score.Competency = competency
	return score
}

// FactorySet provides access to all test data factories
type FactorySet struct {
	Company    *CompanyFactory
	Employee   *EmployeeFactory
	Post       *PostFactory
	Position   *PositionFactory
	Assignment *AssignmentFactory
	Score      *ScoreFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Company:    NewCompanyFactory(),
		Employee:   NewEmployeeFactory(),
		Post:       NewPostFactory(),
		Position:   NewPositionFactory(),
		Assignment: NewAssignmentFactory(),
		Score:      NewScoreFactory(),
	}
}
