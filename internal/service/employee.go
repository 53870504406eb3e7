package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"performance-portal-backend/internal/database/models"
	apperrors "performance-portal-backend/internal/errors"
	"performance-portal-backend/internal/repository"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	repo        repository.EmployeeRepositoryInterface
	companyRepo repository.CompanyRepositoryInterface
	validator   *validator.Validate
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(repo repository.EmployeeRepositoryInterface, companyRepo repository.CompanyRepositoryInterface, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{repo: repo, companyRepo: companyRepo, validator: validator}
}

// CreateEmployeeRequest represents the request to create an employee
type CreateEmployeeRequest struct {
	CompanyID uuid.UUID `json:"company_id" validate:"required"`
	FullName  string    `json:"full_name" validate:"required,min=1,max=200"`
	Email     string    `json:"email" validate:"required,email,max=100"`
	Phone     string    `json:"phone" validate:"max=30"`
	HireDate  string    `json:"hire_date,omitempty"`
}

// UpdateEmployeeRequest represents the request to update an employee
type UpdateEmployeeRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Phone    string `json:"phone" validate:"max=30"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// EmployeeResponse represents the response for employee operations
type EmployeeResponse struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	HireDate  *string   `json:"hire_date,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// EmployeeListResponse represents a paginated list of employees
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new employee
func (s *EmployeeService) Create(req *CreateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.companyRepo.GetByID(req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to verify company: %w", err)
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing employee: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmployeeExists
	}

	employee := &models.Employee{
		CompanyID: req.CompanyID,
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		IsActive:  true,
	}
	if req.HireDate != "" {
		hireDate, err := time.Parse(models.DateOnly, req.HireDate)
		if err != nil {
			return nil, apperrors.NewValidationError("hire_date", "must be a calendar date in YYYY-MM-DD format")
		}
		employee.HireDate = &hireDate
	}

	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.toResponse(employee), nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return s.toResponse(employee), nil
}

// GetByCompany retrieves a company's employees with pagination
func (s *EmployeeService) GetByCompany(companyID uuid.UUID, page, pageSize int) (*EmployeeListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	employees, total, err := s.repo.GetByCompanyID(companyID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := &EmployeeListResponse{
		Employees: make([]EmployeeResponse, 0, len(employees)),
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}
	for i := range employees {
		resp.Employees = append(resp.Employees, *s.toResponse(&employees[i]))
	}
	return resp, nil
}

// Update updates an employee
func (s *EmployeeService) Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	employee, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	employee.FullName = req.FullName
	employee.Phone = req.Phone
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	if err := s.repo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.toResponse(employee), nil
}

// Delete deletes an employee
func (s *EmployeeService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) toResponse(employee *models.Employee) *EmployeeResponse {
	resp := &EmployeeResponse{
		ID:        employee.ID,
		CompanyID: employee.CompanyID,
		FullName:  employee.FullName,
		Email:     employee.Email,
		Phone:     employee.Phone,
		IsActive:  employee.IsActive,
		CreatedAt: employee.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: employee.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if employee.HireDate != nil {
		hireDate := employee.HireDate.Format(models.DateOnly)
		resp.HireDate = &hireDate
	}
	return resp
}
