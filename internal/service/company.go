package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"performance-portal-backend/internal/database/models"
	apperrors "performance-portal-backend/internal/errors"
	"performance-portal-backend/internal/repository"
)

// CompanyService handles business logic for companies
type CompanyService struct {
	repo      repository.CompanyRepositoryInterface
	validator *validator.Validate
}

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.CompanyRepositoryInterface, validator *validator.Validate) *CompanyService {
	return &CompanyService{repo: repo, validator: validator}
}

// CreateCompanyRequest represents the request to create a company
type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateCompanyRequest represents the request to update a company
type UpdateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// CompanyResponse represents the response for company operations
type CompanyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// CompanyListResponse represents a paginated list of companies
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// Create creates a new company
func (s *CompanyService) Create(req *CreateCompanyRequest) (*CompanyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing company: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCompanyExists
	}

	company := &models.Company{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return s.toResponse(company), nil
}

// GetByID retrieves a company by ID
func (s *CompanyService) GetByID(id uuid.UUID) (*CompanyResponse, error) {
	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return s.toResponse(company), nil
}

// List retrieves companies with pagination
func (s *CompanyService) List(page, pageSize int) (*CompanyListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	companies, total, err := s.repo.GetAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	resp := &CompanyListResponse{
		Companies: make([]CompanyResponse, 0, len(companies)),
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}
	for i := range companies {
		resp.Companies = append(resp.Companies, *s.toResponse(&companies[i]))
	}
	return resp, nil
}

// Update updates a company
func (s *CompanyService) Update(id uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	company.Name = req.Name
	company.Description = req.Description
	if err := s.repo.Update(company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return s.toResponse(company), nil
}

// Delete deletes a company
func (s *CompanyService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to get company: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

func (s *CompanyService) toResponse(company *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:          company.ID,
		Name:        company.Name,
		Description: company.Description,
		CreatedAt:   company.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   company.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
