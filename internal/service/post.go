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

// PostService handles business logic for posts (job titles)
type PostService struct {
	repo        repository.PostRepositoryInterface
	companyRepo repository.CompanyRepositoryInterface
	validator   *validator.Validate
}

// NewPostService creates a new post service
func NewPostService(repo repository.PostRepositoryInterface, companyRepo repository.CompanyRepositoryInterface, validator *validator.Validate) *PostService {
	return &PostService{repo: repo, companyRepo: companyRepo, validator: validator}
}

// CreatePostRequest represents the request to create a post
type CreatePostRequest struct {
	CompanyID   uuid.UUID `json:"company_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	Grade       int       `json:"grade" validate:"gte=0"`
	Description string    `json:"description" validate:"max=500"`
}

// UpdatePostRequest represents the request to update a post
type UpdatePostRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Grade       int    `json:"grade" validate:"gte=0"`
	Description string `json:"description" validate:"max=500"`
}

// PostResponse represents the response for post operations
type PostResponse struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"company_id"`
	Name        string    `json:"name"`
	Grade       int       `json:"grade"`
	Description string    `json:"description"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// PostListResponse represents a paginated list of posts
type PostListResponse struct {
	Posts    []PostResponse `json:"posts"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new post
func (s *PostService) Create(req *CreatePostRequest) (*PostResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.companyRepo.GetByID(req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to verify company: %w", err)
	}

	existing, err := s.repo.GetByName(req.CompanyID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing post: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrPostExists
	}

	post := &models.Post{
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		Grade:       req.Grade,
		Description: req.Description,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return s.toResponse(post), nil
}

// GetByID retrieves a post by ID
func (s *PostService) GetByID(id uuid.UUID) (*PostResponse, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return s.toResponse(post), nil
}

// GetByCompany retrieves a company's posts with pagination
func (s *PostService) GetByCompany(companyID uuid.UUID, page, pageSize int) (*PostListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	posts, total, err := s.repo.GetByCompanyID(companyID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	resp := &PostListResponse{
		Posts:    make([]PostResponse, 0, len(posts)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range posts {
		resp.Posts = append(resp.Posts, *s.toResponse(&posts[i]))
	}
	return resp, nil
}

// Update updates a post
func (s *PostService) Update(id uuid.UUID, req *UpdatePostRequest) (*PostResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	post, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	post.Name = req.Name
	post.Grade = req.Grade
	post.Description = req.Description
	if err := s.repo.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return s.toResponse(post), nil
}

// Delete deletes a post
func (s *PostService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("failed to get post: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

func (s *PostService) toResponse(post *models.Post) *PostResponse {
	return &PostResponse{
		ID:          post.ID,
		CompanyID:   post.CompanyID,
		Name:        post.Name,
		Grade:       post.Grade,
		Description: post.Description,
		CreatedAt:   post.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   post.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
