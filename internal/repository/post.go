package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"performance-portal-backend/internal/database/models"
)

// PostRepository handles database operations for posts
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create creates a new post
func (r *PostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByName retrieves a post by name within a company
func (r *PostRepository) GetByName(companyID uuid.UUID, name string) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, "company_id = ? AND name = ?", companyID, name).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByCompanyID retrieves all posts of a company with pagination
func (r *PostRepository) GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Post, int64, error) {
	var posts []models.Post
	var total int64

	if err := r.db.Model(&models.Post{}).Where("company_id = ?", companyID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("company_id = ?", companyID).Limit(limit).Offset(offset).Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// Update updates a post
func (r *PostRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete deletes a post
func (r *PostRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Post{}, "id = ?", id).Error
}
