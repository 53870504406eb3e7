package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"performance-portal-backend/internal/database/models"
)

// PostAssignmentRepository handles the post-occupancy history ledger,
// structurally the same ledger as position assignments but keyed on posts.
type PostAssignmentRepository struct {
	db *gorm.DB
}

// NewPostAssignmentRepository creates a new post assignment repository
func NewPostAssignmentRepository(db *gorm.DB) *PostAssignmentRepository {
	return &PostAssignmentRepository{db: db}
}

// Create appends a new interval to the ledger
func (r *PostAssignmentRepository) Create(assignment *models.PostAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves an assignment by ID
func (r *PostAssignmentRepository) GetByID(id uuid.UUID) (*models.PostAssignment, error) {
	var assignment models.PostAssignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetOpenByEmployee returns the employee's open interval, i.e. the post the
// employee currently holds
func (r *PostAssignmentRepository) GetOpenByEmployee(employeeID uuid.UUID) (*models.PostAssignment, error) {
	var assignment models.PostAssignment
	err := r.db.Preload("Post").First(&assignment, "employee_id = ? AND end_date IS NULL", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetOpenByPost returns all open intervals on a post. Unlike positions, a
// post (job title) is held by many employees at once.
func (r *PostAssignmentRepository) GetOpenByPost(postID uuid.UUID) ([]models.PostAssignment, error) {
	var assignments []models.PostAssignment
	err := r.db.Preload("Employee").
		Where("post_id = ? AND end_date IS NULL", postID).
		Find(&assignments).Error
	return assignments, err
}

// GetByEmployee returns the employee's full post history, most recent
// interval first
func (r *PostAssignmentRepository) GetByEmployee(employeeID uuid.UUID) ([]models.PostAssignment, error) {
	var assignments []models.PostAssignment
	err := r.db.Preload("Post").
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&assignments).Error
	return assignments, err
}

// Close sets the end date on the open interval of (post, employee).
// Returns gorm.ErrRecordNotFound when no such open interval exists.
func (r *PostAssignmentRepository) Close(postID, employeeID uuid.UUID, endDate time.Time) error {
	result := r.db.Model(&models.PostAssignment{}).
		Where("post_id = ? AND employee_id = ? AND end_date IS NULL", postID, employeeID).
		Update("end_date", endDate)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
