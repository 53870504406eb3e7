package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"performance-portal-backend/internal/database/models"
)

// PositionAssignmentRepository handles the position-occupancy history ledger.
// Rows are append-mostly: an interval is created open and later closed by
// setting its end date; it is never rewritten beyond that.
type PositionAssignmentRepository struct {
	db *gorm.DB
}

// NewPositionAssignmentRepository creates a new position assignment repository
func NewPositionAssignmentRepository(db *gorm.DB) *PositionAssignmentRepository {
	return &PositionAssignmentRepository{db: db}
}

// Create appends a new interval to the ledger. The partial unique index on
// (employee_id) WHERE end_date IS NULL makes a second open interval fail even
// under concurrent writers.
func (r *PositionAssignmentRepository) Create(assignment *models.PositionAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves an assignment by ID
func (r *PositionAssignmentRepository) GetByID(id uuid.UUID) (*models.PositionAssignment, error) {
	var assignment models.PositionAssignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetOpenByEmployee returns the employee's open interval, i.e. the position
// the employee currently holds
func (r *PositionAssignmentRepository) GetOpenByEmployee(employeeID uuid.UUID) (*models.PositionAssignment, error) {
	var assignment models.PositionAssignment
	err := r.db.First(&assignment, "employee_id = ? AND end_date IS NULL", employeeID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetOpenByPosition returns the open interval on a position, i.e. its
// current holder
func (r *PositionAssignmentRepository) GetOpenByPosition(positionID uuid.UUID) (*models.PositionAssignment, error) {
	var assignment models.PositionAssignment
	err := r.db.Preload("Employee").First(&assignment, "position_id = ? AND end_date IS NULL", positionID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetOpenByPositionIDs batch-loads the open intervals of a set of positions
// with their employees. This is the occupancy-overlay input of the org-tree
// resolution: one query for the whole subtree instead of one per node.
func (r *PositionAssignmentRepository) GetOpenByPositionIDs(positionIDs []uuid.UUID) ([]models.PositionAssignment, error) {
	if len(positionIDs) == 0 {
		return nil, nil
	}
	var assignments []models.PositionAssignment
	err := r.db.Preload("Employee").
		Where("position_id IN ? AND end_date IS NULL", positionIDs).
		Find(&assignments).Error
	return assignments, err
}

// GetByEmployee returns the employee's full position history, most recent
// interval first
func (r *PositionAssignmentRepository) GetByEmployee(employeeID uuid.UUID) ([]models.PositionAssignment, error) {
	var assignments []models.PositionAssignment
	err := r.db.Preload("Position").
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&assignments).Error
	return assignments, err
}

// Close sets the end date on the open interval of (position, employee).
// Returns gorm.ErrRecordNotFound when no such open interval exists.
func (r *PositionAssignmentRepository) Close(positionID, employeeID uuid.UUID, endDate time.Time) error {
	result := r.db.Model(&models.PositionAssignment{}).
		Where("position_id = ? AND employee_id = ? AND end_date IS NULL", positionID, employeeID).
		Update("end_date", endDate)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
