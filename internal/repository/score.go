package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"performance-portal-backend/internal/database/models"
)

// ScoreRepository handles database operations for performance scores
type ScoreRepository struct {
	db *gorm.DB
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// Create creates a new score
func (r *ScoreRepository) Create(score *models.Score) error {
	return r.db.Create(score).Error
}

// GetByID retrieves a score by ID
func (r *ScoreRepository) GetByID(id uuid.UUID) (*models.Score, error) {
	var score models.Score
	err := r.db.First(&score, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

// GetByEmployee retrieves an employee's scores with pagination, newest first
func (r *ScoreRepository) GetByEmployee(employeeID uuid.UUID, limit, offset int) ([]models.Score, int64, error) {
	var scores []models.Score
	var total int64

	if err := r.db.Model(&models.Score{}).Where("employee_id = ?", employeeID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("employee_id = ?", employeeID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&scores).Error
	if err != nil {
		return nil, 0, err
	}

	return scores, total, nil
}

// LatestForEmployee returns the employee's most recent score within the
// window. Ties on created_at resolve to the greater id, so the result is
// deterministic. No score in the window surfaces as gorm.ErrRecordNotFound;
// the service layer turns that into a "no score" result, not an error.
func (r *ScoreRepository) LatestForEmployee(employeeID uuid.UUID, from, to time.Time) (*models.Score, error) {
	var score models.Score
	err := r.db.Where("employee_id = ? AND created_at >= ? AND created_at <= ?", employeeID, from, to).
		Order("created_at DESC, id DESC").
		First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

// LatestForEmployees returns, for each employee in the set, the most recent
// score within the window. One DISTINCT ON query for the whole subtree's
// occupants; employees without a score in the window simply have no row.
func (r *ScoreRepository) LatestForEmployees(employeeIDs []uuid.UUID, from, to time.Time) ([]models.Score, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	var scores []models.Score
	err := r.db.Raw(`
		SELECT DISTINCT ON (employee_id) *
		FROM scores
		WHERE employee_id IN ? AND created_at >= ? AND created_at <= ?
		ORDER BY employee_id, created_at DESC, id DESC
	`, employeeIDs, from, to).Scan(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// Update updates a score
func (r *ScoreRepository) Update(score *models.Score) error {
	return r.db.Save(score).Error
}
