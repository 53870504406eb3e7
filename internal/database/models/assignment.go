package models

import (
	"time"

	"github.com/google/uuid"
)

// PositionAssignment is one interval in the position-occupancy history: the
// employee held the position from StartDate until EndDate, or still holds it
// when EndDate is nil. The partial unique index keeps the core invariant at
// the database level: at most one open interval per employee, so "current
// position" is always well defined.
type PositionAssignment struct {
	BaseModel
	PositionID uuid.UUID  `json:"position_id" gorm:"type:uuid;not null;index" validate:"required"`
	EmployeeID uuid.UUID  `json:"employee_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_open_position_per_employee,where:end_date IS NULL" validate:"required"`
	StartDate  time.Time  `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate    *time.Time `json:"end_date,omitempty" gorm:"type:date"`

	// Relationships
	Position *Position `json:"position,omitempty" gorm:"foreignKey:PositionID"`
	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName returns the table name for PositionAssignment
func (PositionAssignment) TableName() string {
	return "position_assignments"
}

// IsOpen reports whether the assignment has no end date yet.
func (a *PositionAssignment) IsOpen() bool {
	return a.EndDate == nil
}

// PostAssignment mirrors PositionAssignment for post (job title) occupancy,
// which changes independently of where the employee sits in the org tree.
type PostAssignment struct {
	BaseModel
	PostID     uuid.UUID  `json:"post_id" gorm:"type:uuid;not null;index" validate:"required"`
	EmployeeID uuid.UUID  `json:"employee_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_open_post_per_employee,where:end_date IS NULL" validate:"required"`
	StartDate  time.Time  `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate    *time.Time `json:"end_date,omitempty" gorm:"type:date"`

	// Relationships
	Post     *Post     `json:"post,omitempty" gorm:"foreignKey:PostID"`
	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName returns the table name for PostAssignment
func (PostAssignment) TableName() string {
	return "post_assignments"
}

// IsOpen reports whether the assignment has no end date yet.
func (a *PostAssignment) IsOpen() bool {
	return a.EndDate == nil
}
