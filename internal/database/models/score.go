package models

import (
	"github.com/google/uuid"
)

// Score is a periodic performance rating given to an employee by an author
// (usually the manager), recorded against the position the employee held at
// rating time. Sub-scores are constrained to [1,5]. Scores never expire;
// "recent" is always a caller-supplied time window over CreatedAt.
type Score struct {
	BaseModel
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	AuthorID   uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index" validate:"required"`
	PositionID uuid.UUID `json:"position_id" gorm:"type:uuid;not null;index" validate:"required"`
	Efficiency int       `json:"efficiency" gorm:"not null" validate:"required,min=1,max=5"`
	Engagement int       `json:"engagement" gorm:"not null" validate:"required,min=1,max=5"`
	Competency int       `json:"competency" gorm:"not null" validate:"required,min=1,max=5"`

	// Relationships
	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	Author   *Employee `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Position *Position `json:"position,omitempty" gorm:"foreignKey:PositionID"`
}

// TableName returns the table name for Score
func (Score) TableName() string {
	return "scores"
}
