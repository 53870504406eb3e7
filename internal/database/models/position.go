package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Position is a node in a company's organizational tree: a slot in the org
// chart, distinct from the employee occupying it and from the post (job
// title) attached to that employee. The parent relation forms a forest per
// company; a nil ParentID marks a head position. Cycles are rejected at
// write time, and read-side traversals carry a visited-set guard anyway.
//
// Positions are soft-deleted only: assignment history keeps referencing the
// row after deletion.
type Position struct {
	BaseModel
	CompanyID uuid.UUID      `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	ParentID  *uuid.UUID     `json:"parent_id,omitempty" gorm:"type:uuid;index"`
	Title     string         `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	// Relationships
	Company  *Company   `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Parent   *Position  `json:"-" gorm:"foreignKey:ParentID"`
	Children []Position `json:"children,omitempty" gorm:"foreignKey:ParentID"`

	PositionAssignments []PositionAssignment `json:"position_assignments,omitempty" gorm:"foreignKey:PositionID"`
}

// TableName returns the table name for Position
func (Position) TableName() string {
	return "positions"
}
