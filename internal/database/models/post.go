package models

import (
	"github.com/google/uuid"
)

// Post represents a job title / salary grade. Post occupancy is tracked
// independently of organizational position occupancy.
type Post struct {
	BaseModel
	CompanyID   uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_posts_company_name" validate:"required"`
	Name        string    `json:"name" gorm:"size:100;not null;uniqueIndex:idx_posts_company_name" validate:"required,min=1,max=100"`
	Grade       int       `json:"grade" gorm:"not null;default:0" validate:"gte=0"`
	Description string    `json:"description" gorm:"size:500" validate:"max=500"`

	// Relationships
	Company         *Company         `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	PostAssignments []PostAssignment `json:"post_assignments,omitempty" gorm:"foreignKey:PostID"`
}

// TableName returns the table name for Post
func (Post) TableName() string {
	return "posts"
}
