package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee represents a person employed by a company. Which position or post
// an employee currently holds is never stored here; it is derived from the
// open interval in the assignment history tables.
type Employee struct {
	BaseModel
	CompanyID uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	FullName  string     `json:"full_name" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Email     string     `json:"email" gorm:"size:100;not null;uniqueIndex" validate:"required,email,max=100"`
	Phone     string     `json:"phone" gorm:"size:30" validate:"max=30"`
	HireDate  *time.Time `json:"hire_date,omitempty" gorm:"type:date"`
	IsActive  bool       `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Company             *Company             `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	PositionAssignments []PositionAssignment `json:"position_assignments,omitempty" gorm:"foreignKey:EmployeeID"`
	PostAssignments     []PostAssignment     `json:"post_assignments,omitempty" gorm:"foreignKey:EmployeeID"`
	Scores              []Score              `json:"scores,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
