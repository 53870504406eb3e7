package models

// Company represents a company whose organization is tracked by the platform
type Company struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`

	// Relationships
	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:CompanyID"`
	Positions []Position `json:"positions,omitempty" gorm:"foreignKey:CompanyID"`
	Posts     []Post     `json:"posts,omitempty" gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
