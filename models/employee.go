package models

import (
	"time"
)

// Employee represents an employee record; linked to its User account
// only by email string equality.
type Employee struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	EmployeeID     string     `gorm:"type:varchar(20);unique;not null" json:"employee_id"`
	Name           string     `gorm:"type:varchar(100);not null" json:"name"`
	Email          string     `gorm:"type:varchar(100);unique;not null" json:"email"`
	Position       string     `gorm:"type:varchar(100)" json:"position"`
	Salary         float64    `gorm:"type:decimal(12,2);default:0" json:"salary"`
	DepartmentID   *uint      `gorm:"index" json:"department_id"`
	DOB            *time.Time `gorm:"type:date" json:"dob"`
	ContractExpiry *time.Time `gorm:"type:date" json:"contract_expiry"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relations
	Department   *Department   `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Payrolls     []Payroll     `gorm:"foreignKey:EmployeeID;references:ID" json:"payrolls,omitempty"`
	Performances []Performance `gorm:"foreignKey:EmployeeID;references:ID" json:"performances,omitempty"`
}
