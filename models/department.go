package models

import "time"

// Department represents a department; the member set is the reverse side of
// Employee.DepartmentID and both are kept consistent by the department service.
// Invariant: the manager must be a current member of the department.
type Department struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	DepartmentID string    `gorm:"type:varchar(20);unique;not null" json:"department_id"`
	Name         string    `gorm:"type:varchar(100);unique;not null" json:"name"`
	ManagerID    *uint     `json:"manager_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Manager   *Employee  `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Employees []Employee `gorm:"foreignKey:DepartmentID" json:"employees,omitempty"`
}
