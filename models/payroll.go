package models

import "time"

// Payroll 表示某员工某月的工资单，(employee, month, year) 唯一性由应用层检查
type Payroll struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EmployeeID  uint      `gorm:"not null;index:idx_payrolls_employee_period" json:"employee_id"`
	Month       int       `gorm:"not null;index:idx_payrolls_employee_period" json:"month"`
	Year        int       `gorm:"not null;index:idx_payrolls_employee_period" json:"year"`
	BaseSalary  float64   `gorm:"type:decimal(12,2);not null" json:"base_salary"`
	Allowances  float64   `gorm:"type:decimal(12,2);default:0" json:"allowances"`
	Deductions  float64   `gorm:"type:decimal(12,2);default:0" json:"deductions"`
	GrossSalary float64   `gorm:"type:decimal(12,2)" json:"gross_salary"`
	Tax         float64   `gorm:"type:decimal(12,2)" json:"tax"`
	NetSalary   float64   `gorm:"type:decimal(12,2)" json:"net_salary"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}
