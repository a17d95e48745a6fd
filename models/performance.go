package models

import "time"

// Performance 表示一条绩效考核记录
type Performance struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;index" json:"employee_id"`
	Period     string    `gorm:"type:varchar(20);not null" json:"period"` // 例如 "2025-Q3"
	Rating     int       `gorm:"not null" json:"rating"`                  // 1-5
	Comments   string    `gorm:"type:text" json:"comments"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}
