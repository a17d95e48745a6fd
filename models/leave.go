package models

import "time"

// 请假状态常量
const (
	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

// Leave 表示一条请假记录；EmployeeID 保存的是员工编号字符串而非外键
type Leave struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID string    `gorm:"type:varchar(20);not null;index" json:"employee_id"`
	Type       string    `gorm:"type:varchar(30);not null" json:"type"`
	StartDate  time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time `gorm:"type:date;not null" json:"end_date"`
	Reason     string    `gorm:"type:text" json:"reason"`
	Status     string    `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
