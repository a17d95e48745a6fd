package models

import "time"

// 通知类型常量
const (
	NotificationTypeBirthday       = "birthday"
	NotificationTypeContractExpiry = "contract_expiry"
	NotificationTypeLeaveStatus    = "leave_status"
)

// Notification 表示一条站内通知。(user_id, type, alert_date) 上的唯一索引
// 保证同一收件人同一提醒类型每天最多一条，重复插入由数据库约束拒绝。
// AlertDate 仅由提醒扫描器填写；普通业务通知保持 NULL，不参与去重。
type Notification struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;uniqueIndex:idx_notifications_dedupe" json:"user_id"`
	Title     string     `gorm:"type:varchar(100);not null" json:"title"`
	Message   string     `gorm:"type:text" json:"message"`
	Type      string     `gorm:"type:varchar(30);not null;uniqueIndex:idx_notifications_dedupe" json:"type"`
	AlertDate *time.Time `gorm:"type:date;uniqueIndex:idx_notifications_dedupe" json:"alert_date,omitempty"`
	IsRead    bool       `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
