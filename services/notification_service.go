package services

import (
	"errors"
	"log"
	"time"

	"ems-http-service/config"
	"ems-http-service/models"

	"gorm.io/gorm"
)

// InterfaceNotificationService 定义通知服务接口
type InterfaceNotificationService interface {
	Create(notification *models.Notification) error
	CreateAlert(userID uint, alertType, title, message string, alertDate time.Time) (bool, error)
	GetUserNotifications(userID uint, unreadOnly bool) ([]models.Notification, error)
	MarkRead(id, userID uint) error
	MarkAllRead(userID uint) error
}

// NotificationService 提供站内通知服务，新通知会同步推送到MQTT主题
type NotificationService struct {
	DB     *gorm.DB
	Config *config.Config
	MQTT   InterfaceMQTTService
}

// NewNotificationService 创建一个新的通知服务
func NewNotificationService(db *gorm.DB, cfg *config.Config, mqttService InterfaceMQTTService) InterfaceNotificationService {
	return &NotificationService{
		DB:     db,
		Config: cfg,
		MQTT:   mqttService,
	}
}

// Create 创建普通业务通知（不参与同日去重）
func (s *NotificationService) Create(notification *models.Notification) error {
	if err := s.DB.Create(notification).Error; err != nil {
		return err
	}
	s.publish(notification)
	return nil
}

// CreateAlert 创建提醒类通知。(user, type, alertDate) 上的唯一索引保证
// 同一收件人同一类型每天至多一条；并发插入触发重复键错误时按已存在跳过。
// 返回值表示本次是否实际插入。
func (s *NotificationService) CreateAlert(userID uint, alertType, title, message string, alertDate time.Time) (bool, error) {
	day := time.Date(alertDate.Year(), alertDate.Month(), alertDate.Day(), 0, 0, 0, 0, alertDate.Location())

	// 先按来源系统的方式做一次读检查，真正的防线是唯一索引
	var count int64
	if err := s.DB.Model(&models.Notification{}).
		Where("user_id = ? AND type = ? AND alert_date = ?", userID, alertType, day).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	notification := models.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      alertType,
		AlertDate: &day,
	}

	if err := s.DB.Create(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 另一次扫描抢先插入了同日同类型提醒
			return false, nil
		}
		return false, err
	}

	s.publish(&notification)
	return true, nil
}

// GetUserNotifications 获取某用户的通知，按时间倒序
func (s *NotificationService) GetUserNotifications(userID uint, unreadOnly bool) ([]models.Notification, error) {
	var notifications []models.Notification
	query := s.DB.Where("user_id = ?", userID).Order("created_at DESC")
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if err := query.Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead 将某条通知标记为已读；通知必须属于该用户
func (s *NotificationService) MarkRead(id, userID uint) error {
	var notification models.Notification
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return s.DB.Model(&notification).Update("is_read", true).Error
}

// MarkAllRead 将某用户的全部未读通知标记为已读
func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// publish 尽力而为地把通知推送到MQTT，失败只记日志不影响主流程
func (s *NotificationService) publish(notification *models.Notification) {
	if s.MQTT == nil {
		return
	}
	if err := s.MQTT.PublishNotification(notification); err != nil {
		log.Printf("推送通知到MQTT失败: %v", err)
	}
}
