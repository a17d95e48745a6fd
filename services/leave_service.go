package services

import (
	"errors"
	"fmt"
	"log"

	"ems-http-service/config"
	"ems-http-service/models"

	"gorm.io/gorm"
)

// InterfaceLeaveService 定义请假服务接口
type InterfaceLeaveService interface {
	CreateLeave(leave *models.Leave) error
	GetAllLeaves(page, pageSize int, employeeID, status string) ([]models.Leave, int64, error)
	GetLeaveByID(id uint) (*models.Leave, error)
	UpdateStatus(id uint, status string) (*models.Leave, error)
	DeleteLeave(id uint) error
}

// LeaveService 提供请假申请与审批服务。
// 记录在状态变更前是只追加的；只有Pending状态可以流转。
type LeaveService struct {
	DB            *gorm.DB
	Config        *config.Config
	Notifications InterfaceNotificationService
}

// NewLeaveService 创建一个新的请假服务
func NewLeaveService(db *gorm.DB, cfg *config.Config, notificationService InterfaceNotificationService) InterfaceLeaveService {
	return &LeaveService{
		DB:            db,
		Config:        cfg,
		Notifications: notificationService,
	}
}

// CreateLeave 提交请假申请，员工编号必须存在
func (s *LeaveService) CreateLeave(leave *models.Leave) error {
	var count int64
	if err := s.DB.Model(&models.Employee{}).Where("employee_id = ?", leave.EmployeeID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrEmployeeNotFound
	}

	if leave.EndDate.Before(leave.StartDate) {
		return errors.New("结束日期不能早于开始日期")
	}

	leave.Status = models.LeaveStatusPending
	return s.DB.Create(leave).Error
}

// GetAllLeaves 获取请假记录，支持分页和按员工编号/状态过滤
func (s *LeaveService) GetAllLeaves(page, pageSize int, employeeID, status string) ([]models.Leave, int64, error) {
	var leaves []models.Leave
	var total int64

	query := s.DB.Model(&models.Leave{})
	if employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&leaves).Error; err != nil {
		return nil, 0, err
	}

	return leaves, total, nil
}

// GetLeaveByID 根据ID获取请假记录
func (s *LeaveService) GetLeaveByID(id uint) (*models.Leave, error) {
	var leave models.Leave
	if err := s.DB.First(&leave, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaveNotFound
		}
		return nil, err
	}
	return &leave, nil
}

// UpdateStatus 审批请假：仅允许 Pending -> Approved/Rejected，
// 其余流转一律拒绝；状态变更后通知申请人
func (s *LeaveService) UpdateStatus(id uint, status string) (*models.Leave, error) {
	if status != models.LeaveStatusApproved && status != models.LeaveStatusRejected {
		return nil, ErrLeaveInvalidTransition
	}

	leave, err := s.GetLeaveByID(id)
	if err != nil {
		return nil, err
	}

	if leave.Status != models.LeaveStatusPending {
		return nil, ErrLeaveInvalidTransition
	}

	if err := s.DB.Model(leave).Update("status", status).Error; err != nil {
		return nil, err
	}

	s.notifyStatusChange(leave)
	return leave, nil
}

// DeleteLeave 删除请假记录
func (s *LeaveService) DeleteLeave(id uint) error {
	leave, err := s.GetLeaveByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(leave).Error
}

// notifyStatusChange 审批结果通知申请人；员工与账户仅靠邮箱关联，
// 找不到账户时跳过
func (s *LeaveService) notifyStatusChange(leave *models.Leave) {
	var employee models.Employee
	if err := s.DB.Where("employee_id = ?", leave.EmployeeID).First(&employee).Error; err != nil {
		return
	}

	var user models.User
	if err := s.DB.Where("email = ?", employee.Email).First(&user).Error; err != nil {
		return
	}

	notification := models.Notification{
		UserID:  user.ID,
		Title:   "请假审批结果",
		Message: fmt.Sprintf("您 %s 至 %s 的请假申请已%s", leave.StartDate.Format("2006-01-02"), leave.EndDate.Format("2006-01-02"), statusLabel(leave.Status)),
		Type:    models.NotificationTypeLeaveStatus,
	}
	if err := s.Notifications.Create(&notification); err != nil {
		log.Printf("创建请假审批通知失败: %v", err)
	}
}

func statusLabel(status string) string {
	switch status {
	case models.LeaveStatusApproved:
		return "批准"
	case models.LeaveStatusRejected:
		return "驳回"
	}
	return status
}
