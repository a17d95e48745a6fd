package services

import (
	"errors"

	"ems-http-service/config"
	"ems-http-service/models"

	"gorm.io/gorm"
)

// 经理变更事件类型
const (
	EventManagerAssigned = "ManagerAssigned"
	EventManagerRemoved  = "ManagerRemoved"
)

// ManagerEvent 表示部门经理的任免事件。部门服务只负责发出事件，
// 用户角色的提升/降级由用户服务消费事件完成，两者不直接耦合。
type ManagerEvent struct {
	Type          string // EventManagerAssigned / EventManagerRemoved
	EmployeeEmail string
	EmployeeID    uint
}

// InterfaceUserService 定义用户服务接口
type InterfaceUserService interface {
	Register(name, email, password, role string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetAllUsers(page, pageSize int) ([]models.User, int64, error)
	UpdateRole(id uint, role string) (*models.User, error)
	DeleteUser(id uint) error
	HandleManagerEvent(event ManagerEvent) error
}

// UserService 提供用户账户相关的服务
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的用户服务
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// Register 注册新用户账户
func (s *UserService) Register(name, email, password, role string) (*models.User, error) {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	if role == "" {
		role = models.RoleEmployee
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: password, // BeforeCreate钩子负责哈希
		Role:     role,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail 根据邮箱获取用户
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID 根据ID获取用户
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetAllUsers 获取所有用户，支持分页
func (s *UserService) GetAllUsers(page, pageSize int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := s.DB.Model(&models.User{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Limit(pageSize).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// UpdateRole 更新用户角色（仅限管理员直接调用）
func (s *UserService) UpdateRole(id uint, role string) (*models.User, error) {
	if !models.IsValidRole(role) {
		return nil, errors.New("无效的角色: " + role)
	}

	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(user).Update("role", role).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser 删除用户
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(user).Error
}

// HandleManagerEvent 消费经理任免事件并同步用户角色。
// 任命: 将关联用户提升为manager。
// 免职: 仅当该员工不再担任任何部门经理时才降级回employee。
func (s *UserService) HandleManagerEvent(event ManagerEvent) error {
	var user models.User
	if err := s.DB.Where("email = ?", event.EmployeeEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 员工与用户仅靠邮箱关联，账户可能不存在，跳过角色同步
			return nil
		}
		return err
	}

	switch event.Type {
	case EventManagerAssigned:
		return s.DB.Model(&user).Update("role", models.RoleManager).Error

	case EventManagerRemoved:
		// 免职后重新统计该员工仍管理的部门数
		var count int64
		if err := s.DB.Model(&models.Department{}).
			Where("manager_id = ?", event.EmployeeID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return s.DB.Model(&user).Update("role", models.RoleEmployee).Error
		}
		return nil
	}

	return errors.New("未知的经理事件类型: " + event.Type)
}
