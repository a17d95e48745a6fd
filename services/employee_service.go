package services

import (
	"errors"

	"ems-http-service/config"
	"ems-http-service/models"
	"ems-http-service/utils"

	"gorm.io/gorm"
)

// InterfaceEmployeeService 定义员工服务接口
type InterfaceEmployeeService interface {
	GetAllEmployees(page, pageSize int, search string) ([]models.Employee, int64, error)
	GetEmployeeByID(id uint) (*models.Employee, error)
	GetEmployeeByNumber(employeeID string) (*models.Employee, error)
	CreateEmployee(employee *models.Employee, password string) error
	UpdateEmployee(id uint, updates map[string]interface{}) (*models.Employee, error)
	DeleteEmployee(id uint) error
}

// EmployeeService 提供员工档案相关的服务
type EmployeeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEmployeeService 创建一个新的员工服务
func NewEmployeeService(db *gorm.DB, cfg *config.Config) InterfaceEmployeeService {
	return &EmployeeService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllEmployees 获取所有员工，支持分页和搜索
func (s *EmployeeService) GetAllEmployees(page, pageSize int, search string) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	query := s.DB.Model(&models.Employee{})

	// 如果有搜索关键词，添加搜索条件
	if search != "" {
		query = query.Where("name LIKE ? OR email LIKE ? OR position LIKE ? OR employee_id LIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	// 获取总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询
	offset := (page - 1) * pageSize
	if err := query.Preload("Department").Limit(pageSize).Offset(offset).Find(&employees).Error; err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// GetEmployeeByID 根据ID获取员工
func (s *EmployeeService) GetEmployeeByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.Preload("Department").First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// GetEmployeeByNumber 根据员工编号获取员工
func (s *EmployeeService) GetEmployeeByNumber(employeeID string) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.Where("employee_id = ?", employeeID).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// CreateEmployee 创建新员工，并在同一事务中创建关联的用户账户
func (s *EmployeeService) CreateEmployee(employee *models.Employee, password string) error {
	// 验证邮箱唯一性
	var count int64
	if err := s.DB.Model(&models.Employee{}).Where("email = ?", employee.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmployeeExists
	}

	if employee.EmployeeID == "" {
		employee.EmployeeID = utils.GenerateEmployeeNumber()
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(employee).Error; err != nil {
			return err
		}

		// 仅靠邮箱关联用户账户；已存在同邮箱账户时沿用
		var userCount int64
		if err := tx.Model(&models.User{}).Where("email = ?", employee.Email).Count(&userCount).Error; err != nil {
			return err
		}
		if userCount == 0 {
			user := models.User{
				Name:     employee.Name,
				Email:    employee.Email,
				Password: password,
				Role:     models.RoleEmployee,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateEmployee 更新员工信息
func (s *EmployeeService) UpdateEmployee(id uint, updates map[string]interface{}) (*models.Employee, error) {
	employee, err := s.GetEmployeeByID(id)
	if err != nil {
		return nil, err
	}

	// 如果更新邮箱，需要检查唯一性
	if email, ok := updates["email"].(string); ok && email != employee.Email {
		var count int64
		if err := s.DB.Model(&models.Employee{}).Where("email = ? AND id != ?", email, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmployeeExists
		}
	}

	if err := s.DB.Model(employee).Updates(updates).Error; err != nil {
		return nil, err
	}

	// 重新获取更新后的员工信息
	return s.GetEmployeeByID(id)
}

// DeleteEmployee 删除员工：从原部门摘除、按邮箱删除关联用户、删除员工本身，
// 三步在同一事务中完成
func (s *EmployeeService) DeleteEmployee(id uint) error {
	employee, err := s.GetEmployeeByID(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		// 如果该员工是某部门经理，先清空经理指针
		if err := tx.Model(&models.Department{}).
			Where("manager_id = ?", employee.ID).
			Update("manager_id", nil).Error; err != nil {
			return err
		}

		// 删除关联用户（仅靠邮箱匹配）
		if err := tx.Where("email = ?", employee.Email).Delete(&models.User{}).Error; err != nil {
			return err
		}

		return tx.Delete(employee).Error
	})
}
