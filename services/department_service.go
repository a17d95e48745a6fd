package services

import (
	"errors"

	"ems-http-service/config"
	"ems-http-service/models"
	"ems-http-service/utils"

	"gorm.io/gorm"
)

// InterfaceDepartmentService 定义部门服务接口
type InterfaceDepartmentService interface {
	GetAllDepartments(page, pageSize int, search string) ([]models.Department, int64, error)
	GetDepartmentByID(id uint) (*models.Department, error)
	CreateDepartment(department *models.Department) error
	UpdateDepartment(id uint, updates map[string]interface{}) (*models.Department, error)
	DeleteDepartment(id uint) error
	AddEmployee(departmentID, employeeID uint) error
	TransferEmployee(employeeID, newDepartmentID uint) error
	AssignManager(departmentID, employeeID uint) error
	RemoveManager(departmentID uint) error
}

// RoleEventConsumer 消费经理任免事件，由用户服务实现
type RoleEventConsumer interface {
	HandleManagerEvent(event ManagerEvent) error
}

// DepartmentService 维护部门与员工之间的双向引用一致性：
// employee.department == d.ID 当且仅当 员工属于 d 的成员集合。
// 所有多步写操作都在单个数据库事务内完成。
type DepartmentService struct {
	DB          *gorm.DB
	Config      *config.Config
	RoleUpdater RoleEventConsumer
}

// NewDepartmentService 创建一个新的部门服务
func NewDepartmentService(db *gorm.DB, cfg *config.Config, roleUpdater RoleEventConsumer) InterfaceDepartmentService {
	return &DepartmentService{
		DB:          db,
		Config:      cfg,
		RoleUpdater: roleUpdater,
	}
}

// GetAllDepartments 获取所有部门，支持分页和搜索
func (s *DepartmentService) GetAllDepartments(page, pageSize int, search string) ([]models.Department, int64, error) {
	var departments []models.Department
	var total int64

	query := s.DB.Model(&models.Department{})
	if search != "" {
		query = query.Where("name LIKE ? OR department_id LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Preload("Manager").Preload("Employees").
		Limit(pageSize).Offset(offset).Find(&departments).Error; err != nil {
		return nil, 0, err
	}

	return departments, total, nil
}

// GetDepartmentByID 根据ID获取部门及其成员
func (s *DepartmentService) GetDepartmentByID(id uint) (*models.Department, error) {
	var department models.Department
	if err := s.DB.Preload("Manager").Preload("Employees").First(&department, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	return &department, nil
}

// CreateDepartment 创建新部门
func (s *DepartmentService) CreateDepartment(department *models.Department) error {
	var count int64
	if err := s.DB.Model(&models.Department{}).Where("name = ?", department.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDepartmentExists
	}

	if department.DepartmentID == "" {
		department.DepartmentID = utils.GenerateDepartmentNumber()
	}

	return s.DB.Create(department).Error
}

// UpdateDepartment 更新部门基础信息（经理任免走专门的接口）
func (s *DepartmentService) UpdateDepartment(id uint, updates map[string]interface{}) (*models.Department, error) {
	department, err := s.GetDepartmentByID(id)
	if err != nil {
		return nil, err
	}

	if name, ok := updates["name"].(string); ok && name != department.Name {
		var count int64
		if err := s.DB.Model(&models.Department{}).Where("name = ? AND id != ?", name, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDepartmentExists
		}
	}

	if err := s.DB.Model(&models.Department{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetDepartmentByID(id)
}

// DeleteDepartment 删除部门：先清空所有成员的部门指针，再删除部门，单事务完成
func (s *DepartmentService) DeleteDepartment(id uint) error {
	department, err := s.GetDepartmentByID(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Employee{}).
			Where("department_id = ?", department.ID).
			Update("department_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(department).Error
	})
}

// AddEmployee 将员工加入部门。已是成员时返回冲突；
// 成员集合写入与员工指针写入在同一事务内生效。
func (s *DepartmentService) AddEmployee(departmentID, employeeID uint) error {
	department, err := s.GetDepartmentByID(departmentID)
	if err != nil {
		return err
	}

	var employee models.Employee
	if err := s.DB.First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}

	if employee.DepartmentID != nil && *employee.DepartmentID == department.ID {
		return ErrAlreadyMember
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&employee).Update("department_id", department.ID).Error
	})
}

// TransferEmployee 调动员工：从旧部门移除、加入新部门、重指员工的部门字段，
// 三步视为一个逻辑操作
func (s *DepartmentService) TransferEmployee(employeeID, newDepartmentID uint) error {
	var employee models.Employee
	if err := s.DB.First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}

	newDepartment, err := s.GetDepartmentByID(newDepartmentID)
	if err != nil {
		return err
	}

	removedAsManager := false
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		// 如果该员工是旧部门的经理，调离时一并免职
		if employee.DepartmentID != nil && *employee.DepartmentID != newDepartment.ID {
			var oldDepartment models.Department
			if err := tx.First(&oldDepartment, *employee.DepartmentID).Error; err == nil {
				if oldDepartment.ManagerID != nil && *oldDepartment.ManagerID == employee.ID {
					if err := tx.Model(&models.Department{}).Where("id = ?", oldDepartment.ID).
						Update("manager_id", nil).Error; err != nil {
						return err
					}
					removedAsManager = true
				}
			}
		}

		return tx.Model(&employee).Update("department_id", newDepartment.ID).Error
	})
	if err != nil {
		return err
	}

	if removedAsManager {
		return s.RoleUpdater.HandleManagerEvent(ManagerEvent{
			Type:          EventManagerRemoved,
			EmployeeEmail: employee.Email,
			EmployeeID:    employee.ID,
		})
	}
	return nil
}

// AssignManager 任命部门经理。候选人必须是该部门的当前成员
// （成员集合查找或候选人自身的部门指针，二者任一满足即可），
// 成功后发出ManagerAssigned事件，由用户服务将关联账户提升为manager。
func (s *DepartmentService) AssignManager(departmentID, employeeID uint) error {
	department, err := s.GetDepartmentByID(departmentID)
	if err != nil {
		return err
	}

	var employee models.Employee
	if err := s.DB.First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}

	// 成员资格检查
	isMember := employee.DepartmentID != nil && *employee.DepartmentID == department.ID
	if !isMember {
		for _, member := range department.Employees {
			if member.ID == employee.ID {
				isMember = true
				break
			}
		}
	}
	if !isMember {
		return ErrManagerNotMember
	}

	// 被替换的前任经理，任命后同样要走免职事件
	var previous *models.Employee
	if department.ManagerID != nil && *department.ManagerID != employee.ID {
		var prev models.Employee
		if err := s.DB.First(&prev, *department.ManagerID).Error; err == nil {
			previous = &prev
		}
	}

	// 不能用带预加载关联的department做写入，GORM会先保存Manager关联，
	// 把manager_id写回旧经理的ID
	if err := s.DB.Model(&models.Department{}).Where("id = ?", department.ID).
		Update("manager_id", employee.ID).Error; err != nil {
		return err
	}

	if previous != nil {
		if err := s.RoleUpdater.HandleManagerEvent(ManagerEvent{
			Type:          EventManagerRemoved,
			EmployeeEmail: previous.Email,
			EmployeeID:    previous.ID,
		}); err != nil {
			return err
		}
	}

	return s.RoleUpdater.HandleManagerEvent(ManagerEvent{
		Type:          EventManagerAssigned,
		EmployeeEmail: employee.Email,
		EmployeeID:    employee.ID,
	})
}

// RemoveManager 免去部门经理。清空经理指针后发出ManagerRemoved事件，
// 用户服务会在确认该员工不再管理任何部门后才将账户降级回employee。
func (s *DepartmentService) RemoveManager(departmentID uint) error {
	department, err := s.GetDepartmentByID(departmentID)
	if err != nil {
		return err
	}

	if department.ManagerID == nil {
		return nil
	}

	// 同AssignManager：用新的查询对象写入，避开关联保存
	clearManager := func() error {
		return s.DB.Model(&models.Department{}).Where("id = ?", department.ID).
			Update("manager_id", nil).Error
	}

	var manager models.Employee
	if err := s.DB.First(&manager, *department.ManagerID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		// 经理记录已不存在，仅清空指针
		return clearManager()
	}

	if err := clearManager(); err != nil {
		return err
	}

	return s.RoleUpdater.HandleManagerEvent(ManagerEvent{
		Type:          EventManagerRemoved,
		EmployeeEmail: manager.Email,
		EmployeeID:    manager.ID,
	})
}
