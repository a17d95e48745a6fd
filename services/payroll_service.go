package services

import (
	"errors"

	"ems-http-service/config"
	"ems-http-service/models"

	"gorm.io/gorm"
)

// 工资税率，对年化工资收取
const PayrollTaxRate = 0.20

// GeneratePayrollRequest 表示生成工资单的输入
type GeneratePayrollRequest struct {
	EmployeeID uint
	Month      int
	Year       int
	BaseSalary float64
	Allowances float64
	Deductions float64
}

// InterfacePayrollService 定义工资服务接口
type InterfacePayrollService interface {
	GeneratePayroll(req GeneratePayrollRequest) (*models.Payroll, error)
	GetAllPayrolls(page, pageSize int, employeeID uint, year int) ([]models.Payroll, int64, error)
	GetPayrollByID(id uint) (*models.Payroll, error)
	GetEmployeePayrolls(employeeID uint, limit int) ([]models.Payroll, error)
	DeletePayroll(id uint) error
}

// PayrollService 提供工资单生成与查询服务
type PayrollService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPayrollService 创建一个新的工资服务
func NewPayrollService(db *gorm.DB, cfg *config.Config) InterfacePayrollService {
	return &PayrollService{
		DB:     db,
		Config: cfg,
	}
}

// GeneratePayroll 为指定员工生成某月工资单。
// 计算口径：gross = base + allowances - deductions；
// annual = gross * 12；tax = annual * 0.20；net = annual - tax。
// 注意：net存储的是"年化后再扣税"的金额而非当月实发。该口径沿袭自
// 线上系统的历史行为，产品方确认前不得更改。
func (s *PayrollService) GeneratePayroll(req GeneratePayrollRequest) (*models.Payroll, error) {
	// 员工必须存在
	var employee models.Employee
	if err := s.DB.First(&employee, req.EmployeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	// (员工, 月, 年) 唯一性检查
	var count int64
	if err := s.DB.Model(&models.Payroll{}).
		Where("employee_id = ? AND month = ? AND year = ?", req.EmployeeID, req.Month, req.Year).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrPayrollExists
	}

	gross := req.BaseSalary + req.Allowances - req.Deductions
	annual := gross * 12
	tax := annual * PayrollTaxRate
	net := annual - tax

	payroll := models.Payroll{
		EmployeeID:  req.EmployeeID,
		Month:       req.Month,
		Year:        req.Year,
		BaseSalary:  req.BaseSalary,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
		GrossSalary: gross,
		Tax:         tax,
		NetSalary:   net,
	}

	if err := s.DB.Create(&payroll).Error; err != nil {
		return nil, err
	}
	payroll.Employee = &employee
	return &payroll, nil
}

// GetAllPayrolls 获取工资单列表，支持分页和按员工/年份过滤
func (s *PayrollService) GetAllPayrolls(page, pageSize int, employeeID uint, year int) ([]models.Payroll, int64, error) {
	var payrolls []models.Payroll
	var total int64

	query := s.DB.Model(&models.Payroll{})
	if employeeID > 0 {
		query = query.Where("employee_id = ?", employeeID)
	}
	if year > 0 {
		query = query.Where("year = ?", year)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Preload("Employee").
		Order("year DESC, month DESC").
		Limit(pageSize).Offset(offset).Find(&payrolls).Error; err != nil {
		return nil, 0, err
	}

	return payrolls, total, nil
}

// GetPayrollByID 根据ID获取工资单
func (s *PayrollService) GetPayrollByID(id uint) (*models.Payroll, error) {
	var payroll models.Payroll
	if err := s.DB.Preload("Employee").First(&payroll, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPayrollNotFound
		}
		return nil, err
	}
	return &payroll, nil
}

// GetEmployeePayrolls 获取某员工最近的工资单，按年月倒序
func (s *PayrollService) GetEmployeePayrolls(employeeID uint, limit int) ([]models.Payroll, error) {
	var payrolls []models.Payroll
	query := s.DB.Where("employee_id = ?", employeeID).
		Order("year DESC, month DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&payrolls).Error; err != nil {
		return nil, err
	}
	return payrolls, nil
}

// DeletePayroll 删除工资单
func (s *PayrollService) DeletePayroll(id uint) error {
	payroll, err := s.GetPayrollByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(payroll).Error
}
