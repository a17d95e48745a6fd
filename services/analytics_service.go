package services

import (
	"errors"

	"ems-http-service/config"
	"ems-http-service/models"

	"gorm.io/gorm"
)

// CountItem 表示按某个维度分组的计数
type CountItem struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// DashboardSummary 表示仪表盘概览数据
type DashboardSummary struct {
	TotalEmployees   int64       `json:"total_employees"`
	TotalDepartments int64       `json:"total_departments"`
	PendingLeaves    int64       `json:"pending_leaves"`
	ByDepartment     []CountItem `json:"by_department"`
	ByPosition       []CountItem `json:"by_position"`
	ByRole           []CountItem `json:"by_role"`
}

// PayrollSummary 表示工资统计数据
type PayrollSummary struct {
	Year         int     `json:"year"`
	PayrollCount int64   `json:"payroll_count"`
	TotalGross   float64 `json:"total_gross"`
	TotalTax     float64 `json:"total_tax"`
	TotalNet     float64 `json:"total_net"`
	AverageGross float64 `json:"average_gross"`
}

// LeaveSummary 表示请假统计数据
type LeaveSummary struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// EmployeeDetail 汇总单个员工的档案、绩效、近期工资单和请假情况
type EmployeeDetail struct {
	Employee     *models.Employee     `json:"employee"`
	Performances []models.Performance `json:"performances"`
	Payrolls     []models.Payroll     `json:"payrolls"`
	Leaves       LeaveSummary         `json:"leaves"`
}

// InterfaceAnalyticsService 定义统计分析服务接口
type InterfaceAnalyticsService interface {
	GetDashboardSummary() (*DashboardSummary, error)
	GetPayrollSummary(year int) (*PayrollSummary, error)
	GetLeaveSummary() (*LeaveSummary, error)
	GetEmployeeDetail(employeeID uint) (*EmployeeDetail, error)
}

// AnalyticsService 提供人事统计分析服务
type AnalyticsService struct {
	DB       *gorm.DB
	Config   *config.Config
	Payrolls InterfacePayrollService
}

// NewAnalyticsService 创建一个新的统计分析服务
func NewAnalyticsService(db *gorm.DB, cfg *config.Config, payrollService InterfacePayrollService) InterfaceAnalyticsService {
	return &AnalyticsService{
		DB:       db,
		Config:   cfg,
		Payrolls: payrollService,
	}
}

// GetDashboardSummary 获取仪表盘概览：总数与各维度分布
func (s *AnalyticsService) GetDashboardSummary() (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	if err := s.DB.Model(&models.Employee{}).Count(&summary.TotalEmployees).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Department{}).Count(&summary.TotalDepartments).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Leave{}).
		Where("status = ?", models.LeaveStatusPending).
		Count(&summary.PendingLeaves).Error; err != nil {
		return nil, err
	}

	// 按部门分布，未分配部门的员工不计入
	if err := s.DB.Model(&models.Employee{}).
		Select("departments.name AS label, COUNT(employees.id) AS count").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Group("departments.name").
		Order("count DESC").
		Scan(&summary.ByDepartment).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Employee{}).
		Select("position AS label, COUNT(id) AS count").
		Group("position").
		Order("count DESC").
		Scan(&summary.ByPosition).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.User{}).
		Select("role AS label, COUNT(id) AS count").
		Group("role").
		Order("count DESC").
		Scan(&summary.ByRole).Error; err != nil {
		return nil, err
	}

	return summary, nil
}

// GetPayrollSummary 获取某年度的工资统计，year为0时统计全部
func (s *AnalyticsService) GetPayrollSummary(year int) (*PayrollSummary, error) {
	summary := &PayrollSummary{Year: year}

	scoped := func() *gorm.DB {
		query := s.DB.Model(&models.Payroll{})
		if year > 0 {
			query = query.Where("year = ?", year)
		}
		return query
	}

	if err := scoped().Count(&summary.PayrollCount).Error; err != nil {
		return nil, err
	}
	if summary.PayrollCount == 0 {
		return summary, nil
	}

	row := struct {
		TotalGross float64
		TotalTax   float64
		TotalNet   float64
	}{}
	if err := scoped().
		Select("COALESCE(SUM(gross_salary),0) AS total_gross, COALESCE(SUM(tax),0) AS total_tax, COALESCE(SUM(net_salary),0) AS total_net").
		Scan(&row).Error; err != nil {
		return nil, err
	}

	summary.TotalGross = row.TotalGross
	summary.TotalTax = row.TotalTax
	summary.TotalNet = row.TotalNet
	summary.AverageGross = row.TotalGross / float64(summary.PayrollCount)
	return summary, nil
}

// GetLeaveSummary 获取请假状态统计
func (s *AnalyticsService) GetLeaveSummary() (*LeaveSummary, error) {
	summary := &LeaveSummary{}

	if err := s.DB.Model(&models.Leave{}).Count(&summary.Total).Error; err != nil {
		return nil, err
	}

	statuses := map[string]*int64{
		models.LeaveStatusPending:  &summary.Pending,
		models.LeaveStatusApproved: &summary.Approved,
		models.LeaveStatusRejected: &summary.Rejected,
	}
	for status, target := range statuses {
		if err := s.DB.Model(&models.Leave{}).
			Where("status = ?", status).
			Count(target).Error; err != nil {
			return nil, err
		}
	}

	return summary, nil
}

// GetEmployeeDetail 汇总员工档案、绩效、最近12期工资单和请假统计
func (s *AnalyticsService) GetEmployeeDetail(employeeID uint) (*EmployeeDetail, error) {
	var employee models.Employee
	if err := s.DB.Preload("Department").First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	detail := &EmployeeDetail{Employee: &employee}

	if err := s.DB.Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&detail.Performances).Error; err != nil {
		return nil, err
	}

	payrolls, err := s.Payrolls.GetEmployeePayrolls(employeeID, 12)
	if err != nil {
		return nil, err
	}
	detail.Payrolls = payrolls

	// 请假记录按员工编号关联
	if err := s.DB.Model(&models.Leave{}).
		Where("employee_id = ?", employee.EmployeeID).
		Count(&detail.Leaves.Total).Error; err != nil {
		return nil, err
	}
	statuses := map[string]*int64{
		models.LeaveStatusPending:  &detail.Leaves.Pending,
		models.LeaveStatusApproved: &detail.Leaves.Approved,
		models.LeaveStatusRejected: &detail.Leaves.Rejected,
	}
	for status, target := range statuses {
		if err := s.DB.Model(&models.Leave{}).
			Where("employee_id = ? AND status = ?", employee.EmployeeID, status).
			Count(target).Error; err != nil {
			return nil, err
		}
	}

	return detail, nil
}
