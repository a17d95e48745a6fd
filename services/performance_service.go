package services

import (
	"errors"

	"ems-http-service/config"
	"ems-http-service/models"

	"gorm.io/gorm"
)

// InterfacePerformanceService 定义绩效服务接口
type InterfacePerformanceService interface {
	CreatePerformance(performance *models.Performance) error
	GetAllPerformances(page, pageSize int, employeeID uint) ([]models.Performance, int64, error)
	GetPerformanceByID(id uint) (*models.Performance, error)
	UpdatePerformance(id uint, updates map[string]interface{}) (*models.Performance, error)
	DeletePerformance(id uint) error
}

// PerformanceService 提供绩效考核记录服务
type PerformanceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPerformanceService 创建一个新的绩效服务
func NewPerformanceService(db *gorm.DB, cfg *config.Config) InterfacePerformanceService {
	return &PerformanceService{
		DB:     db,
		Config: cfg,
	}
}

// CreatePerformance 创建绩效记录，员工必须存在
func (s *PerformanceService) CreatePerformance(performance *models.Performance) error {
	var count int64
	if err := s.DB.Model(&models.Employee{}).Where("id = ?", performance.EmployeeID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrEmployeeNotFound
	}

	if performance.Rating < 1 || performance.Rating > 5 {
		return errors.New("评分必须在1到5之间")
	}

	return s.DB.Create(performance).Error
}

// GetAllPerformances 获取绩效记录，支持分页和按员工过滤
func (s *PerformanceService) GetAllPerformances(page, pageSize int, employeeID uint) ([]models.Performance, int64, error) {
	var performances []models.Performance
	var total int64

	query := s.DB.Model(&models.Performance{})
	if employeeID > 0 {
		query = query.Where("employee_id = ?", employeeID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Preload("Employee").Order("created_at DESC").
		Limit(pageSize).Offset(offset).Find(&performances).Error; err != nil {
		return nil, 0, err
	}

	return performances, total, nil
}

// GetPerformanceByID 根据ID获取绩效记录
func (s *PerformanceService) GetPerformanceByID(id uint) (*models.Performance, error) {
	var performance models.Performance
	if err := s.DB.First(&performance, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPerformanceNotFound
		}
		return nil, err
	}
	return &performance, nil
}

// UpdatePerformance 更新绩效记录
func (s *PerformanceService) UpdatePerformance(id uint, updates map[string]interface{}) (*models.Performance, error) {
	performance, err := s.GetPerformanceByID(id)
	if err != nil {
		return nil, err
	}

	if rating, ok := updates["rating"].(int); ok && (rating < 1 || rating > 5) {
		return nil, errors.New("评分必须在1到5之间")
	}

	if err := s.DB.Model(performance).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetPerformanceByID(id)
}

// DeletePerformance 删除绩效记录
func (s *PerformanceService) DeletePerformance(id uint) error {
	performance, err := s.GetPerformanceByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(performance).Error
}
