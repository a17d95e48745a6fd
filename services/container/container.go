package container

import (
	"log"
	"sync"

	"ems-http-service/config"
	"ems-http-service/services"

	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// 基础服务
	jwtService services.InterfaceJWTService

	// 数据存储服务
	redisService services.InterfaceRedisService

	// MQTT通知推送服务
	mqttService services.InterfaceMQTTService

	// 邮件服务
	emailService services.InterfaceEmailService

	// 业务服务
	userService         services.InterfaceUserService
	employeeService     services.InterfaceEmployeeService
	departmentService   services.InterfaceDepartmentService
	payrollService      services.InterfacePayrollService
	leaveService        services.InterfaceLeaveService
	performanceService  services.InterfacePerformanceService
	notificationService services.InterfaceNotificationService
	alertService        services.InterfaceAlertService
	analyticsService    services.InterfaceAnalyticsService
	pdfService          services.InterfacePDFService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)

	// 初始化Redis服务
	redisService := services.NewRedisService(c.config)
	if err := redisService.Ping(); err != nil {
		log.Printf("Redis连接测试失败: %v，提醒扫描将退化为仅靠数据库去重", err)
	}
	c.redisService = redisService

	// 初始化MQTT通知推送服务 - 使用接口类型
	c.mqttService = services.NewMQTTService(c.config)
	if err := c.mqttService.Connect(); err != nil {
		log.Printf("MQTT服务连接失败: %v", err)
	}

	// 初始化邮件服务
	c.emailService = services.NewEmailService(c.config)

	// 初始化业务服务
	c.userService = services.NewUserService(c.db, c.config)
	c.employeeService = services.NewEmployeeService(c.db, c.config)
	c.departmentService = services.NewDepartmentService(c.db, c.config, c.userService)
	c.payrollService = services.NewPayrollService(c.db, c.config)
	c.performanceService = services.NewPerformanceService(c.db, c.config)
	c.notificationService = services.NewNotificationService(c.db, c.config, c.mqttService)
	c.leaveService = services.NewLeaveService(c.db, c.config, c.notificationService)
	c.alertService = services.NewAlertService(c.db, c.config, c.redisService, c.notificationService, c.emailService)
	c.analyticsService = services.NewAnalyticsService(c.db, c.config, c.payrollService)
	c.pdfService = services.NewPDFService(c.config)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "mqtt":
		return c.mqttService
	case "email":
		return c.emailService
	case "user":
		return c.userService
	case "employee":
		return c.employeeService
	case "department":
		return c.departmentService
	case "payroll":
		return c.payrollService
	case "leave":
		return c.leaveService
	case "performance":
		return c.performanceService
	case "notification":
		return c.notificationService
	case "alert":
		return c.alertService
	case "analytics":
		return c.analyticsService
	case "pdf":
		return c.pdfService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
