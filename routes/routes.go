package routes

import (
	"time"

	"ems-http-service/config"
	"ems-http-service/controllers"
	_ "ems-http-service/docs"
	"ems-http-service/middleware"
	"ems-http-service/services/container"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, *container.ServiceContainer) {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r, serviceContainer
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 健康检查
	healthController := controllers.NewHealthCheckController()
	api.GET("/ping", healthController.Ping)

	// 认证路由
	api.POST("/auth/login", controllers.HandleJWTFunc(container, "login"))
	api.POST("/auth/register", controllers.HandleJWTFunc(container, "register"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 任意已登录用户可访问的路由
	auth := api.Group("/")
	auth.Use(middleware.Authentication())

	// 员工与部门的只读路由
	auth.Group("/employees").GET("", controllers.HandleEmployeeFunc(container, "getEmployees"))
	auth.Group("/employees").GET("/:id", controllers.HandleEmployeeFunc(container, "getEmployee"))
	auth.Group("/employees").GET("/:id/payrolls", controllers.HandleEmployeeFunc(container, "getEmployeePayrolls"))
	auth.Group("/employees").GET("/:id/leaves", controllers.HandleEmployeeFunc(container, "getEmployeeLeaves"))
	auth.Group("/employees").GET("/:id/performances", controllers.HandleEmployeeFunc(container, "getEmployeePerformances"))
	auth.Group("/departments").GET("", controllers.HandleDepartmentFunc(container, "getDepartments"))
	auth.Group("/departments").GET("/:id", controllers.HandleDepartmentFunc(container, "getDepartment"))

	// 请假路由：提交与查询对所有登录用户开放
	auth.Group("/leaves").GET("", controllers.HandleLeaveFunc(container, "getLeaves"))
	auth.Group("/leaves").GET("/:id", controllers.HandleLeaveFunc(container, "getLeave"))
	auth.Group("/leaves").POST("", controllers.HandleLeaveFunc(container, "createLeave"))

	// 通知路由
	auth.Group("/notifications").GET("", controllers.HandleNotificationFunc(container, "getNotifications"))
	auth.Group("/notifications").PUT("/:id/read", controllers.HandleNotificationFunc(container, "markRead"))
	auth.Group("/notifications").PUT("/read-all", controllers.HandleNotificationFunc(container, "markAllRead"))

	// 部门经理及以上可访问的路由
	manager := api.Group("/")
	manager.Use(middleware.AuthenticateManager())

	// 请假审批
	manager.Group("/leaves").PUT("/:id/status", controllers.HandleLeaveFunc(container, "updateStatus"))

	// 绩效路由
	manager.Group("/performances").GET("", controllers.HandlePerformanceFunc(container, "getPerformances"))
	manager.Group("/performances").GET("/:id", controllers.HandlePerformanceFunc(container, "getPerformance"))
	manager.Group("/performances").POST("", controllers.HandlePerformanceFunc(container, "createPerformance"))
	manager.Group("/performances").PUT("/:id", controllers.HandlePerformanceFunc(container, "updatePerformance"))

	// 统计分析路由，读多写少，加短时缓存
	manager.Group("/analytics").GET("/dashboard", middleware.Cache(), controllers.HandleAnalyticsFunc(container, "dashboard"))
	manager.Group("/analytics").GET("/payrolls", middleware.CacheByParams(time.Minute, "year"), controllers.HandleAnalyticsFunc(container, "payrollSummary"))
	manager.Group("/analytics").GET("/leaves", controllers.HandleAnalyticsFunc(container, "leaveSummary"))
	manager.Group("/analytics").GET("/employees/:id", controllers.HandleAnalyticsFunc(container, "employeeDetail"))

	// 人事专员及以上可访问的路由
	hr := api.Group("/")
	hr.Use(middleware.AuthenticateHR())

	// 员工管理
	hr.Group("/employees").POST("", controllers.HandleEmployeeFunc(container, "createEmployee"))
	hr.Group("/employees").PUT("/:id", controllers.HandleEmployeeFunc(container, "updateEmployee"))
	hr.Group("/employees").DELETE("/:id", controllers.HandleEmployeeFunc(container, "deleteEmployee"))

	// 部门管理
	hr.Group("/departments").POST("", controllers.HandleDepartmentFunc(container, "createDepartment"))
	hr.Group("/departments").PUT("/:id", controllers.HandleDepartmentFunc(container, "updateDepartment"))
	hr.Group("/departments").DELETE("/:id", controllers.HandleDepartmentFunc(container, "deleteDepartment"))
	hr.Group("/departments").POST("/:id/employees", controllers.HandleDepartmentFunc(container, "addEmployee"))
	hr.Group("/departments").POST("/transfer", controllers.HandleDepartmentFunc(container, "transferEmployee"))
	hr.Group("/departments").POST("/:id/manager", controllers.HandleDepartmentFunc(container, "assignManager"))
	hr.Group("/departments").DELETE("/:id/manager", controllers.HandleDepartmentFunc(container, "removeManager"))

	// 工资管理
	hr.Group("/payrolls").GET("", controllers.HandlePayrollFunc(container, "getPayrolls"))
	hr.Group("/payrolls").GET("/:id", controllers.HandlePayrollFunc(container, "getPayroll"))
	hr.Group("/payrolls").POST("", controllers.HandlePayrollFunc(container, "generatePayroll"))
	hr.Group("/payrolls").DELETE("/:id", controllers.HandlePayrollFunc(container, "deletePayroll"))

	// 请假与绩效的删除
	hr.Group("/leaves").DELETE("/:id", controllers.HandleLeaveFunc(container, "deleteLeave"))
	hr.Group("/performances").DELETE("/:id", controllers.HandlePerformanceFunc(container, "deletePerformance"))

	// PDF报表导出
	hr.Group("/reports").GET("/payslips/:id", controllers.HandleReportFunc(container, "payslip"))
	hr.Group("/reports").GET("/employees/:id", controllers.HandleReportFunc(container, "employeeReport"))

	// 仅管理员可访问的路由
	admin := api.Group("/")
	admin.Use(middleware.AuthenticateAdmin())

	// 用户账户管理
	admin.Group("/users").GET("", controllers.HandleUserFunc(container, "getUsers"))
	admin.Group("/users").PUT("/:id/role", controllers.HandleUserFunc(container, "updateRole"))
	admin.Group("/users").DELETE("/:id", controllers.HandleUserFunc(container, "deleteUser"))

	// 手动触发提醒扫描
	admin.Group("/notifications").POST("/scan", controllers.HandleNotificationFunc(container, "scanAlerts"))
}
