package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"ems-http-service/models"
	"ems-http-service/services"
	"ems-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// EmployeeController 处理员工档案相关的请求
type EmployeeController struct {
	BaseControllerImpl
}

// NewEmployeeController 创建一个新的员工控制器
func (f *ControllerFactory) NewEmployeeController(ctx *gin.Context) *EmployeeController {
	return &EmployeeController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleEmployeeFunc 返回一个处理员工请求的Gin处理函数
func HandleEmployeeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewEmployeeController(ctx)

		switch method {
		case "getEmployees":
			controller.GetEmployees()
		case "getEmployee":
			controller.GetEmployee()
		case "createEmployee":
			controller.CreateEmployee()
		case "updateEmployee":
			controller.UpdateEmployee()
		case "deleteEmployee":
			controller.DeleteEmployee()
		case "getEmployeePayrolls":
			controller.GetEmployeePayrolls()
		case "getEmployeeLeaves":
			controller.GetEmployeeLeaves()
		case "getEmployeePerformances":
			controller.GetEmployeePerformances()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

func (c *EmployeeController) employeeService() services.InterfaceEmployeeService {
	return c.Container.GetService("employee").(services.InterfaceEmployeeService)
}

// GetEmployees 获取员工列表
// @Summary      Get Employee List
// @Description  Get a list of all employees, with pagination and search support
// @Tags         Employee
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default is 1" example:"1"
// @Param        page_size query int false "Items per page, default is 10" example:"10"
// @Param        search query string false "Search keyword for name, email, position or employee number" example:"engineer"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /employees [get]
// @Security     BearerAuth
func (c *EmployeeController) GetEmployees() {
	// 获取分页参数
	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("page_size", "10"))
	search := c.Context.Query("search")

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	employees, total, err := c.employeeService().GetAllEmployees(page, pageSize, search)
	if err != nil {
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "查询员工列表失败",
			"data":    nil,
		})
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data": gin.H{
			"total":       total,
			"page":        page,
			"page_size":   pageSize,
			"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
			"data":        employees,
		},
	})
}

// GetEmployee 获取单个员工详情
// @Summary      Get Employee By ID
// @Description  Get details of a specific employee by ID
// @Tags         Employee
// @Accept       json
// @Produce      json
// @Param        id path int true "Employee ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /employees/{id} [get]
// @Security     BearerAuth
func (c *EmployeeController) GetEmployee() {
	// 获取URL参数中的ID
	idStr := c.Context.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的ID参数",
			"data":    nil,
		})
		return
	}

	employee, err := c.employeeService().GetEmployeeByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "员工不存在",
				"data":    nil,
			})
		} else {
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "查询员工失败: " + err.Error(),
				"data":    nil,
			})
		}
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    employee,
	})
}

// CreateEmployeeRequest 表示创建员工的请求体
type CreateEmployeeRequest struct {
	Name           string  `json:"name" binding:"required" example:"李雷"`
	Email          string  `json:"email" binding:"required,email" example:"lilei@example.com"`
	Position       string  `json:"position" example:"软件工程师"`
	Salary         float64 `json:"salary" example:"12000"`
	DepartmentID   *uint   `json:"department_id" example:"1"`
	DOB            string  `json:"dob" example:"1995-03-20"`             // 格式: YYYY-MM-DD
	ContractExpiry string  `json:"contract_expiry" example:"2027-06-30"` // 格式: YYYY-MM-DD
	Password       string  `json:"password" binding:"required,min=6" example:"Employee@123"`
}

// CreateEmployee 添加新员工
// @Summary      Create Employee
// @Description  Create a new employee record together with a linked user account in one transaction
// @Tags         Employee
// @Accept       json
// @Produce      json
// @Param        request body CreateEmployeeRequest true "Employee information - including name, email, position, salary and password"
// @Success      201  {object}  map[string]interface{} "Success response with created employee details"
// @Failure      400  {object}  ErrorResponse "Bad request, email already in use"
// @Failure      500  {object}  ErrorResponse "Server error"
// @Router       /employees [post]
// @Security     BearerAuth
func (c *EmployeeController) CreateEmployee() {
	var req CreateEmployeeRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	employee := models.Employee{
		Name:         req.Name,
		Email:        req.Email,
		Position:     req.Position,
		Salary:       req.Salary,
		DepartmentID: req.DepartmentID,
	}

	// 解析可选的日期字段
	if req.DOB != "" {
		dob, err := time.Parse("2006-01-02", req.DOB)
		if err != nil {
			c.Context.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的出生日期格式，应为YYYY-MM-DD",
				"data":    nil,
			})
			return
		}
		employee.DOB = &dob
	}
	if req.ContractExpiry != "" {
		expiry, err := time.Parse("2006-01-02", req.ContractExpiry)
		if err != nil {
			c.Context.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的合同到期日格式，应为YYYY-MM-DD",
				"data":    nil,
			})
			return
		}
		employee.ContractExpiry = &expiry
	}

	if err := c.employeeService().CreateEmployee(&employee, req.Password); err != nil {
		if errors.Is(err, services.ErrEmployeeExists) {
			c.Context.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "邮箱已被使用",
				"data":    nil,
			})
			return
		}
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "创建员工失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Context.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "成功",
		"data":    employee,
	})
}

// UpdateEmployeeRequest 表示更新员工的请求体
type UpdateEmployeeRequest struct {
	Name           *string  `json:"name" example:"李雷"`
	Email          *string  `json:"email" example:"lilei@example.com"`
	Position       *string  `json:"position" example:"高级软件工程师"`
	Salary         *float64 `json:"salary" example:"15000"`
	DOB            *string  `json:"dob" example:"1995-03-20"`
	ContractExpiry *string  `json:"contract_expiry" example:"2028-06-30"`
}

// UpdateEmployee 更新员工信息
// @Summary      Update Employee
// @Description  Update an existing employee record, only provided fields are changed
// @Tags         Employee
// @Accept       json
// @Produce      json
// @Param        id path int true "Employee ID" example:"1"
// @Param        request body UpdateEmployeeRequest true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /employees/{id} [put]
// @Security     BearerAuth
func (c *EmployeeController) UpdateEmployee() {
	idStr := c.Context.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的ID参数",
			"data":    nil,
		})
		return
	}

	var req UpdateEmployeeRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}
	if req.DOB != nil {
		dob, err := time.Parse("2006-01-02", *req.DOB)
		if err != nil {
			c.Context.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的出生日期格式，应为YYYY-MM-DD",
				"data":    nil,
			})
			return
		}
		updates["dob"] = dob
	}
	if req.ContractExpiry != nil {
		expiry, err := time.Parse("2006-01-02", *req.ContractExpiry)
		if err != nil {
			c.Context.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的合同到期日格式，应为YYYY-MM-DD",
				"data":    nil,
			})
			return
		}
		updates["contract_expiry"] = expiry
	}

	if len(updates) == 0 {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "没有需要更新的字段",
			"data":    nil,
		})
		return
	}

	employee, err := c.employeeService().UpdateEmployee(uint(id), updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "员工不存在",
				"data":    nil,
			})
		case errors.Is(err, services.ErrEmployeeExists):
			c.Context.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "邮箱已被使用",
				"data":    nil,
			})
		default:
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "更新员工失败: " + err.Error(),
				"data":    nil,
			})
		}
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    employee,
	})
}

// DeleteEmployee 删除员工
// @Summary      Delete Employee
// @Description  Delete an employee, detaching them from their department and removing the linked account
// @Tags         Employee
// @Accept       json
// @Produce      json
// @Param        id path int true "Employee ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /employees/{id} [delete]
// @Security     BearerAuth
func (c *EmployeeController) DeleteEmployee() {
	idStr := c.Context.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的ID参数",
			"data":    nil,
		})
		return
	}

	if err := c.employeeService().DeleteEmployee(uint(id)); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "员工不存在",
				"data":    nil,
			})
		} else {
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "删除员工失败: " + err.Error(),
				"data":    nil,
			})
		}
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    nil,
	})
}

// GetEmployeePayrolls 获取某员工的工资单历史
// @Summary      Get Employee Payroll History
// @Description  Get an employee's payroll records, newest first
// @Tags         Employee
// @Accept       json
// @Produce      json
// @Param        id path int true "Employee ID" example:"1"
// @Param        limit query int false "Max records, 0 means all" example:"12"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /employees/{id}/payrolls [get]
// @Security     BearerAuth
func (c *EmployeeController) GetEmployeePayrolls() {
	idStr := c.Context.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的ID参数",
			"data":    nil,
		})
		return
	}

	// 先确认员工存在
	if _, err := c.employeeService().GetEmployeeByID(uint(id)); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "员工不存在",
				"data":    nil,
			})
			return
		}
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "查询员工失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	limit, _ := strconv.Atoi(c.Context.DefaultQuery("limit", "0"))

	payrollService := c.Container.GetService("payroll").(services.InterfacePayrollService)
	payrolls, err := payrollService.GetEmployeePayrolls(uint(id), limit)
	if err != nil {
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "查询工资单失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    payrolls,
	})
}

// GetEmployeeLeaves 获取某员工的请假记录
// @Summary      Get Employee Leaves
// @Description  Get an employee's leave requests, optionally filtered by status
// @Tags         Employee
// @Accept       json
// @Produce      json
// @Param        id path int true "Employee ID" example:"1"
// @Param        status query string false "Filter by status" example:"Pending"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /employees/{id}/leaves [get]
// @Security     BearerAuth
func (c *EmployeeController) GetEmployeeLeaves() {
	idStr := c.Context.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的ID参数",
			"data":    nil,
		})
		return
	}

	// 请假按员工编号关联，先取出员工
	employee, err := c.employeeService().GetEmployeeByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "员工不存在",
				"data":    nil,
			})
			return
		}
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "查询员工失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	status := c.Context.Query("status")

	leaveService := c.Container.GetService("leave").(services.InterfaceLeaveService)
	leaves, total, err := leaveService.GetAllLeaves(page, pageSize, employee.EmployeeID, status)
	if err != nil {
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "查询请假记录失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data": gin.H{
			"total":     total,
			"page":      page,
			"page_size": pageSize,
			"data":      leaves,
		},
	})
}

// GetEmployeePerformances 获取某员工的绩效记录
// @Summary      Get Employee Performances
// @Description  Get an employee's performance reviews, newest first
// @Tags         Employee
// @Accept       json
// @Produce      json
// @Param        id path int true "Employee ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /employees/{id}/performances [get]
// @Security     BearerAuth
func (c *EmployeeController) GetEmployeePerformances() {
	idStr := c.Context.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的ID参数",
			"data":    nil,
		})
		return
	}

	if _, err := c.employeeService().GetEmployeeByID(uint(id)); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "员工不存在",
				"data":    nil,
			})
			return
		}
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "查询员工失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	performanceService := c.Container.GetService("performance").(services.InterfacePerformanceService)
	performances, total, err := performanceService.GetAllPerformances(page, pageSize, uint(id))
	if err != nil {
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "查询绩效记录失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data": gin.H{
			"total":     total,
			"page":      page,
			"page_size": pageSize,
			"data":      performances,
		},
	})
}
