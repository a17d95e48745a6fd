package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"ems-http-service/models"
	"ems-http-service/services"
	"ems-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// DepartmentController 处理部门相关的请求
type DepartmentController struct {
	BaseControllerImpl
}

// NewDepartmentController 创建一个新的部门控制器
func (f *ControllerFactory) NewDepartmentController(ctx *gin.Context) *DepartmentController {
	return &DepartmentController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleDepartmentFunc 返回一个处理部门请求的Gin处理函数
func HandleDepartmentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewDepartmentController(ctx)

		switch method {
		case "getDepartments":
			controller.GetDepartments()
		case "getDepartment":
			controller.GetDepartment()
		case "createDepartment":
			controller.CreateDepartment()
		case "updateDepartment":
			controller.UpdateDepartment()
		case "deleteDepartment":
			controller.DeleteDepartment()
		case "addEmployee":
			controller.AddEmployee()
		case "transferEmployee":
			controller.TransferEmployee()
		case "assignManager":
			controller.AssignManager()
		case "removeManager":
			controller.RemoveManager()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

func (c *DepartmentController) departmentService() services.InterfaceDepartmentService {
	return c.Container.GetService("department").(services.InterfaceDepartmentService)
}

// parseIDParam 解析URL中的ID参数，失败时负责写出响应
func (c *DepartmentController) parseIDParam(name string) (uint, bool) {
	idStr := c.Context.Param(name)
	id, err := strconv.Atoi(idStr)
	if err != nil || id < 1 {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的ID参数",
			"data":    nil,
		})
		return 0, false
	}
	return uint(id), true
}

// GetDepartments 获取部门列表
// @Summary      Get Department List
// @Description  Get a list of all departments with their managers and members
// @Tags         Department
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default is 1" example:"1"
// @Param        page_size query int false "Items per page, default is 10" example:"10"
// @Param        search query string false "Search keyword for name or department number" example:"engineering"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /departments [get]
// @Security     BearerAuth
func (c *DepartmentController) GetDepartments() {
	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("page_size", "10"))
	search := c.Context.Query("search")

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	departments, total, err := c.departmentService().GetAllDepartments(page, pageSize, search)
	if err != nil {
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "查询部门列表失败",
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
			"data":        departments,
		},
	})
}

// GetDepartment 获取单个部门详情
// @Summary      Get Department By ID
// @Description  Get details of a specific department including manager and member list
// @Tags         Department
// @Accept       json
// @Produce      json
// @Param        id path int true "Department ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /departments/{id} [get]
// @Security     BearerAuth
func (c *DepartmentController) GetDepartment() {
	id, ok := c.parseIDParam("id")
	if !ok {
		return
	}

	department, err := c.departmentService().GetDepartmentByID(id)
	if err != nil {
		if errors.Is(err, services.ErrDepartmentNotFound) {
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "部门不存在",
				"data":    nil,
			})
		} else {
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "查询部门失败: " + err.Error(),
				"data":    nil,
			})
		}
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    department,
	})
}

// CreateDepartmentRequest 表示创建部门的请求体
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required" example:"研发部"`
}

// CreateDepartment 创建新部门
// @Summary      Create Department
// @Description  Create a new department with a unique name, department number is generated automatically
// @Tags         Department
// @Accept       json
// @Produce      json
// @Param        request body CreateDepartmentRequest true "Department information"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse "Bad request, department name already in use"
// @Failure      500  {object}  ErrorResponse
// @Router       /departments [post]
// @Security     BearerAuth
func (c *DepartmentController) CreateDepartment() {
	var req CreateDepartmentRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	department := models.Department{Name: req.Name}
	if err := c.departmentService().CreateDepartment(&department); err != nil {
		if errors.Is(err, services.ErrDepartmentExists) {
			c.Context.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "部门名称已存在",
				"data":    nil,
			})
			return
		}
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "创建部门失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Context.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "成功",
		"data":    department,
	})
}

// UpdateDepartmentRequest 表示更新部门的请求体
type UpdateDepartmentRequest struct {
	Name *string `json:"name" example:"平台研发部"`
}

// UpdateDepartment 更新部门基础信息
// @Summary      Update Department
// @Description  Update the basic information of a department, manager changes use the dedicated endpoints
// @Tags         Department
// @Accept       json
// @Produce      json
// @Param        id path int true "Department ID" example:"1"
// @Param        request body UpdateDepartmentRequest true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /departments/{id} [put]
// @Security     BearerAuth
func (c *DepartmentController) UpdateDepartment() {
	id, ok := c.parseIDParam("id")
	if !ok {
		return
	}

	var req UpdateDepartmentRequest
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
	if len(updates) == 0 {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "没有需要更新的字段",
			"data":    nil,
		})
		return
	}

	department, err := c.departmentService().UpdateDepartment(id, updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDepartmentNotFound):
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "部门不存在",
				"data":    nil,
			})
		case errors.Is(err, services.ErrDepartmentExists):
			c.Context.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "部门名称已存在",
				"data":    nil,
			})
		default:
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "更新部门失败: " + err.Error(),
				"data":    nil,
			})
		}
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    department,
	})
}

// DeleteDepartment 删除部门
// @Summary      Delete Department
// @Description  Delete a department and detach all of its members in one transaction
// @Tags         Department
// @Accept       json
// @Produce      json
// @Param        id path int true "Department ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /departments/{id} [delete]
// @Security     BearerAuth
func (c *DepartmentController) DeleteDepartment() {
	id, ok := c.parseIDParam("id")
	if !ok {
		return
	}

	if err := c.departmentService().DeleteDepartment(id); err != nil {
		if errors.Is(err, services.ErrDepartmentNotFound) {
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "部门不存在",
				"data":    nil,
			})
		} else {
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "删除部门失败: " + err.Error(),
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

// MemberRequest 表示部门成员操作的请求体
type MemberRequest struct {
	EmployeeID uint `json:"employee_id" binding:"required" example:"1"`
}

// AddEmployee 将员工加入部门
// @Summary      Add Employee To Department
// @Description  Add an employee to a department, returns a conflict if the employee is already a member
// @Tags         Department
// @Accept       json
// @Produce      json
// @Param        id path int true "Department ID" example:"1"
// @Param        request body MemberRequest true "Employee to add"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Employee is already a member"
// @Failure      500  {object}  ErrorResponse
// @Router       /departments/{id}/employees [post]
// @Security     BearerAuth
func (c *DepartmentController) AddEmployee() {
	id, ok := c.parseIDParam("id")
	if !ok {
		return
	}

	var req MemberRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	if err := c.departmentService().AddEmployee(id, req.EmployeeID); err != nil {
		switch {
		case errors.Is(err, services.ErrDepartmentNotFound):
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "部门不存在",
				"data":    nil,
			})
		case errors.Is(err, services.ErrEmployeeNotFound):
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "员工不存在",
				"data":    nil,
			})
		case errors.Is(err, services.ErrAlreadyMember):
			c.Context.JSON(http.StatusConflict, gin.H{
				"code":    409,
				"message": "员工已是该部门成员",
				"data":    nil,
			})
		default:
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "添加成员失败: " + err.Error(),
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

// TransferRequest 表示员工调动的请求体
type TransferRequest struct {
	EmployeeID      uint `json:"employee_id" binding:"required" example:"1"`
	NewDepartmentID uint `json:"new_department_id" binding:"required" example:"2"`
}

// TransferEmployee 调动员工到新部门
// @Summary      Transfer Employee
// @Description  Move an employee from their current department to a new one as a single logical operation
// @Tags         Department
// @Accept       json
// @Produce      json
// @Param        request body TransferRequest true "Transfer parameters"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /departments/transfer [post]
// @Security     BearerAuth
func (c *DepartmentController) TransferEmployee() {
	var req TransferRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	if err := c.departmentService().TransferEmployee(req.EmployeeID, req.NewDepartmentID); err != nil {
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "员工不存在",
				"data":    nil,
			})
		case errors.Is(err, services.ErrDepartmentNotFound):
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "部门不存在",
				"data":    nil,
			})
		default:
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "调动员工失败: " + err.Error(),
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

// AssignManager 任命部门经理
// @Summary      Assign Department Manager
// @Description  Assign a department member as manager, the linked user account is promoted to the manager role
// @Tags         Department
// @Accept       json
// @Produce      json
// @Param        id path int true "Department ID" example:"1"
// @Param        request body MemberRequest true "Employee to assign as manager"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse "Employee is not a member of the department"
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /departments/{id}/manager [post]
// @Security     BearerAuth
func (c *DepartmentController) AssignManager() {
	id, ok := c.parseIDParam("id")
	if !ok {
		return
	}

	var req MemberRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	if err := c.departmentService().AssignManager(id, req.EmployeeID); err != nil {
		switch {
		case errors.Is(err, services.ErrDepartmentNotFound):
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "部门不存在",
				"data":    nil,
			})
		case errors.Is(err, services.ErrEmployeeNotFound):
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "员工不存在",
				"data":    nil,
			})
		case errors.Is(err, services.ErrManagerNotMember):
			c.Context.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "候选经理必须是该部门成员",
				"data":    nil,
			})
		default:
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "任命经理失败: " + err.Error(),
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

// RemoveManager 免去部门经理
// @Summary      Remove Department Manager
// @Description  Remove the current manager of a department, the account is demoted only if they manage no other department
// @Tags         Department
// @Accept       json
// @Produce      json
// @Param        id path int true "Department ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /departments/{id}/manager [delete]
// @Security     BearerAuth
func (c *DepartmentController) RemoveManager() {
	id, ok := c.parseIDParam("id")
	if !ok {
		return
	}

	if err := c.departmentService().RemoveManager(id); err != nil {
		if errors.Is(err, services.ErrDepartmentNotFound) {
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "部门不存在",
				"data":    nil,
			})
		} else {
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "免职失败: " + err.Error(),
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
