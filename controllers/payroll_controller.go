package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"ems-http-service/services"
	"ems-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// PayrollController 处理工资单相关的请求
type PayrollController struct {
	BaseControllerImpl
}

// NewPayrollController 创建一个新的工资控制器
func (f *ControllerFactory) NewPayrollController(ctx *gin.Context) *PayrollController {
	return &PayrollController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandlePayrollFunc 返回一个处理工资请求的Gin处理函数
func HandlePayrollFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewPayrollController(ctx)

		switch method {
		case "getPayrolls":
			controller.GetPayrolls()
		case "getPayroll":
			controller.GetPayroll()
		case "generatePayroll":
			controller.GeneratePayroll()
		case "deletePayroll":
			controller.DeletePayroll()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

func (c *PayrollController) payrollService() services.InterfacePayrollService {
	return c.Container.GetService("payroll").(services.InterfacePayrollService)
}

// GetPayrolls 获取工资单列表
// @Summary      Get Payroll List
// @Description  Get a list of payroll records, with pagination and filtering by employee or year
// @Tags         Payroll
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default is 1" example:"1"
// @Param        page_size query int false "Items per page, default is 10" example:"10"
// @Param        employee_id query int false "Filter by employee ID" example:"1"
// @Param        year query int false "Filter by year" example:"2026"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /payrolls [get]
// @Security     BearerAuth
func (c *PayrollController) GetPayrolls() {
	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("page_size", "10"))
	employeeID, _ := strconv.Atoi(c.Context.DefaultQuery("employee_id", "0"))
	year, _ := strconv.Atoi(c.Context.DefaultQuery("year", "0"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	payrolls, total, err := c.payrollService().GetAllPayrolls(page, pageSize, uint(employeeID), year)
	if err != nil {
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "查询工资单列表失败",
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
			"data":        payrolls,
		},
	})
}

// GetPayroll 获取单个工资单详情
// @Summary      Get Payroll By ID
// @Description  Get details of a specific payroll record
// @Tags         Payroll
// @Accept       json
// @Produce      json
// @Param        id path int true "Payroll ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /payrolls/{id} [get]
// @Security     BearerAuth
func (c *PayrollController) GetPayroll() {
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

	payroll, err := c.payrollService().GetPayrollByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrPayrollNotFound) {
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "工资单不存在",
				"data":    nil,
			})
		} else {
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "查询工资单失败: " + err.Error(),
				"data":    nil,
			})
		}
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    payroll,
	})
}

// GeneratePayrollRequest 表示生成工资单的请求体
type GeneratePayrollRequest struct {
	EmployeeID uint    `json:"employee_id" binding:"required" example:"1"`
	Month      int     `json:"month" binding:"required,min=1,max=12" example:"8"`
	Year       int     `json:"year" binding:"required" example:"2026"`
	BaseSalary float64 `json:"base_salary" binding:"required" example:"12000"`
	Allowances float64 `json:"allowances" example:"1500"`
	Deductions float64 `json:"deductions" example:"300"`
}

// GeneratePayroll 生成工资单
// @Summary      Generate Payroll
// @Description  Generate a payroll record for an employee for a given month, one record per employee and period
// @Tags         Payroll
// @Accept       json
// @Produce      json
// @Param        request body GeneratePayrollRequest true "Payroll parameters"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Employee not found"
// @Failure      409  {object}  ErrorResponse "Payroll already exists for this period"
// @Failure      500  {object}  ErrorResponse
// @Router       /payrolls [post]
// @Security     BearerAuth
func (c *PayrollController) GeneratePayroll() {
	var req GeneratePayrollRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	payroll, err := c.payrollService().GeneratePayroll(services.GeneratePayrollRequest{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Year:       req.Year,
		BaseSalary: req.BaseSalary,
		Allowances: req.Allowances,
		Deductions: req.Deductions,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "员工不存在",
				"data":    nil,
			})
		case errors.Is(err, services.ErrPayrollExists):
			c.Context.JSON(http.StatusConflict, gin.H{
				"code":    409,
				"message": "该员工当期工资单已存在",
				"data":    nil,
			})
		default:
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "生成工资单失败: " + err.Error(),
				"data":    nil,
			})
		}
		return
	}

	c.Context.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "成功",
		"data":    payroll,
	})
}

// DeletePayroll 删除工资单
// @Summary      Delete Payroll
// @Description  Delete a payroll record
// @Tags         Payroll
// @Accept       json
// @Produce      json
// @Param        id path int true "Payroll ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /payrolls/{id} [delete]
// @Security     BearerAuth
func (c *PayrollController) DeletePayroll() {
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

	if err := c.payrollService().DeletePayroll(uint(id)); err != nil {
		if errors.Is(err, services.ErrPayrollNotFound) {
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "工资单不存在",
				"data":    nil,
			})
		} else {
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "删除工资单失败: " + err.Error(),
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
