package controllers

import (
	"errors"
	"strconv"

	"ems-http-service/internal/error/code"
	"ems-http-service/internal/error/response"
	"ems-http-service/services"
	"ems-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// AnalyticsController 处理统计分析相关的请求
type AnalyticsController struct {
	BaseControllerImpl
}

// NewAnalyticsController 创建一个新的统计分析控制器
func (f *ControllerFactory) NewAnalyticsController(ctx *gin.Context) *AnalyticsController {
	return &AnalyticsController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleAnalyticsFunc 返回一个处理统计请求的Gin处理函数
func HandleAnalyticsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewAnalyticsController(ctx)

		switch method {
		case "dashboard":
			controller.Dashboard()
		case "payrollSummary":
			controller.PayrollSummary()
		case "leaveSummary":
			controller.LeaveSummary()
		case "employeeDetail":
			controller.EmployeeDetail()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

func (c *AnalyticsController) analyticsService() services.InterfaceAnalyticsService {
	return c.Container.GetService("analytics").(services.InterfaceAnalyticsService)
}

// Dashboard 获取仪表盘概览
// @Summary      Get Dashboard Summary
// @Description  Get headcounts and distributions by department, position and role
// @Tags         Analytics
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /analytics/dashboard [get]
// @Security     BearerAuth
func (c *AnalyticsController) Dashboard() {
	summary, err := c.analyticsService().GetDashboardSummary()
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrDatabase, "查询统计数据失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Context, summary)
}

// PayrollSummary 获取工资统计
// @Summary      Get Payroll Summary
// @Description  Get payroll totals and averages, optionally limited to one year
// @Tags         Analytics
// @Accept       json
// @Produce      json
// @Param        year query int false "Limit to one year, 0 means all" example:"2026"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /analytics/payrolls [get]
// @Security     BearerAuth
func (c *AnalyticsController) PayrollSummary() {
	year, _ := strconv.Atoi(c.Context.DefaultQuery("year", "0"))

	summary, err := c.analyticsService().GetPayrollSummary(year)
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrDatabase, "查询工资统计失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Context, summary)
}

// LeaveSummary 获取请假统计
// @Summary      Get Leave Summary
// @Description  Get leave request counts broken down by status
// @Tags         Analytics
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /analytics/leaves [get]
// @Security     BearerAuth
func (c *AnalyticsController) LeaveSummary() {
	summary, err := c.analyticsService().GetLeaveSummary()
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrDatabase, "查询请假统计失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Context, summary)
}

// EmployeeDetail 获取员工综合视图
// @Summary      Get Employee Detail
// @Description  Get an aggregated view of an employee with performances, recent payrolls and leave counts
// @Tags         Analytics
// @Accept       json
// @Produce      json
// @Param        id path int true "Employee ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /analytics/employees/{id} [get]
// @Security     BearerAuth
func (c *AnalyticsController) EmployeeDetail() {
	idStr := c.Context.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		response.ParamError(c.Context, "无效的ID参数")
		return
	}

	detail, err := c.analyticsService().GetEmployeeDetail(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			response.Fail(c.Context, code.ErrEmployeeNotFound, nil)
			return
		}
		response.FailWithMessage(c.Context, code.ErrDatabase, "查询员工视图失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Context, detail)
}
