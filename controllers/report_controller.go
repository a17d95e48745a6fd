package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"ems-http-service/services"
	"ems-http-service/services/container"

	"github.com/gin-gonic/gin"
)

// ReportController 处理PDF报表导出请求
type ReportController struct {
	BaseControllerImpl
}

// NewReportController 创建一个新的报表控制器
func (f *ControllerFactory) NewReportController(ctx *gin.Context) *ReportController {
	return &ReportController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleReportFunc 返回一个处理报表请求的Gin处理函数
func HandleReportFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewReportController(ctx)

		switch method {
		case "payslip":
			controller.Payslip()
		case "employeeReport":
			controller.EmployeeReport()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

func (c *ReportController) pdfService() services.InterfacePDFService {
	return c.Container.GetService("pdf").(services.InterfacePDFService)
}

// Payslip 导出工资条PDF
// @Summary      Export Payslip PDF
// @Description  Export a single payroll record as a downloadable PDF payslip
// @Tags         Report
// @Accept       json
// @Produce      application/pdf
// @Param        id path int true "Payroll ID" example:"1"
// @Success      200  {file}    file "PDF document"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /reports/payslips/{id} [get]
// @Security     BearerAuth
func (c *ReportController) Payslip() {
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

	payrollService := c.Container.GetService("payroll").(services.InterfacePayrollService)
	payroll, err := payrollService.GetPayrollByID(uint(id))
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

	content, err := c.pdfService().GeneratePayslip(payroll)
	if err != nil {
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "生成PDF失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	filename := fmt.Sprintf("payslip-%d-%04d%02d.pdf", payroll.EmployeeID, payroll.Year, payroll.Month)
	c.Context.Header("Content-Disposition", "attachment; filename="+filename)
	c.Context.Data(http.StatusOK, "application/pdf", content)
}

// EmployeeReport 导出员工综合报表PDF
// @Summary      Export Employee Report PDF
// @Description  Export an employee's profile, recent payrolls, performances and leave summary as a PDF
// @Tags         Report
// @Accept       json
// @Produce      application/pdf
// @Param        id path int true "Employee ID" example:"1"
// @Success      200  {file}    file "PDF document"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /reports/employees/{id} [get]
// @Security     BearerAuth
func (c *ReportController) EmployeeReport() {
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

	analyticsService := c.Container.GetService("analytics").(services.InterfaceAnalyticsService)
	detail, err := analyticsService.GetEmployeeDetail(uint(id))
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
				"message": "查询员工视图失败: " + err.Error(),
				"data":    nil,
			})
		}
		return
	}

	content, err := c.pdfService().GenerateEmployeeReport(detail)
	if err != nil {
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "生成PDF失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	filename := fmt.Sprintf("employee-report-%s.pdf", detail.Employee.EmployeeID)
	c.Context.Header("Content-Disposition", "attachment; filename="+filename)
	c.Context.Data(http.StatusOK, "application/pdf", content)
}
