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

// LeaveController 处理请假相关的请求
type LeaveController struct {
	BaseControllerImpl
}

// NewLeaveController 创建一个新的请假控制器
func (f *ControllerFactory) NewLeaveController(ctx *gin.Context) *LeaveController {
	return &LeaveController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleLeaveFunc 返回一个处理请假请求的Gin处理函数
func HandleLeaveFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewLeaveController(ctx)

		switch method {
		case "getLeaves":
			controller.GetLeaves()
		case "getLeave":
			controller.GetLeave()
		case "createLeave":
			controller.CreateLeave()
		case "updateStatus":
			controller.UpdateStatus()
		case "deleteLeave":
			controller.DeleteLeave()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

func (c *LeaveController) leaveService() services.InterfaceLeaveService {
	return c.Container.GetService("leave").(services.InterfaceLeaveService)
}

// GetLeaves 获取请假列表
// @Summary      Get Leave List
// @Description  Get a list of leave requests, with pagination and filtering by employee number or status
// @Tags         Leave
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default is 1" example:"1"
// @Param        page_size query int false "Items per page, default is 10" example:"10"
// @Param        employee_id query string false "Filter by employee number" example:"EMP-A1B2C3"
// @Param        status query string false "Filter by status: Pending, Approved, Rejected" example:"Pending"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /leaves [get]
// @Security     BearerAuth
func (c *LeaveController) GetLeaves() {
	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("page_size", "10"))
	employeeID := c.Context.Query("employee_id")
	status := c.Context.Query("status")

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	leaves, total, err := c.leaveService().GetAllLeaves(page, pageSize, employeeID, status)
	if err != nil {
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "查询请假列表失败",
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
			"data":        leaves,
		},
	})
}

// GetLeave 获取单条请假详情
// @Summary      Get Leave By ID
// @Description  Get details of a specific leave request
// @Tags         Leave
// @Accept       json
// @Produce      json
// @Param        id path int true "Leave ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /leaves/{id} [get]
// @Security     BearerAuth
func (c *LeaveController) GetLeave() {
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

	leave, err := c.leaveService().GetLeaveByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrLeaveNotFound) {
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "请假记录不存在",
				"data":    nil,
			})
		} else {
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "查询请假记录失败: " + err.Error(),
				"data":    nil,
			})
		}
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    leave,
	})
}

// CreateLeaveRequest 表示提交请假申请的请求体
type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"required" example:"EMP-A1B2C3"`
	Type       string `json:"type" binding:"required" example:"Annual"`
	StartDate  string `json:"start_date" binding:"required" example:"2026-09-10"` // 格式: YYYY-MM-DD
	EndDate    string `json:"end_date" binding:"required" example:"2026-09-12"`   // 格式: YYYY-MM-DD
	Reason     string `json:"reason" example:"家庭事务"`
}

// CreateLeave 提交请假申请
// @Summary      Create Leave Request
// @Description  Submit a leave request for an employee, new requests always start in the Pending state
// @Tags         Leave
// @Accept       json
// @Produce      json
// @Param        request body CreateLeaveRequest true "Leave request parameters"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Employee not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /leaves [post]
// @Security     BearerAuth
func (c *LeaveController) CreateLeave() {
	var req CreateLeaveRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的开始日期格式，应为YYYY-MM-DD",
			"data":    nil,
		})
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的结束日期格式，应为YYYY-MM-DD",
			"data":    nil,
		})
		return
	}

	leave := models.Leave{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
	}

	if err := c.leaveService().CreateLeave(&leave); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "员工不存在",
				"data":    nil,
			})
			return
		}
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "提交请假申请失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Context.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "成功",
		"data":    leave,
	})
}

// UpdateLeaveStatusRequest 表示审批请假的请求体
type UpdateLeaveStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Approved"` // 可选值: Approved, Rejected
}

// UpdateStatus 审批请假申请
// @Summary      Update Leave Status
// @Description  Approve or reject a pending leave request, only Pending requests can transition
// @Tags         Leave
// @Accept       json
// @Produce      json
// @Param        id path int true "Leave ID" example:"1"
// @Param        request body UpdateLeaveStatusRequest true "Target status"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse "Invalid status transition"
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /leaves/{id}/status [put]
// @Security     BearerAuth
func (c *LeaveController) UpdateStatus() {
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

	var req UpdateLeaveStatusRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	leave, err := c.leaveService().UpdateStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLeaveNotFound):
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "请假记录不存在",
				"data":    nil,
			})
		case errors.Is(err, services.ErrLeaveInvalidTransition):
			c.Context.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "非法的状态流转，仅Pending状态可审批为Approved或Rejected",
				"data":    nil,
			})
		default:
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "审批请假失败: " + err.Error(),
				"data":    nil,
			})
		}
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    leave,
	})
}

// DeleteLeave 删除请假记录
// @Summary      Delete Leave
// @Description  Delete a leave request
// @Tags         Leave
// @Accept       json
// @Produce      json
// @Param        id path int true "Leave ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /leaves/{id} [delete]
// @Security     BearerAuth
func (c *LeaveController) DeleteLeave() {
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

	if err := c.leaveService().DeleteLeave(uint(id)); err != nil {
		if errors.Is(err, services.ErrLeaveNotFound) {
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "请假记录不存在",
				"data":    nil,
			})
		} else {
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "删除请假记录失败: " + err.Error(),
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
