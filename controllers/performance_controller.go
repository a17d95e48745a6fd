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

// PerformanceController 处理绩效相关的请求
type PerformanceController struct {
	BaseControllerImpl
}

// NewPerformanceController 创建一个新的绩效控制器
func (f *ControllerFactory) NewPerformanceController(ctx *gin.Context) *PerformanceController {
	return &PerformanceController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandlePerformanceFunc 返回一个处理绩效请求的Gin处理函数
func HandlePerformanceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewPerformanceController(ctx)

		switch method {
		case "getPerformances":
			controller.GetPerformances()
		case "getPerformance":
			controller.GetPerformance()
		case "createPerformance":
			controller.CreatePerformance()
		case "updatePerformance":
			controller.UpdatePerformance()
		case "deletePerformance":
			controller.DeletePerformance()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

func (c *PerformanceController) performanceService() services.InterfacePerformanceService {
	return c.Container.GetService("performance").(services.InterfacePerformanceService)
}

// GetPerformances 获取绩效列表
// @Summary      Get Performance List
// @Description  Get a list of performance reviews, with pagination and filtering by employee
// @Tags         Performance
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default is 1" example:"1"
// @Param        page_size query int false "Items per page, default is 10" example:"10"
// @Param        employee_id query int false "Filter by employee ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /performances [get]
// @Security     BearerAuth
func (c *PerformanceController) GetPerformances() {
	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("page_size", "10"))
	employeeID, _ := strconv.Atoi(c.Context.DefaultQuery("employee_id", "0"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	performances, total, err := c.performanceService().GetAllPerformances(page, pageSize, uint(employeeID))
	if err != nil {
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "查询绩效列表失败",
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
			"data":        performances,
		},
	})
}

// GetPerformance 获取单条绩效详情
// @Summary      Get Performance By ID
// @Description  Get details of a specific performance review
// @Tags         Performance
// @Accept       json
// @Produce      json
// @Param        id path int true "Performance ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /performances/{id} [get]
// @Security     BearerAuth
func (c *PerformanceController) GetPerformance() {
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

	performance, err := c.performanceService().GetPerformanceByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrPerformanceNotFound) {
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "绩效记录不存在",
				"data":    nil,
			})
		} else {
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "查询绩效记录失败: " + err.Error(),
				"data":    nil,
			})
		}
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    performance,
	})
}

// CreatePerformanceRequest 表示创建绩效记录的请求体
type CreatePerformanceRequest struct {
	EmployeeID uint   `json:"employee_id" binding:"required" example:"1"`
	Period     string `json:"period" binding:"required" example:"2026-Q3"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5" example:"4"`
	Comments   string `json:"comments" example:"超出预期完成季度目标"`
}

// CreatePerformance 创建绩效记录
// @Summary      Create Performance Review
// @Description  Create a performance review for an employee, rating must be between 1 and 5
// @Tags         Performance
// @Accept       json
// @Produce      json
// @Param        request body CreatePerformanceRequest true "Performance review parameters"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Employee not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /performances [post]
// @Security     BearerAuth
func (c *PerformanceController) CreatePerformance() {
	var req CreatePerformanceRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	performance := models.Performance{
		EmployeeID: req.EmployeeID,
		Period:     req.Period,
		Rating:     req.Rating,
		Comments:   req.Comments,
	}

	if err := c.performanceService().CreatePerformance(&performance); err != nil {
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
			"message": "创建绩效记录失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Context.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "成功",
		"data":    performance,
	})
}

// UpdatePerformanceRequest 表示更新绩效记录的请求体
type UpdatePerformanceRequest struct {
	Rating   *int    `json:"rating" example:"5"`
	Comments *string `json:"comments" example:"表现优异"`
}

// UpdatePerformance 更新绩效记录
// @Summary      Update Performance Review
// @Description  Update the rating or comments of an existing performance review
// @Tags         Performance
// @Accept       json
// @Produce      json
// @Param        id path int true "Performance ID" example:"1"
// @Param        request body UpdatePerformanceRequest true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /performances/{id} [put]
// @Security     BearerAuth
func (c *PerformanceController) UpdatePerformance() {
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

	var req UpdatePerformanceRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	updates := make(map[string]interface{})
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Comments != nil {
		updates["comments"] = *req.Comments
	}
	if len(updates) == 0 {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "没有需要更新的字段",
			"data":    nil,
		})
		return
	}

	performance, err := c.performanceService().UpdatePerformance(uint(id), updates)
	if err != nil {
		if errors.Is(err, services.ErrPerformanceNotFound) {
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "绩效记录不存在",
				"data":    nil,
			})
			return
		}
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "更新绩效记录失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "成功",
		"data":    performance,
	})
}

// DeletePerformance 删除绩效记录
// @Summary      Delete Performance Review
// @Description  Delete a performance review
// @Tags         Performance
// @Accept       json
// @Produce      json
// @Param        id path int true "Performance ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /performances/{id} [delete]
// @Security     BearerAuth
func (c *PerformanceController) DeletePerformance() {
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

	if err := c.performanceService().DeletePerformance(uint(id)); err != nil {
		if errors.Is(err, services.ErrPerformanceNotFound) {
			c.Context.JSON(http.StatusNotFound, gin.H{
				"code":    404,
				"message": "绩效记录不存在",
				"data":    nil,
			})
		} else {
			c.Context.JSON(http.StatusInternalServerError, gin.H{
				"code":    500,
				"message": "删除绩效记录失败: " + err.Error(),
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
