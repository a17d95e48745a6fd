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

// NotificationController 处理站内通知相关的请求
type NotificationController struct {
	BaseControllerImpl
}

// NewNotificationController 创建一个新的通知控制器
func (f *ControllerFactory) NewNotificationController(ctx *gin.Context) *NotificationController {
	return &NotificationController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleNotificationFunc 返回一个处理通知请求的Gin处理函数
func HandleNotificationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewNotificationController(ctx)

		switch method {
		case "getNotifications":
			controller.GetNotifications()
		case "markRead":
			controller.MarkRead()
		case "markAllRead":
			controller.MarkAllRead()
		case "scanAlerts":
			controller.ScanAlerts()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

func (c *NotificationController) notificationService() services.InterfaceNotificationService {
	return c.Container.GetService("notification").(services.InterfaceNotificationService)
}

// currentUserID 从JWT claims中取出当前用户ID
func (c *NotificationController) currentUserID() uint {
	value, exists := c.Context.Get("userID")
	if !exists {
		return 0
	}
	if id, ok := value.(float64); ok {
		return uint(id)
	}
	return 0
}

// GetNotifications 获取当前用户的通知列表
// @Summary      Get My Notifications
// @Description  Get the current user's notifications, newest first, optionally unread only
// @Tags         Notification
// @Accept       json
// @Produce      json
// @Param        unread query bool false "Only return unread notifications" example:"true"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /notifications [get]
// @Security     BearerAuth
func (c *NotificationController) GetNotifications() {
	userID := c.currentUserID()
	if userID == 0 {
		response.Unauthorized(c.Context, "未登录")
		return
	}

	unreadOnly, _ := strconv.ParseBool(c.Context.DefaultQuery("unread", "false"))

	notifications, err := c.notificationService().GetUserNotifications(userID, unreadOnly)
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrDatabase, "查询通知失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Context, notifications)
}

// MarkRead 将一条通知标记为已读
// @Summary      Mark Notification As Read
// @Description  Mark one of the current user's notifications as read
// @Tags         Notification
// @Accept       json
// @Produce      json
// @Param        id path int true "Notification ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /notifications/{id}/read [put]
// @Security     BearerAuth
func (c *NotificationController) MarkRead() {
	userID := c.currentUserID()
	if userID == 0 {
		response.Unauthorized(c.Context, "未登录")
		return
	}

	idStr := c.Context.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		response.ParamError(c.Context, "无效的ID参数")
		return
	}

	if err := c.notificationService().MarkRead(uint(id), userID); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			response.NotFound(c.Context, "通知不存在")
			return
		}
		response.FailWithMessage(c.Context, code.ErrDatabase, "标记已读失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Context, nil)
}

// MarkAllRead 将当前用户的全部通知标记为已读
// @Summary      Mark All Notifications As Read
// @Description  Mark all of the current user's unread notifications as read
// @Tags         Notification
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /notifications/read-all [put]
// @Security     BearerAuth
func (c *NotificationController) MarkAllRead() {
	userID := c.currentUserID()
	if userID == 0 {
		response.Unauthorized(c.Context, "未登录")
		return
	}

	if err := c.notificationService().MarkAllRead(userID); err != nil {
		response.FailWithMessage(c.Context, code.ErrDatabase, "标记已读失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Context, nil)
}

// ScanAlerts 手动触发一次提醒扫描
// @Summary      Trigger Alert Scan
// @Description  Manually run one birthday and contract expiry alert scan, deduplicated per recipient and day
// @Tags         Notification
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{} "Scan statistics"
// @Failure      500  {object}  ErrorResponse
// @Router       /notifications/scan [post]
// @Security     BearerAuth
func (c *NotificationController) ScanAlerts() {
	alertService := c.Container.GetService("alert").(services.InterfaceAlertService)

	result, err := alertService.ScanAll()
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrUnknown, "提醒扫描失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Context, result)
}
