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

// UserController 处理用户账户管理请求（仅限管理员）
type UserController struct {
	BaseControllerImpl
}

// NewUserController 创建一个新的用户控制器
func (f *ControllerFactory) NewUserController(ctx *gin.Context) *UserController {
	return &UserController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HandleUserFunc 返回一个处理用户管理请求的Gin处理函数
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewUserController(ctx)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "updateRole":
			controller.UpdateRole()
		case "deleteUser":
			controller.DeleteUser()
		default:
			response.ParamError(ctx, "无效的方法")
		}
	}
}

func (c *UserController) userService() services.InterfaceUserService {
	return c.Container.GetService("user").(services.InterfaceUserService)
}

// GetUsers 获取用户列表
// @Summary      Get User List
// @Description  Get a list of all user accounts, with pagination
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default is 1" example:"1"
// @Param        page_size query int false "Items per page, default is 10" example:"10"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /users [get]
// @Security     BearerAuth
func (c *UserController) GetUsers() {
	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Context.DefaultQuery("page_size", "10"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	users, total, err := c.userService().GetAllUsers(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrDatabase, "查询用户列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Context, gin.H{
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		"data":        users,
	})
}

// UpdateRoleRequest 表示更新用户角色的请求体
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required" example:"hr"` // 可选值: admin, hr, manager, employee
}

// UpdateRole 更新用户角色
// @Summary      Update User Role
// @Description  Directly set a user's role, manager promotions normally flow through department manager assignment
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID" example:"1"
// @Param        request body UpdateRoleRequest true "Target role"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/role [put]
// @Security     BearerAuth
func (c *UserController) UpdateRole() {
	idStr := c.Context.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		response.ParamError(c.Context, "无效的ID参数")
		return
	}

	var req UpdateRoleRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "无效的请求参数: "+err.Error())
		return
	}

	user, err := c.userService().UpdateRole(uint(id), req.Role)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.Fail(c.Context, code.ErrUserNotFound, nil)
			return
		}
		response.FailWithMessage(c.Context, code.ErrValidation, "更新角色失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Context, user)
}

// DeleteUser 删除用户
// @Summary      Delete User
// @Description  Delete a user account
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID" example:"1"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (c *UserController) DeleteUser() {
	idStr := c.Context.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		response.ParamError(c.Context, "无效的ID参数")
		return
	}

	if err := c.userService().DeleteUser(uint(id)); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.Fail(c.Context, code.ErrUserNotFound, nil)
			return
		}
		response.FailWithMessage(c.Context, code.ErrDatabase, "删除用户失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Context, nil)
}
