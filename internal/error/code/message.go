package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:          "成功",
	ErrUnknown:          "未知错误",
	ErrBind:             "请求参数绑定错误",
	ErrValidation:       "请求参数验证错误",
	ErrTokenInvalid:     "无效的认证令牌",
	ErrPermissionDenied: "权限不足",

	// 用户相关错误码
	ErrUserNotFound:          "用户不存在",
	ErrUserAlreadyExist:      "用户已存在",
	ErrUserPasswordIncorrect: "用户密码错误",

	// 员工相关错误码
	ErrEmployeeNotFound:     "员工不存在",
	ErrEmployeeAlreadyExist: "员工已存在",

	// 部门相关错误码
	ErrDepartmentNotFound:     "部门不存在",
	ErrDepartmentAlreadyExist: "部门已存在",
	ErrAlreadyMember:          "员工已在该部门",
	ErrManagerNotMember:       "经理候选人不是该部门成员",

	// 工资相关错误码
	ErrPayrollNotFound:     "工资单不存在",
	ErrPayrollAlreadyExist: "该员工当月工资单已存在",

	// 请假相关错误码
	ErrLeaveNotFound:          "请假记录不存在",
	ErrLeaveInvalidTransition: "非法的请假状态变更",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,

	// 用户相关错误码
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusConflict,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// 员工相关错误码
	ErrEmployeeNotFound:     StatusNotFound,
	ErrEmployeeAlreadyExist: StatusConflict,

	// 部门相关错误码
	ErrDepartmentNotFound:     StatusNotFound,
	ErrDepartmentAlreadyExist: StatusConflict,
	ErrAlreadyMember:          StatusConflict,
	ErrManagerNotMember:       StatusBadRequest,

	// 工资相关错误码
	ErrPayrollNotFound:     StatusNotFound,
	ErrPayrollAlreadyExist: StatusConflict,

	// 请假相关错误码
	ErrLeaveNotFound:          StatusNotFound,
	ErrLeaveInvalidTransition: StatusBadRequest,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
