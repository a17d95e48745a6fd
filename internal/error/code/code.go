package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusConflict - 409: 资源冲突.
	StatusConflict = 409
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrPermissionDenied - 403: 权限不足.
	ErrPermissionDenied
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 409: 用户已存在.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: 用户密码错误.
	ErrUserPasswordIncorrect
)

// 员工相关错误码 (102xxx).
const (
	// ErrEmployeeNotFound - 404: 员工不存在.
	ErrEmployeeNotFound int = iota + 102000
	// ErrEmployeeAlreadyExist - 409: 员工已存在.
	ErrEmployeeAlreadyExist
)

// 部门相关错误码 (103xxx).
const (
	// ErrDepartmentNotFound - 404: 部门不存在.
	ErrDepartmentNotFound int = iota + 103000
	// ErrDepartmentAlreadyExist - 409: 部门已存在.
	ErrDepartmentAlreadyExist
	// ErrAlreadyMember - 409: 员工已在该部门.
	ErrAlreadyMember
	// ErrManagerNotMember - 400: 经理候选人不是该部门成员.
	ErrManagerNotMember
)

// 工资相关错误码 (104xxx).
const (
	// ErrPayrollNotFound - 404: 工资单不存在.
	ErrPayrollNotFound int = iota + 104000
	// ErrPayrollAlreadyExist - 409: 当月工资单已存在.
	ErrPayrollAlreadyExist
)

// 请假相关错误码 (105xxx).
const (
	// ErrLeaveNotFound - 404: 请假记录不存在.
	ErrLeaveNotFound int = iota + 105000
	// ErrLeaveInvalidTransition - 400: 非法的请假状态变更.
	ErrLeaveInvalidTransition
)

// 数据库相关错误码 (106xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 106000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
