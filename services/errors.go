package services

import "errors"

// 业务错误哨兵值，控制器通过 errors.Is 映射为错误码
var (
	ErrUserNotFound     = errors.New("用户不存在")
	ErrUserExists       = errors.New("用户已存在")
	ErrEmployeeNotFound = errors.New("员工不存在")
	ErrEmployeeExists   = errors.New("员工已存在")

	ErrDepartmentNotFound = errors.New("部门不存在")
	ErrDepartmentExists   = errors.New("部门已存在")
	ErrAlreadyMember      = errors.New("员工已在该部门")
	ErrManagerNotMember   = errors.New("经理候选人不是该部门成员")

	ErrPayrollNotFound = errors.New("工资单不存在")
	ErrPayrollExists   = errors.New("该员工当月工资单已存在")

	ErrLeaveNotFound          = errors.New("请假记录不存在")
	ErrLeaveInvalidTransition = errors.New("非法的请假状态变更")

	ErrNotificationNotFound = errors.New("通知不存在")
	ErrPerformanceNotFound  = errors.New("绩效记录不存在")
)
