package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GenerateEmployeeNumber 生成形如 EMP-3F2A9C 的员工编号
func GenerateEmployeeNumber() string {
	id := uuid.New().String()
	return "EMP-" + strings.ToUpper(id[:6])
}

// GenerateDepartmentNumber 生成形如 DEP-1B7E42 的部门编号
func GenerateDepartmentNumber() string {
	id := uuid.New().String()
	return "DEP-" + strings.ToUpper(id[:6])
}

// GenerateScanID 生成提醒扫描批次ID，用于日志追踪
func GenerateScanID() string {
	return fmt.Sprintf("scan-%s", uuid.New().String()[:8])
}
