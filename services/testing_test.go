package services

import (
	"fmt"
	"testing"
	"time"

	"ems-http-service/config"
	"ems-http-service/models"
	"ems-http-service/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 为每个测试创建独立的内存数据库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Department{},
		&models.Payroll{},
		&models.Leave{},
		&models.Performance{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	return &config.Config{}
}

// createTestEmployee 插入一个员工记录
func createTestEmployee(t *testing.T, db *gorm.DB, name, email string) *models.Employee {
	t.Helper()

	employee := &models.Employee{
		EmployeeID: utils.GenerateEmployeeNumber(),
		Name:       name,
		Email:      email,
		Position:   "Engineer",
		Salary:     10000,
	}
	if err := db.Create(employee).Error; err != nil {
		t.Fatalf("create test employee: %v", err)
	}
	return employee
}

// createTestUser 插入一个与员工邮箱关联的用户账户
func createTestUser(t *testing.T, db *gorm.DB, name, email, role string) *models.User {
	t.Helper()

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: "secret123",
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

// createTestDepartment 插入一个部门记录
func createTestDepartment(t *testing.T, db *gorm.DB, name string) *models.Department {
	t.Helper()

	department := &models.Department{
		DepartmentID: utils.GenerateDepartmentNumber(),
		Name:         name,
	}
	if err := db.Create(department).Error; err != nil {
		t.Fatalf("create test department: %v", err)
	}
	return department
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
