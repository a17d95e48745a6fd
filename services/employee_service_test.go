package services

import (
	"errors"
	"strings"
	"testing"

	"ems-http-service/models"
)

func TestCreateEmployeeCreatesLinkedAccount(t *testing.T) {
	db := setupTestDB(t)
	service := NewEmployeeService(db, testConfig())

	employee := models.Employee{
		Name:     "Li Lei",
		Email:    "lilei@example.com",
		Position: "Engineer",
		Salary:   10000,
	}
	if err := service.CreateEmployee(&employee, "secret123"); err != nil {
		t.Fatalf("create employee: %v", err)
	}

	if !strings.HasPrefix(employee.EmployeeID, "EMP-") {
		t.Errorf("employee number = %q, want EMP- prefix", employee.EmployeeID)
	}

	var user models.User
	if err := db.Where("email = ?", employee.Email).First(&user).Error; err != nil {
		t.Fatalf("load linked user: %v", err)
	}
	if user.Role != models.RoleEmployee {
		t.Errorf("role = %q, want %q", user.Role, models.RoleEmployee)
	}
}

func TestCreateEmployeeReusesExistingAccount(t *testing.T) {
	db := setupTestDB(t)
	service := NewEmployeeService(db, testConfig())
	existing := createTestUser(t, db, "Li Lei", "lilei@example.com", models.RoleHR)

	employee := models.Employee{
		Name:     "Li Lei",
		Email:    "lilei@example.com",
		Position: "Engineer",
		Salary:   10000,
	}
	if err := service.CreateEmployee(&employee, "secret123"); err != nil {
		t.Fatalf("create employee: %v", err)
	}

	// 已有同邮箱账户时沿用，不新建也不改角色
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", employee.Email).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("users = %d, want 1", count)
	}

	var got models.User
	if err := db.First(&got, existing.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if got.Role != models.RoleHR {
		t.Errorf("role = %q, want unchanged %q", got.Role, models.RoleHR)
	}
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	service := NewEmployeeService(db, testConfig())
	createTestEmployee(t, db, "Li Lei", "lilei@example.com")

	employee := models.Employee{
		Name:     "Another Li Lei",
		Email:    "lilei@example.com",
		Position: "Engineer",
		Salary:   9000,
	}
	if err := service.CreateEmployee(&employee, "secret123"); !errors.Is(err, ErrEmployeeExists) {
		t.Fatalf("err = %v, want ErrEmployeeExists", err)
	}
}

func TestDeleteEmployeeCleansUpReferences(t *testing.T) {
	db := setupTestDB(t)
	service := NewEmployeeService(db, testConfig())

	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	user := createTestUser(t, db, "Li Lei", "lilei@example.com", models.RoleManager)
	department := createTestDepartment(t, db, "Engineering")
	if err := db.Model(department).Update("manager_id", employee.ID).Error; err != nil {
		t.Fatalf("set manager: %v", err)
	}

	if err := service.DeleteEmployee(employee.ID); err != nil {
		t.Fatalf("delete employee: %v", err)
	}

	var gotDept models.Department
	if err := db.First(&gotDept, department.ID).Error; err != nil {
		t.Fatalf("reload department: %v", err)
	}
	if gotDept.ManagerID != nil {
		t.Errorf("manager_id = %v, want nil", gotDept.ManagerID)
	}

	var userCount int64
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Count(&userCount).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if userCount != 0 {
		t.Errorf("linked user still present")
	}

	if _, err := service.GetEmployeeByID(employee.ID); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("get deleted err = %v, want ErrEmployeeNotFound", err)
	}
}

func TestUpdateEmployeeRejectsTakenEmail(t *testing.T) {
	db := setupTestDB(t)
	service := NewEmployeeService(db, testConfig())

	createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	second := createTestEmployee(t, db, "Han Meimei", "hanmeimei@example.com")

	_, err := service.UpdateEmployee(second.ID, map[string]interface{}{"email": "lilei@example.com"})
	if !errors.Is(err, ErrEmployeeExists) {
		t.Fatalf("err = %v, want ErrEmployeeExists", err)
	}
}
