package services

import (
	"errors"
	"testing"

	"ems-http-service/models"
)

func TestAddEmployeeSyncsPointer(t *testing.T) {
	db := setupTestDB(t)
	userService := NewUserService(db, testConfig())
	service := NewDepartmentService(db, testConfig(), userService)

	department := createTestDepartment(t, db, "Engineering")
	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")

	if err := service.AddEmployee(department.ID, employee.ID); err != nil {
		t.Fatalf("add employee: %v", err)
	}

	var got models.Employee
	if err := db.First(&got, employee.ID).Error; err != nil {
		t.Fatalf("reload employee: %v", err)
	}
	if got.DepartmentID == nil || *got.DepartmentID != department.ID {
		t.Fatalf("department_id = %v, want %d", got.DepartmentID, department.ID)
	}

	// 重复加入同一部门返回冲突
	if err := service.AddEmployee(department.ID, employee.ID); !errors.Is(err, ErrAlreadyMember) {
		t.Fatalf("second add err = %v, want ErrAlreadyMember", err)
	}
}

func TestTransferEmployeeMovesMembershipAndClearsManager(t *testing.T) {
	db := setupTestDB(t)
	userService := NewUserService(db, testConfig())
	service := NewDepartmentService(db, testConfig(), userService)

	oldDept := createTestDepartment(t, db, "Engineering")
	newDept := createTestDepartment(t, db, "Platform")
	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	createTestUser(t, db, "Li Lei", "lilei@example.com", models.RoleEmployee)

	if err := service.AddEmployee(oldDept.ID, employee.ID); err != nil {
		t.Fatalf("add employee: %v", err)
	}
	if err := service.AssignManager(oldDept.ID, employee.ID); err != nil {
		t.Fatalf("assign manager: %v", err)
	}

	if err := service.TransferEmployee(employee.ID, newDept.ID); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	var gotEmployee models.Employee
	if err := db.First(&gotEmployee, employee.ID).Error; err != nil {
		t.Fatalf("reload employee: %v", err)
	}
	if gotEmployee.DepartmentID == nil || *gotEmployee.DepartmentID != newDept.ID {
		t.Fatalf("department_id = %v, want %d", gotEmployee.DepartmentID, newDept.ID)
	}

	// 调离后旧部门不再保留经理指针
	var gotOld models.Department
	if err := db.First(&gotOld, oldDept.ID).Error; err != nil {
		t.Fatalf("reload old department: %v", err)
	}
	if gotOld.ManagerID != nil {
		t.Fatalf("old department manager_id = %v, want nil", gotOld.ManagerID)
	}

	// 调离即免职，不再管理任何部门的账户降级回employee
	var gotUser models.User
	if err := db.Where("email = ?", "lilei@example.com").First(&gotUser).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if gotUser.Role != models.RoleEmployee {
		t.Fatalf("role after transfer = %q, want %q", gotUser.Role, models.RoleEmployee)
	}
}

func TestDeleteDepartmentDetachesMembers(t *testing.T) {
	db := setupTestDB(t)
	userService := NewUserService(db, testConfig())
	service := NewDepartmentService(db, testConfig(), userService)

	department := createTestDepartment(t, db, "Engineering")
	first := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	second := createTestEmployee(t, db, "Han Meimei", "hanmeimei@example.com")

	for _, employee := range []*models.Employee{first, second} {
		if err := service.AddEmployee(department.ID, employee.ID); err != nil {
			t.Fatalf("add employee %d: %v", employee.ID, err)
		}
	}

	if err := service.DeleteDepartment(department.ID); err != nil {
		t.Fatalf("delete department: %v", err)
	}

	var count int64
	if err := db.Model(&models.Employee{}).Where("department_id IS NOT NULL").Count(&count).Error; err != nil {
		t.Fatalf("count attached employees: %v", err)
	}
	if count != 0 {
		t.Fatalf("attached employees = %d, want 0", count)
	}
}

func TestAssignManagerRequiresMembership(t *testing.T) {
	db := setupTestDB(t)
	userService := NewUserService(db, testConfig())
	service := NewDepartmentService(db, testConfig(), userService)

	department := createTestDepartment(t, db, "Engineering")
	outsider := createTestEmployee(t, db, "Li Lei", "lilei@example.com")

	if err := service.AssignManager(department.ID, outsider.ID); !errors.Is(err, ErrManagerNotMember) {
		t.Fatalf("err = %v, want ErrManagerNotMember", err)
	}
}

func TestAssignManagerPromotesLinkedAccount(t *testing.T) {
	db := setupTestDB(t)
	userService := NewUserService(db, testConfig())
	service := NewDepartmentService(db, testConfig(), userService)

	department := createTestDepartment(t, db, "Engineering")
	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	user := createTestUser(t, db, "Li Lei", "lilei@example.com", models.RoleEmployee)

	if err := service.AddEmployee(department.ID, employee.ID); err != nil {
		t.Fatalf("add employee: %v", err)
	}
	if err := service.AssignManager(department.ID, employee.ID); err != nil {
		t.Fatalf("assign manager: %v", err)
	}

	var got models.User
	if err := db.First(&got, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if got.Role != models.RoleManager {
		t.Fatalf("role = %q, want %q", got.Role, models.RoleManager)
	}
}

func TestAssignManagerReplacesExistingManager(t *testing.T) {
	db := setupTestDB(t)
	userService := NewUserService(db, testConfig())
	service := NewDepartmentService(db, testConfig(), userService)

	department := createTestDepartment(t, db, "Engineering")
	first := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	firstUser := createTestUser(t, db, "Li Lei", "lilei@example.com", models.RoleEmployee)
	second := createTestEmployee(t, db, "Han Meimei", "hanmeimei@example.com")
	secondUser := createTestUser(t, db, "Han Meimei", "hanmeimei@example.com", models.RoleEmployee)

	for _, employee := range []*models.Employee{first, second} {
		if err := service.AddEmployee(department.ID, employee.ID); err != nil {
			t.Fatalf("add employee %d: %v", employee.ID, err)
		}
	}

	if err := service.AssignManager(department.ID, first.ID); err != nil {
		t.Fatalf("assign first: %v", err)
	}
	if err := service.AssignManager(department.ID, second.ID); err != nil {
		t.Fatalf("assign second: %v", err)
	}

	var got models.Department
	if err := db.First(&got, department.ID).Error; err != nil {
		t.Fatalf("reload department: %v", err)
	}
	if got.ManagerID == nil || *got.ManagerID != second.ID {
		t.Fatalf("manager_id = %v, want %d", got.ManagerID, second.ID)
	}

	// 被替换的前任不再管理任何部门，账户降级；继任者提升
	var gotFirst, gotSecond models.User
	if err := db.First(&gotFirst, firstUser.ID).Error; err != nil {
		t.Fatalf("reload first user: %v", err)
	}
	if gotFirst.Role != models.RoleEmployee {
		t.Fatalf("replaced manager role = %q, want %q", gotFirst.Role, models.RoleEmployee)
	}
	if err := db.First(&gotSecond, secondUser.ID).Error; err != nil {
		t.Fatalf("reload second user: %v", err)
	}
	if gotSecond.Role != models.RoleManager {
		t.Fatalf("new manager role = %q, want %q", gotSecond.Role, models.RoleManager)
	}
}

func TestRemoveManagerDemotesOnlyWhenNoDepartmentLeft(t *testing.T) {
	db := setupTestDB(t)
	userService := NewUserService(db, testConfig())
	service := NewDepartmentService(db, testConfig(), userService)

	first := createTestDepartment(t, db, "Engineering")
	second := createTestDepartment(t, db, "Platform")
	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	user := createTestUser(t, db, "Li Lei", "lilei@example.com", models.RoleEmployee)

	if err := service.AddEmployee(first.ID, employee.ID); err != nil {
		t.Fatalf("add employee: %v", err)
	}
	if err := service.AssignManager(first.ID, employee.ID); err != nil {
		t.Fatalf("assign first: %v", err)
	}

	// 同一员工兼任第二个部门的经理，此处直接写库模拟历史数据
	if err := db.Model(second).Update("manager_id", employee.ID).Error; err != nil {
		t.Fatalf("set second manager: %v", err)
	}

	if err := service.RemoveManager(first.ID); err != nil {
		t.Fatalf("remove first: %v", err)
	}

	var gotFirst models.Department
	if err := db.First(&gotFirst, first.ID).Error; err != nil {
		t.Fatalf("reload first department: %v", err)
	}
	if gotFirst.ManagerID != nil {
		t.Fatalf("first department manager_id = %v, want nil", gotFirst.ManagerID)
	}

	var got models.User
	if err := db.First(&got, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if got.Role != models.RoleManager {
		t.Fatalf("role after first removal = %q, want still manager", got.Role)
	}

	if err := service.RemoveManager(second.ID); err != nil {
		t.Fatalf("remove second: %v", err)
	}

	if err := db.First(&got, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if got.Role != models.RoleEmployee {
		t.Fatalf("role after last removal = %q, want %q", got.Role, models.RoleEmployee)
	}
}
