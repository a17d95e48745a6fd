package services

import (
	"errors"
	"testing"

	"ems-http-service/models"

	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPasswordAndRejectsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db, testConfig())

	user, err := service.Register("Li Lei", "lilei@example.com", "secret123", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != models.RoleEmployee {
		t.Errorf("default role = %q, want %q", user.Role, models.RoleEmployee)
	}

	var got models.User
	if err := db.First(&got, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if got.Password == "secret123" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(got.Password), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	if _, err := service.Register("Another", "lilei@example.com", "secret456", ""); !errors.Is(err, ErrUserExists) {
		t.Fatalf("duplicate register err = %v, want ErrUserExists", err)
	}
}

func TestUpdateRoleValidation(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db, testConfig())
	user := createTestUser(t, db, "Li Lei", "lilei@example.com", models.RoleEmployee)

	if _, err := service.UpdateRole(user.ID, "superadmin"); err == nil {
		t.Fatal("expected error for invalid role")
	}

	updated, err := service.UpdateRole(user.ID, models.RoleHR)
	if err != nil {
		t.Fatalf("update role: %v", err)
	}
	if updated.Role != models.RoleHR {
		t.Fatalf("role = %q, want %q", updated.Role, models.RoleHR)
	}
}

func TestHandleManagerEventSkipsMissingAccount(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db, testConfig())

	// 无关联账户的员工任免不报错也不产生账户
	err := service.HandleManagerEvent(ManagerEvent{
		Type:          EventManagerAssigned,
		EmployeeEmail: "nobody@example.com",
		EmployeeID:    42,
	})
	if err != nil {
		t.Fatalf("event for missing account: %v", err)
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 0 {
		t.Fatalf("users = %d, want 0", count)
	}
}

func TestHandleManagerEventUnknownType(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db, testConfig())
	createTestUser(t, db, "Li Lei", "lilei@example.com", models.RoleEmployee)

	err := service.HandleManagerEvent(ManagerEvent{
		Type:          "ManagerPromoted",
		EmployeeEmail: "lilei@example.com",
	})
	if err == nil {
		t.Fatal("expected error for unknown event type")
	}
}
