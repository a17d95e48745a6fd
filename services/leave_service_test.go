package services

import (
	"errors"
	"testing"
	"time"

	"ems-http-service/models"
)

func TestCreateLeaveForcesPendingStatus(t *testing.T) {
	db := setupTestDB(t)
	notificationService := NewNotificationService(db, testConfig(), nil)
	service := NewLeaveService(db, testConfig(), notificationService)
	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")

	leave := models.Leave{
		EmployeeID: employee.EmployeeID,
		Type:       "Annual",
		StartDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Status:     models.LeaveStatusApproved, // 客户端传入的状态被忽略
	}
	if err := service.CreateLeave(&leave); err != nil {
		t.Fatalf("create leave: %v", err)
	}
	if leave.Status != models.LeaveStatusPending {
		t.Fatalf("status = %q, want %q", leave.Status, models.LeaveStatusPending)
	}
}

func TestCreateLeaveUnknownEmployee(t *testing.T) {
	db := setupTestDB(t)
	notificationService := NewNotificationService(db, testConfig(), nil)
	service := NewLeaveService(db, testConfig(), notificationService)

	leave := models.Leave{
		EmployeeID: "EMP-UNKNOWN",
		Type:       "Annual",
		StartDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	}
	if err := service.CreateLeave(&leave); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("err = %v, want ErrEmployeeNotFound", err)
	}
}

func TestCreateLeaveRejectsInvertedDates(t *testing.T) {
	db := setupTestDB(t)
	notificationService := NewNotificationService(db, testConfig(), nil)
	service := NewLeaveService(db, testConfig(), notificationService)
	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")

	leave := models.Leave{
		EmployeeID: employee.EmployeeID,
		Type:       "Annual",
		StartDate:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
	}
	if err := service.CreateLeave(&leave); err == nil {
		t.Fatal("expected error for end date before start date")
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	db := setupTestDB(t)
	notificationService := NewNotificationService(db, testConfig(), nil)
	service := NewLeaveService(db, testConfig(), notificationService)
	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")

	leave := models.Leave{
		EmployeeID: employee.EmployeeID,
		Type:       "Annual",
		StartDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	}
	if err := service.CreateLeave(&leave); err != nil {
		t.Fatalf("create leave: %v", err)
	}

	// 目标状态只能是Approved或Rejected
	if _, err := service.UpdateStatus(leave.ID, models.LeaveStatusPending); !errors.Is(err, ErrLeaveInvalidTransition) {
		t.Fatalf("pending target err = %v, want ErrLeaveInvalidTransition", err)
	}

	updated, err := service.UpdateStatus(leave.ID, models.LeaveStatusApproved)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if updated.Status != models.LeaveStatusApproved {
		t.Fatalf("status = %q, want %q", updated.Status, models.LeaveStatusApproved)
	}

	// 已审批的记录不可再流转
	if _, err := service.UpdateStatus(leave.ID, models.LeaveStatusRejected); !errors.Is(err, ErrLeaveInvalidTransition) {
		t.Fatalf("re-approve err = %v, want ErrLeaveInvalidTransition", err)
	}
}

func TestUpdateStatusNotifiesApplicant(t *testing.T) {
	db := setupTestDB(t)
	notificationService := NewNotificationService(db, testConfig(), nil)
	service := NewLeaveService(db, testConfig(), notificationService)
	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	user := createTestUser(t, db, "Li Lei", "lilei@example.com", models.RoleEmployee)

	leave := models.Leave{
		EmployeeID: employee.EmployeeID,
		Type:       "Annual",
		StartDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
	}
	if err := service.CreateLeave(&leave); err != nil {
		t.Fatalf("create leave: %v", err)
	}
	if _, err := service.UpdateStatus(leave.ID, models.LeaveStatusRejected); err != nil {
		t.Fatalf("reject: %v", err)
	}

	var notifications []models.Notification
	if err := db.Where("user_id = ?", user.ID).Find(&notifications).Error; err != nil {
		t.Fatalf("load notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifications))
	}
	if notifications[0].Type != models.NotificationTypeLeaveStatus {
		t.Errorf("type = %q, want %q", notifications[0].Type, models.NotificationTypeLeaveStatus)
	}
	// 业务通知不参与同日去重
	if notifications[0].AlertDate != nil {
		t.Errorf("alert_date = %v, want nil", notifications[0].AlertDate)
	}
}
