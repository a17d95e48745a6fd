package services

import (
	"errors"
	"testing"
	"time"

	"ems-http-service/models"
)

func TestCreateAlertDeduplicatesPerDay(t *testing.T) {
	db := setupTestDB(t)
	service := NewNotificationService(db, testConfig(), nil)
	user := createTestUser(t, db, "Li Lei", "lilei@example.com", models.RoleEmployee)

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	created, err := service.CreateAlert(user.ID, models.NotificationTypeBirthday, "Happy Birthday", "msg", day)
	if err != nil {
		t.Fatalf("first alert: %v", err)
	}
	if !created {
		t.Fatal("first alert not created")
	}

	// 同日同类型重复插入按已存在跳过
	created, err = service.CreateAlert(user.ID, models.NotificationTypeBirthday, "Happy Birthday", "msg", day.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("second alert: %v", err)
	}
	if created {
		t.Fatal("second alert should be skipped")
	}

	// 不同类型不互相影响
	created, err = service.CreateAlert(user.ID, models.NotificationTypeContractExpiry, "Contract Expiring", "msg", day)
	if err != nil {
		t.Fatalf("other type alert: %v", err)
	}
	if !created {
		t.Fatal("other type alert should be created")
	}

	var count int64
	if err := db.Model(&models.Notification{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("notifications = %d, want 2", count)
	}
}

func TestBusinessNotificationsBypassDedupe(t *testing.T) {
	db := setupTestDB(t)
	service := NewNotificationService(db, testConfig(), nil)
	user := createTestUser(t, db, "Li Lei", "lilei@example.com", models.RoleEmployee)

	// 同一天多条同类型业务通知全部落库
	for i := 0; i < 2; i++ {
		notification := models.Notification{
			UserID:  user.ID,
			Title:   "请假审批结果",
			Message: "msg",
			Type:    models.NotificationTypeLeaveStatus,
		}
		if err := service.Create(&notification); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	var count int64
	if err := db.Model(&models.Notification{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("notifications = %d, want 2", count)
	}
}

func TestMarkReadRequiresOwnership(t *testing.T) {
	db := setupTestDB(t)
	service := NewNotificationService(db, testConfig(), nil)
	owner := createTestUser(t, db, "Li Lei", "lilei@example.com", models.RoleEmployee)
	other := createTestUser(t, db, "Han Meimei", "hanmeimei@example.com", models.RoleEmployee)

	notification := models.Notification{
		UserID:  owner.ID,
		Title:   "title",
		Message: "msg",
		Type:    models.NotificationTypeLeaveStatus,
	}
	if err := service.Create(&notification); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := service.MarkRead(notification.ID, other.ID); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("foreign mark err = %v, want ErrNotificationNotFound", err)
	}

	if err := service.MarkRead(notification.ID, owner.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	var got models.Notification
	if err := db.First(&got, notification.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !got.IsRead {
		t.Fatal("notification not marked read")
	}
}

func TestMarkAllRead(t *testing.T) {
	db := setupTestDB(t)
	service := NewNotificationService(db, testConfig(), nil)
	user := createTestUser(t, db, "Li Lei", "lilei@example.com", models.RoleEmployee)

	for i := 0; i < 3; i++ {
		notification := models.Notification{
			UserID:  user.ID,
			Title:   "title",
			Message: "msg",
			Type:    models.NotificationTypeLeaveStatus,
		}
		if err := service.Create(&notification); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	if err := service.MarkAllRead(user.ID); err != nil {
		t.Fatalf("mark all read: %v", err)
	}

	unread, err := service.GetUserNotifications(user.ID, true)
	if err != nil {
		t.Fatalf("get unread: %v", err)
	}
	if len(unread) != 0 {
		t.Fatalf("unread = %d, want 0", len(unread))
	}
}
