package services

import (
	"strings"
	"testing"
	"time"

	"ems-http-service/models"
)

func TestScanAllBirthdayToday(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	db := setupTestDB(t)
	notificationService := NewNotificationService(db, testConfig(), nil)
	service := NewAlertService(db, testConfig(), nil, notificationService, nil)
	service.now = func() time.Time { return now }

	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	user := createTestUser(t, db, "Li Lei", "lilei@example.com", models.RoleEmployee)
	db.Model(employee).Update("dob", datePtr(1995, 9, 1))

	result, err := service.ScanAll()
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if result.BirthdayAlerts != 1 {
		t.Fatalf("birthday alerts = %d, want 1", result.BirthdayAlerts)
	}

	var notifications []models.Notification
	if err := db.Where("user_id = ?", user.ID).Find(&notifications).Error; err != nil {
		t.Fatalf("load notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifications))
	}
	if notifications[0].Title != "Happy Birthday" {
		t.Errorf("title = %q, want Happy Birthday", notifications[0].Title)
	}
	if notifications[0].Type != models.NotificationTypeBirthday {
		t.Errorf("type = %q, want %q", notifications[0].Type, models.NotificationTypeBirthday)
	}
}

func TestScanAllUpcomingBirthdayWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	db := setupTestDB(t)
	notificationService := NewNotificationService(db, testConfig(), nil)
	service := NewAlertService(db, testConfig(), nil, notificationService, nil)
	service.now = func() time.Time { return now }

	// 5天后生日: 在[0,7]窗口内
	inWindow := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	createTestUser(t, db, "Li Lei", "lilei@example.com", models.RoleEmployee)
	db.Model(inWindow).Update("dob", datePtr(1990, 9, 6))

	// 10天后生日: 窗口外
	outOfWindow := createTestEmployee(t, db, "Han Meimei", "hanmeimei@example.com")
	createTestUser(t, db, "Han Meimei", "hanmeimei@example.com", models.RoleEmployee)
	db.Model(outOfWindow).Update("dob", datePtr(1990, 9, 11))

	result, err := service.ScanAll()
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if result.BirthdayAlerts != 1 {
		t.Fatalf("birthday alerts = %d, want 1", result.BirthdayAlerts)
	}

	var notification models.Notification
	if err := db.Where("type = ?", models.NotificationTypeBirthday).First(&notification).Error; err != nil {
		t.Fatalf("load notification: %v", err)
	}
	if notification.Title != "Upcoming Birthday" {
		t.Errorf("title = %q, want Upcoming Birthday", notification.Title)
	}
}

func TestScanAllContractExpiryWindow(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	db := setupTestDB(t)
	notificationService := NewNotificationService(db, testConfig(), nil)
	service := NewAlertService(db, testConfig(), nil, notificationService, nil)
	service.now = func() time.Time { return now }

	// 10天后到期: 在[0,30]窗口内
	expiring := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	createTestUser(t, db, "Li Lei", "lilei@example.com", models.RoleEmployee)
	db.Model(expiring).Update("contract_expiry", datePtr(2026, 9, 11))

	// 40天后到期: 窗口外
	safe := createTestEmployee(t, db, "Han Meimei", "hanmeimei@example.com")
	createTestUser(t, db, "Han Meimei", "hanmeimei@example.com", models.RoleEmployee)
	db.Model(safe).Update("contract_expiry", datePtr(2026, 10, 11))

	result, err := service.ScanAll()
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if result.ContractAlerts != 1 {
		t.Fatalf("contract alerts = %d, want 1", result.ContractAlerts)
	}

	var notification models.Notification
	if err := db.Where("type = ?", models.NotificationTypeContractExpiry).First(&notification).Error; err != nil {
		t.Fatalf("load notification: %v", err)
	}
	// 消息中带确切剩余天数
	if want := "10"; !strings.Contains(notification.Message, want) {
		t.Errorf("message %q does not contain %q", notification.Message, want)
	}
}

func TestScanAllDeduplicatesSameDay(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	db := setupTestDB(t)
	notificationService := NewNotificationService(db, testConfig(), nil)
	service := NewAlertService(db, testConfig(), nil, notificationService, nil)
	service.now = func() time.Time { return now }

	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	user := createTestUser(t, db, "Li Lei", "lilei@example.com", models.RoleEmployee)
	db.Model(employee).Update("dob", datePtr(1995, 9, 1))

	if _, err := service.ScanAll(); err != nil {
		t.Fatalf("first scan: %v", err)
	}
	second, err := service.ScanAll()
	if err != nil {
		t.Fatalf("second scan: %v", err)
	}
	if second.BirthdayAlerts != 0 {
		t.Fatalf("second scan birthday alerts = %d, want 0", second.BirthdayAlerts)
	}

	var count int64
	if err := db.Model(&models.Notification{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count notifications: %v", err)
	}
	if count != 1 {
		t.Fatalf("notifications = %d, want exactly 1", count)
	}
}

func TestDaysBetweenAcrossShortDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("timezone database unavailable")
	}

	// 2026-03-08 该时区进入夏令时，当天只有23小时
	today := time.Date(2026, 3, 7, 0, 0, 0, 0, loc)
	expiry := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)

	if got := daysBetween(today, expiry); got != 2 {
		t.Fatalf("daysBetween = %d, want 2", got)
	}

	// 生日计数走同一条路径
	dob := time.Date(1990, 3, 9, 0, 0, 0, 0, loc)
	if got := daysUntilBirthday(dob, today); got != 2 {
		t.Fatalf("daysUntilBirthday = %d, want 2", got)
	}
}

func TestScanAllSkipsEmployeeWithoutAccount(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	db := setupTestDB(t)
	notificationService := NewNotificationService(db, testConfig(), nil)
	service := NewAlertService(db, testConfig(), nil, notificationService, nil)
	service.now = func() time.Time { return now }

	// 没有关联用户账户的员工不会产生提醒
	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	db.Model(employee).Update("dob", datePtr(1995, 9, 1))

	result, err := service.ScanAll()
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if result.BirthdayAlerts != 0 {
		t.Fatalf("birthday alerts = %d, want 0", result.BirthdayAlerts)
	}
	if result.EmployeesScanned != 1 {
		t.Fatalf("employees scanned = %d, want 1", result.EmployeesScanned)
	}
}
