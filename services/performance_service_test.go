package services

import (
	"errors"
	"testing"

	"ems-http-service/models"
)

func TestCreatePerformanceValidatesRating(t *testing.T) {
	db := setupTestDB(t)
	service := NewPerformanceService(db, testConfig())

	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")

	bad := models.Performance{EmployeeID: employee.ID, Period: "2026-Q3", Rating: 6}
	if err := service.CreatePerformance(&bad); err == nil {
		t.Fatal("rating 6 accepted, want error")
	}

	good := models.Performance{EmployeeID: employee.ID, Period: "2026-Q3", Rating: 4, Comments: "solid quarter"}
	if err := service.CreatePerformance(&good); err != nil {
		t.Fatalf("create performance: %v", err)
	}
}

func TestCreatePerformanceUnknownEmployee(t *testing.T) {
	db := setupTestDB(t)
	service := NewPerformanceService(db, testConfig())

	performance := models.Performance{EmployeeID: 999, Period: "2026-Q3", Rating: 3}
	if err := service.CreatePerformance(&performance); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("err = %v, want ErrEmployeeNotFound", err)
	}
}

func TestGetAllPerformancesFiltersByEmployee(t *testing.T) {
	db := setupTestDB(t)
	service := NewPerformanceService(db, testConfig())

	first := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	second := createTestEmployee(t, db, "Han Meimei", "hanmeimei@example.com")

	for i, employee := range []*models.Employee{first, first, second} {
		performance := models.Performance{EmployeeID: employee.ID, Period: "2026-Q3", Rating: i%5 + 1}
		if err := service.CreatePerformance(&performance); err != nil {
			t.Fatalf("create performance %d: %v", i, err)
		}
	}

	got, total, err := service.GetAllPerformances(1, 10, first.ID)
	if err != nil {
		t.Fatalf("list performances: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("total = %d, len = %d, want 2 and 2", total, len(got))
	}
	for _, performance := range got {
		if performance.EmployeeID != first.ID {
			t.Fatalf("employee_id = %d, want %d", performance.EmployeeID, first.ID)
		}
	}
}

func TestUpdatePerformanceRejectsBadRating(t *testing.T) {
	db := setupTestDB(t)
	service := NewPerformanceService(db, testConfig())

	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	performance := models.Performance{EmployeeID: employee.ID, Period: "2026-Q3", Rating: 3}
	if err := service.CreatePerformance(&performance); err != nil {
		t.Fatalf("create performance: %v", err)
	}

	if _, err := service.UpdatePerformance(performance.ID, map[string]interface{}{"rating": 0}); err == nil {
		t.Fatal("rating 0 accepted, want error")
	}

	updated, err := service.UpdatePerformance(performance.ID, map[string]interface{}{"rating": 5, "comments": "promoted"})
	if err != nil {
		t.Fatalf("update performance: %v", err)
	}
	if updated.Rating != 5 || updated.Comments != "promoted" {
		t.Fatalf("updated = rating %d comments %q", updated.Rating, updated.Comments)
	}
}

func TestDeletePerformanceNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewPerformanceService(db, testConfig())

	if err := service.DeletePerformance(42); !errors.Is(err, ErrPerformanceNotFound) {
		t.Fatalf("err = %v, want ErrPerformanceNotFound", err)
	}
}
