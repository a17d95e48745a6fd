package services

import (
	"errors"
	"testing"
	"time"

	"ems-http-service/models"
)

func TestGetDashboardSummaryCounts(t *testing.T) {
	db := setupTestDB(t)
	payrollService := NewPayrollService(db, testConfig())
	service := NewAnalyticsService(db, testConfig(), payrollService)

	department := createTestDepartment(t, db, "Engineering")
	first := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	second := createTestEmployee(t, db, "Han Meimei", "hanmeimei@example.com")
	createTestEmployee(t, db, "Wang Wei", "wangwei@example.com")
	for _, employee := range []*models.Employee{first, second} {
		if err := db.Model(employee).Update("department_id", department.ID).Error; err != nil {
			t.Fatalf("attach employee: %v", err)
		}
	}

	leave := models.Leave{
		EmployeeID: first.EmployeeID,
		Type:       "Annual",
		StartDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Status:     models.LeaveStatusPending,
	}
	if err := db.Create(&leave).Error; err != nil {
		t.Fatalf("create leave: %v", err)
	}

	summary, err := service.GetDashboardSummary()
	if err != nil {
		t.Fatalf("dashboard summary: %v", err)
	}
	if summary.TotalEmployees != 3 {
		t.Errorf("total employees = %d, want 3", summary.TotalEmployees)
	}
	if summary.TotalDepartments != 1 {
		t.Errorf("total departments = %d, want 1", summary.TotalDepartments)
	}
	if summary.PendingLeaves != 1 {
		t.Errorf("pending leaves = %d, want 1", summary.PendingLeaves)
	}
	if len(summary.ByDepartment) != 1 || summary.ByDepartment[0].Count != 2 {
		t.Errorf("by department = %+v, want one group of 2", summary.ByDepartment)
	}
}

func TestGetPayrollSummaryAggregates(t *testing.T) {
	db := setupTestDB(t)
	payrollService := NewPayrollService(db, testConfig())
	service := NewAnalyticsService(db, testConfig(), payrollService)
	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")

	for month := 1; month <= 2; month++ {
		_, err := payrollService.GeneratePayroll(GeneratePayrollRequest{
			EmployeeID: employee.ID,
			Month:      month,
			Year:       2026,
			BaseSalary: 1000,
			Allowances: 100,
			Deductions: 50,
		})
		if err != nil {
			t.Fatalf("generate month %d: %v", month, err)
		}
	}
	// 另一年度的数据不应计入
	if _, err := payrollService.GeneratePayroll(GeneratePayrollRequest{
		EmployeeID: employee.ID,
		Month:      12,
		Year:       2025,
		BaseSalary: 2000,
	}); err != nil {
		t.Fatalf("generate prior year: %v", err)
	}

	summary, err := service.GetPayrollSummary(2026)
	if err != nil {
		t.Fatalf("payroll summary: %v", err)
	}
	if summary.PayrollCount != 2 {
		t.Fatalf("count = %d, want 2", summary.PayrollCount)
	}
	if summary.TotalGross != 2100 {
		t.Errorf("total gross = %v, want 2100", summary.TotalGross)
	}
	if summary.TotalTax != 5040 {
		t.Errorf("total tax = %v, want 5040", summary.TotalTax)
	}
	if summary.TotalNet != 20160 {
		t.Errorf("total net = %v, want 20160", summary.TotalNet)
	}
	if summary.AverageGross != 1050 {
		t.Errorf("average gross = %v, want 1050", summary.AverageGross)
	}
}

func TestGetPayrollSummaryEmptyYear(t *testing.T) {
	db := setupTestDB(t)
	payrollService := NewPayrollService(db, testConfig())
	service := NewAnalyticsService(db, testConfig(), payrollService)

	summary, err := service.GetPayrollSummary(2030)
	if err != nil {
		t.Fatalf("payroll summary: %v", err)
	}
	if summary.PayrollCount != 0 || summary.TotalGross != 0 || summary.AverageGross != 0 {
		t.Fatalf("summary = %+v, want zero values", summary)
	}
}

func TestGetEmployeeDetail(t *testing.T) {
	db := setupTestDB(t)
	payrollService := NewPayrollService(db, testConfig())
	service := NewAnalyticsService(db, testConfig(), payrollService)
	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")

	// 14期工资单，详情只带最近12期
	for i := 0; i < 14; i++ {
		_, err := payrollService.GeneratePayroll(GeneratePayrollRequest{
			EmployeeID: employee.ID,
			Month:      i%12 + 1,
			Year:       2025 + i/12,
			BaseSalary: 1000,
		})
		if err != nil {
			t.Fatalf("generate payroll %d: %v", i, err)
		}
	}

	for _, status := range []string{models.LeaveStatusPending, models.LeaveStatusApproved, models.LeaveStatusApproved} {
		leave := models.Leave{
			EmployeeID: employee.EmployeeID,
			Type:       "Annual",
			StartDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			Status:     status,
		}
		if err := db.Create(&leave).Error; err != nil {
			t.Fatalf("create leave: %v", err)
		}
	}

	detail, err := service.GetEmployeeDetail(employee.ID)
	if err != nil {
		t.Fatalf("employee detail: %v", err)
	}
	if len(detail.Payrolls) != 12 {
		t.Errorf("payrolls = %d, want 12", len(detail.Payrolls))
	}
	if detail.Leaves.Total != 3 || detail.Leaves.Approved != 2 || detail.Leaves.Pending != 1 {
		t.Errorf("leaves = %+v, want total 3 / approved 2 / pending 1", detail.Leaves)
	}
}

func TestGetEmployeeDetailUnknownEmployee(t *testing.T) {
	db := setupTestDB(t)
	payrollService := NewPayrollService(db, testConfig())
	service := NewAnalyticsService(db, testConfig(), payrollService)

	if _, err := service.GetEmployeeDetail(999); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("err = %v, want ErrEmployeeNotFound", err)
	}
}
