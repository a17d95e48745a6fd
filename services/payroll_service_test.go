package services

import (
	"errors"
	"testing"
)

func TestGeneratePayrollComputation(t *testing.T) {
	db := setupTestDB(t)
	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	service := NewPayrollService(db, testConfig())

	payroll, err := service.GeneratePayroll(GeneratePayrollRequest{
		EmployeeID: employee.ID,
		Month:      8,
		Year:       2026,
		BaseSalary: 1000,
		Allowances: 100,
		Deductions: 50,
	})
	if err != nil {
		t.Fatalf("generate payroll: %v", err)
	}

	if payroll.GrossSalary != 1050 {
		t.Errorf("gross = %v, want 1050", payroll.GrossSalary)
	}
	if payroll.Tax != 2520 {
		t.Errorf("tax = %v, want 2520", payroll.Tax)
	}
	// 净额口径为年化扣税后金额，沿袭线上系统的历史行为
	if payroll.NetSalary != 10080 {
		t.Errorf("net = %v, want 10080", payroll.NetSalary)
	}
}

func TestGeneratePayrollDuplicatePeriod(t *testing.T) {
	db := setupTestDB(t)
	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	service := NewPayrollService(db, testConfig())

	req := GeneratePayrollRequest{
		EmployeeID: employee.ID,
		Month:      8,
		Year:       2026,
		BaseSalary: 1000,
	}
	if _, err := service.GeneratePayroll(req); err != nil {
		t.Fatalf("first generate: %v", err)
	}

	if _, err := service.GeneratePayroll(req); !errors.Is(err, ErrPayrollExists) {
		t.Fatalf("second generate err = %v, want ErrPayrollExists", err)
	}

	// 同员工不同月份不受影响
	req.Month = 9
	if _, err := service.GeneratePayroll(req); err != nil {
		t.Fatalf("next month generate: %v", err)
	}
}

func TestGeneratePayrollUnknownEmployee(t *testing.T) {
	db := setupTestDB(t)
	service := NewPayrollService(db, testConfig())

	_, err := service.GeneratePayroll(GeneratePayrollRequest{
		EmployeeID: 999,
		Month:      8,
		Year:       2026,
		BaseSalary: 1000,
	})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("err = %v, want ErrEmployeeNotFound", err)
	}
}

func TestGetEmployeePayrollsOrderedAndLimited(t *testing.T) {
	db := setupTestDB(t)
	employee := createTestEmployee(t, db, "Li Lei", "lilei@example.com")
	service := NewPayrollService(db, testConfig())

	for month := 1; month <= 6; month++ {
		_, err := service.GeneratePayroll(GeneratePayrollRequest{
			EmployeeID: employee.ID,
			Month:      month,
			Year:       2026,
			BaseSalary: 1000,
		})
		if err != nil {
			t.Fatalf("generate month %d: %v", month, err)
		}
	}

	payrolls, err := service.GetEmployeePayrolls(employee.ID, 3)
	if err != nil {
		t.Fatalf("get payrolls: %v", err)
	}
	if len(payrolls) != 3 {
		t.Fatalf("len = %d, want 3", len(payrolls))
	}
	if payrolls[0].Month != 6 || payrolls[2].Month != 4 {
		t.Errorf("months = [%d %d %d], want newest first", payrolls[0].Month, payrolls[1].Month, payrolls[2].Month)
	}
}
