package services

import (
	"bytes"
	"testing"

	"ems-http-service/models"
)

func TestGeneratePayslipProducesPDF(t *testing.T) {
	service := NewPDFService(testConfig())

	payroll := &models.Payroll{
		Month:       8,
		Year:        2026,
		BaseSalary:  1000,
		Allowances:  100,
		Deductions:  50,
		GrossSalary: 1050,
		Tax:         2520,
		NetSalary:   10080,
		Employee: &models.Employee{
			EmployeeID: "EMP-ABC123",
			Name:       "Li Lei",
		},
	}

	content, err := service.GeneratePayslip(payroll)
	if err != nil {
		t.Fatalf("generate payslip: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Fatalf("output does not start with PDF header")
	}
}

func TestGenerateEmployeeReportProducesPDF(t *testing.T) {
	service := NewPDFService(testConfig())

	detail := &EmployeeDetail{
		Employee: &models.Employee{
			EmployeeID: "EMP-ABC123",
			Name:       "Li Lei",
			Email:      "lilei@example.com",
			Position:   "Engineer",
		},
		Performances: []models.Performance{
			{EmployeeID: 1, Period: "2026-H1", Rating: 4, Comments: "solid"},
		},
		Payrolls: []models.Payroll{
			{Month: 8, Year: 2026, GrossSalary: 1050, Tax: 2520, NetSalary: 10080},
		},
		Leaves: LeaveSummary{Total: 2, Approved: 1, Rejected: 1},
	}

	content, err := service.GenerateEmployeeReport(detail)
	if err != nil {
		t.Fatalf("generate report: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Fatalf("output does not start with PDF header")
	}
}
