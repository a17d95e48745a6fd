package services

import (
	"bytes"
	"fmt"
	"time"

	"ems-http-service/config"
	"ems-http-service/models"

	"github.com/jung-kurt/gofpdf"
)

// InterfacePDFService 定义PDF导出服务接口
type InterfacePDFService interface {
	GeneratePayslip(payroll *models.Payroll) ([]byte, error)
	GenerateEmployeeReport(detail *EmployeeDetail) ([]byte, error)
}

// PDFService 生成工资条和员工报表的PDF文档
type PDFService struct {
	Config *config.Config
}

// NewPDFService 创建一个新的PDF导出服务
func NewPDFService(cfg *config.Config) InterfacePDFService {
	return &PDFService{Config: cfg}
}

// GeneratePayslip 生成单期工资条PDF
func (s *PDFService) GeneratePayslip(payroll *models.Payroll) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "Payslip", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Period: %04d-%02d", payroll.Year, payroll.Month), "", 1, "C", false, 0, "")
	if payroll.Employee != nil {
		pdf.CellFormat(0, 8, fmt.Sprintf("Employee: %s (%s)", payroll.Employee.Name, payroll.Employee.EmployeeID), "", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	rows := []struct {
		label string
		value float64
	}{
		{"Base Salary", payroll.BaseSalary},
		{"Allowances", payroll.Allowances},
		{"Deductions", payroll.Deductions},
		{"Gross Salary", payroll.GrossSalary},
		{"Tax", payroll.Tax},
		{"Net Salary", payroll.NetSalary},
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(95, 9, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(95, 9, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, row := range rows {
		pdf.CellFormat(95, 9, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(95, 9, fmt.Sprintf("%.2f", row.value), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated at %s", time.Now().Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")

	return render(pdf)
}

// GenerateEmployeeReport 生成员工综合报表PDF，包含档案、
// 近期工资单、绩效和请假统计
func (s *PDFService) GenerateEmployeeReport(detail *EmployeeDetail) ([]byte, error) {
	employee := detail.Employee

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "Employee Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "Profile", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	writeField(pdf, "Employee No", employee.EmployeeID)
	writeField(pdf, "Name", employee.Name)
	writeField(pdf, "Email", employee.Email)
	writeField(pdf, "Position", employee.Position)
	if employee.Department != nil {
		writeField(pdf, "Department", employee.Department.Name)
	}
	if employee.ContractExpiry != nil {
		writeField(pdf, "Contract Expiry", employee.ContractExpiry.Format("2006-01-02"))
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "Recent Payrolls", "", 1, "L", false, 0, "")
	if len(detail.Payrolls) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 7, "No payroll records.", "", 1, "L", false, 0, "")
	} else {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(30, 8, "Period", "1", 0, "L", true, 0, "")
		pdf.CellFormat(40, 8, "Gross", "1", 0, "R", true, 0, "")
		pdf.CellFormat(40, 8, "Tax", "1", 0, "R", true, 0, "")
		pdf.CellFormat(40, 8, "Net", "1", 1, "R", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, payroll := range detail.Payrolls {
			pdf.CellFormat(30, 8, fmt.Sprintf("%04d-%02d", payroll.Year, payroll.Month), "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", payroll.GrossSalary), "1", 0, "R", false, 0, "")
			pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", payroll.Tax), "1", 0, "R", false, 0, "")
			pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", payroll.NetSalary), "1", 1, "R", false, 0, "")
		}
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "Performance", "", 1, "L", false, 0, "")
	if len(detail.Performances) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 7, "No performance records.", "", 1, "L", false, 0, "")
	} else {
		pdf.SetFont("Arial", "", 10)
		for _, performance := range detail.Performances {
			pdf.CellFormat(0, 7, fmt.Sprintf("%s: rating %d/5  %s", performance.Period, performance.Rating, performance.Comments), "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "Leave Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total %d, pending %d, approved %d, rejected %d",
		detail.Leaves.Total, detail.Leaves.Pending, detail.Leaves.Approved, detail.Leaves.Rejected), "", 1, "L", false, 0, "")

	return render(pdf)
}

func writeField(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func render(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
