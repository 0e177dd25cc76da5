package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/constrack/backoffice-backend-go/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
)

// RenderPayslip produces a single-page A4 payslip for a saved salary payment.
func RenderPayslip(payment payroll.SalaryPayment) ([]byte, error) {
	period := fmt.Sprintf("%s %d", time.Month(payment.Month).String(), payment.Year)

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, "Payslip")
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 12)
	if payment.EmployeeName != nil {
		doc.Cell(0, 8, fmt.Sprintf("Employee: %s", *payment.EmployeeName))
		doc.Ln(7)
	}
	if payment.EmployeeCode != nil {
		doc.Cell(0, 8, fmt.Sprintf("Employee Code: %s", *payment.EmployeeCode))
		doc.Ln(7)
	}
	doc.Cell(0, 8, fmt.Sprintf("Period: %s", period))
	doc.Ln(10)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, "Attendance")
	doc.Ln(8)
	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 8, fmt.Sprintf("Working Days: %s", payment.WorkingDays.StringFixed(1)))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Present Days: %s", payment.PresentDays.StringFixed(1)))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Absent Days: %s", payment.AbsentDays.StringFixed(1)))
	doc.Ln(10)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, "Earnings")
	doc.Ln(8)
	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 8, fmt.Sprintf("Basic Salary: %s", payment.BasicSalary.StringFixed(2)))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Allowances: %s", payment.Allowances.StringFixed(2)))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Gross Salary: %s", payment.GrossSalary.StringFixed(2)))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Deductions: %s", payment.Deductions.StringFixed(2)))
	doc.Ln(10)

	doc.SetFont("Helvetica", "B", 14)
	doc.Cell(0, 10, fmt.Sprintf("Net Salary: %s", payment.NetSalary.StringFixed(2)))
	doc.Ln(12)

	doc.SetFont("Helvetica", "I", 10)
	status := fmt.Sprintf("Status: %s", payment.Status)
	if payment.PaidOn != nil {
		status += fmt.Sprintf(" (paid on %s)", payment.PaidOn.Format("2006-01-02"))
	}
	doc.Cell(0, 8, status)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}
