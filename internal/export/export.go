package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"smartpark/internal/models"
)

// MonthlyReportXLSX renders a monthly report as a two-sheet workbook.
func MonthlyReportXLSX(report *models.MonthlyReport) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	daysSheet := "days"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(daysSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Monthly Report")
	_ = f.SetCellValue(summarySheet, "A3", "Month")
	_ = f.SetCellValue(summarySheet, "B3", fmt.Sprintf("%04d-%02d", report.Year, report.Month))
	_ = f.SetCellValue(summarySheet, "A4", "Total tickets")
	_ = f.SetCellValue(summarySheet, "B4", report.Summary.TotalTickets)
	_ = f.SetCellValue(summarySheet, "A5", "Paid tickets")
	_ = f.SetCellValue(summarySheet, "B5", report.Summary.PaidTickets)
	_ = f.SetCellValue(summarySheet, "A6", "Unpaid tickets")
	_ = f.SetCellValue(summarySheet, "B6", report.Summary.UnpaidTickets)
	_ = f.SetCellValue(summarySheet, "A7", "Total revenue")
	_ = f.SetCellValue(summarySheet, "B7", report.Summary.TotalRevenue)
	_ = f.SetCellValue(summarySheet, "A8", "Average daily revenue")
	_ = f.SetCellValue(summarySheet, "B8", report.Summary.AverageDailyRevenue)

	_ = f.SetCellValue(daysSheet, "A1", "Date")
	_ = f.SetCellValue(daysSheet, "B1", "Tickets")
	_ = f.SetCellValue(daysSheet, "C1", "Paid")
	_ = f.SetCellValue(daysSheet, "D1", "Unpaid")
	_ = f.SetCellValue(daysSheet, "E1", "Revenue")
	for i, day := range report.DailyBreakdown {
		row := i + 2
		_ = f.SetCellValue(daysSheet, fmt.Sprintf("A%d", row), day.Date)
		_ = f.SetCellValue(daysSheet, fmt.Sprintf("B%d", row), day.TotalTickets)
		_ = f.SetCellValue(daysSheet, fmt.Sprintf("C%d", row), day.PaidTickets)
		_ = f.SetCellValue(daysSheet, fmt.Sprintf("D%d", row), day.UnpaidTickets)
		_ = f.SetCellValue(daysSheet, fmt.Sprintf("E%d", row), day.TotalRevenue)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BillPDF renders a printable bill.
func BillPDF(bill *models.Bill) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, bill.Company.Name)
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 5, bill.Company.Address)
	pdf.Ln(4)
	pdf.Cell(0, 5, fmt.Sprintf("%s  %s", bill.Company.Phone, bill.Company.Email))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Bill %s", bill.BillNumber))
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", bill.BillDate))
	pdf.Ln(8)

	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s (%s)", bill.DriverName, bill.Phone))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Plate: %s", bill.Plate))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(60, 6, "Service", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Duration (h)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Rate", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Fee", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(60, 6, bill.RateName, "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, fmt.Sprintf("%d", bill.DurationHours), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", bill.RatePrice), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", bill.TotalFee), "1", 0, "R", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Paid: %.2f (%s)", bill.AmountPaid, bill.Method))
	pdf.Ln(5)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Payment #%d, %s", bill.PaymentID, bill.PaidAt.Format("2006-01-02 15:04")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
