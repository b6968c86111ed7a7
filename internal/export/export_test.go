package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"smartpark/internal/models"
)

func TestMonthlyReportXLSX(t *testing.T) {
	report := &models.MonthlyReport{
		Year:  2025,
		Month: 6,
		Summary: models.MonthlySummary{
			TotalTickets: 3,
			PaidTickets:  2,
			TotalRevenue: 4500,
		},
		DailyBreakdown: []models.DailyRevenue{
			{Date: "2025-06-01", TotalTickets: 2, PaidTickets: 1, TotalRevenue: 1500},
			{Date: "2025-06-02", TotalTickets: 1, PaidTickets: 1, TotalRevenue: 3000},
		},
	}

	data, err := MonthlyReportXLSX(report)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	month, err := f.GetCellValue("summary", "B3")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if month != "2025-06" {
		t.Errorf("summary month = %q, want 2025-06", month)
	}

	firstDay, err := f.GetCellValue("days", "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if firstDay != "2025-06-01" {
		t.Errorf("first day = %q, want 2025-06-01", firstDay)
	}
}

func TestBillPDF(t *testing.T) {
	paidAt := time.Date(2025, 6, 10, 12, 30, 0, 0, time.UTC)
	bill := &models.Bill{
		BillNumber:    "BILL-2025-06-10-00042",
		BillDate:      "2025-06-10",
		Company:       models.BillCompany{Name: "SmartPark", Address: "Rubavu", Phone: "+250", Email: "info@smartpark.rw"},
		DriverName:    "J. Doe",
		Phone:         "0788",
		Plate:         "RAD 123 A",
		TicketID:      9,
		DurationHours: 3,
		RateName:      "Standard parking",
		RatePrice:     500,
		TotalFee:      1500,
		PaymentID:     42,
		AmountPaid:    1500,
		Method:        "CASH",
		PaidAt:        paidAt,
	}

	data, err := BillPDF(bill)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}
