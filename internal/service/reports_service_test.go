package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"smartpark/internal/models"
)

type fakeReportRepo struct {
	daily    *models.DailyReport
	days     []models.DailyRevenue
	overview *models.SummaryReport
	trends   []models.TrendPoint
}

func (f *fakeReportRepo) Daily(context.Context, string) (*models.DailyReport, error) {
	return f.daily, nil
}

func (f *fakeReportRepo) MonthlyDays(context.Context, int, int) ([]models.DailyRevenue, error) {
	return f.days, nil
}

func (f *fakeReportRepo) Overview(context.Context) (*models.SummaryReport, error) {
	return f.overview, nil
}

func (f *fakeReportRepo) Trends(_ context.Context, days int) ([]models.TrendPoint, error) {
	if len(f.trends) > days {
		return f.trends[:days], nil
	}
	return f.trends, nil
}

type fakeTicketLister struct {
	tickets   []models.TicketDetail
	lastLimit int
}

func (f *fakeTicketLister) List(_ context.Context, limit int) ([]models.TicketDetail, error) {
	f.lastLimit = limit
	if len(f.tickets) > limit {
		return f.tickets[:limit], nil
	}
	return f.tickets, nil
}

func TestReportsServiceDailyValidatesDate(t *testing.T) {
	svc := NewReportsService(&fakeReportRepo{daily: &models.DailyReport{Date: "2025-06-01"}}, &fakeTicketLister{})

	for _, date := range []string{"", "2025-6-1", "06/01/2025", "2025-13-01", "yesterday"} {
		if _, err := svc.Daily(context.Background(), date); !errors.Is(err, ErrValidation) {
			t.Fatalf("date %q: expected ErrValidation, got %v", date, err)
		}
	}

	report, err := svc.Daily(context.Background(), "2025-06-01")
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if report.Date != "2025-06-01" {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestReportsServiceMonthlySummaryMatchesBreakdown(t *testing.T) {
	days := []models.DailyRevenue{
		{Date: "2025-06-01", TotalTickets: 4, PaidTickets: 3, UnpaidTickets: 1, TotalRevenue: 350},
		{Date: "2025-06-02", TotalTickets: 2, PaidTickets: 2, UnpaidTickets: 0, TotalRevenue: 120},
		{Date: "2025-06-05", TotalTickets: 1, PaidTickets: 0, UnpaidTickets: 1, TotalRevenue: 0},
	}
	svc := NewReportsService(&fakeReportRepo{days: days}, &fakeTicketLister{})

	report, err := svc.Monthly(context.Background(), 2025, 6)
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}

	var tickets, paid, unpaid int
	var revenue float64
	for _, day := range report.DailyBreakdown {
		tickets += day.TotalTickets
		paid += day.PaidTickets
		unpaid += day.UnpaidTickets
		revenue += day.TotalRevenue
	}
	if report.Summary.TotalTickets != tickets || report.Summary.PaidTickets != paid || report.Summary.UnpaidTickets != unpaid {
		t.Fatalf("summary counts diverge from breakdown: %+v", report.Summary)
	}
	if report.Summary.TotalRevenue != revenue {
		t.Fatalf("summary revenue %v != breakdown sum %v", report.Summary.TotalRevenue, revenue)
	}
	want := revenue / 3
	if math.Abs(report.Summary.AverageDailyRevenue-want) > 1e-9 {
		t.Fatalf("average daily revenue %v, want %v", report.Summary.AverageDailyRevenue, want)
	}
}

func TestReportsServiceMonthlyEmptyMonth(t *testing.T) {
	svc := NewReportsService(&fakeReportRepo{}, &fakeTicketLister{})

	report, err := svc.Monthly(context.Background(), 2025, 2)
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}
	if report.Summary.TotalRevenue != 0 || report.Summary.AverageDailyRevenue != 0 {
		t.Fatalf("empty month must be zero-filled: %+v", report.Summary)
	}
}

func TestReportsServiceMonthlyValidation(t *testing.T) {
	svc := NewReportsService(&fakeReportRepo{}, &fakeTicketLister{})

	cases := []struct {
		name        string
		year, month int
	}{
		{"zero month", 2025, 0},
		{"month thirteen", 2025, 13},
		{"ancient year", 1024, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Monthly(context.Background(), tc.year, tc.month); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestReportsServiceSummaryIncludesRecentTickets(t *testing.T) {
	lister := &fakeTicketLister{tickets: make([]models.TicketDetail, 25)}
	svc := NewReportsService(&fakeReportRepo{overview: &models.SummaryReport{TotalTickets: 40}}, lister)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if lister.lastLimit != 10 {
		t.Fatalf("expected recent ticket limit 10, got %d", lister.lastLimit)
	}
	if len(summary.RecentTickets) != 10 {
		t.Fatalf("expected 10 recent tickets, got %d", len(summary.RecentTickets))
	}
	if summary.TotalTickets != 40 {
		t.Fatalf("overview totals lost: %+v", summary)
	}
}

func TestReportsServiceMonthlyXLSX(t *testing.T) {
	days := []models.DailyRevenue{{Date: "2025-06-01", TotalTickets: 1, PaidTickets: 1, TotalRevenue: 80}}
	svc := NewReportsService(&fakeReportRepo{days: days}, &fakeTicketLister{})

	data, err := svc.MonthlyXLSX(context.Background(), 2025, 6)
	if err != nil {
		t.Fatalf("xlsx: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty workbook")
	}

	if _, err := svc.MonthlyXLSX(context.Background(), 2025, 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
