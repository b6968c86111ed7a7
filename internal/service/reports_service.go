package service

import (
	"context"
	"fmt"
	"time"

	"smartpark/internal/export"
	"smartpark/internal/models"
)

// ReportRepository defines the aggregation queries used by ReportsService.
type ReportRepository interface {
	Daily(ctx context.Context, date string) (*models.DailyReport, error)
	MonthlyDays(ctx context.Context, year, month int) ([]models.DailyRevenue, error)
	Overview(ctx context.Context) (*models.SummaryReport, error)
	Trends(ctx context.Context, days int) ([]models.TrendPoint, error)
}

// TicketLister supplies the recent-tickets block of the summary report.
type TicketLister interface {
	List(ctx context.Context, limit int) ([]models.TicketDetail, error)
}

const trendWindowDays = 30

// ReportsService produces daily, monthly and summary aggregates. Reports
// are recomputed from the base tables on every call.
type ReportsService struct {
	repo    ReportRepository
	tickets TicketLister
}

// NewReportsService builds service.
func NewReportsService(repo ReportRepository, tickets TicketLister) *ReportsService {
	return &ReportsService{repo: repo, tickets: tickets}
}

// Daily summarizes one date. Dates without activity return zero-filled
// reports.
func (s *ReportsService) Daily(ctx context.Context, date string) (*models.DailyReport, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	return s.repo.Daily(ctx, date)
}

// Monthly returns the per-day breakdown and a summary derived from it, so
// the monthly totals always equal the sum of the daily rows.
func (s *ReportsService) Monthly(ctx context.Context, year, month int) (*models.MonthlyReport, error) {
	if year < 2000 || year > 2200 {
		return nil, fmt.Errorf("%w: invalid year", ErrValidation)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: invalid month", ErrValidation)
	}

	days, err := s.repo.MonthlyDays(ctx, year, month)
	if err != nil {
		return nil, err
	}

	report := &models.MonthlyReport{
		Year:           year,
		Month:          month,
		DailyBreakdown: days,
	}
	for _, day := range days {
		report.Summary.TotalTickets += day.TotalTickets
		report.Summary.PaidTickets += day.PaidTickets
		report.Summary.UnpaidTickets += day.UnpaidTickets
		report.Summary.TotalRevenue += day.TotalRevenue
	}
	if len(days) > 0 {
		report.Summary.AverageDailyRevenue = report.Summary.TotalRevenue / float64(len(days))
	}
	return report, nil
}

// Summary returns the lifetime overview plus the ten most recent tickets.
func (s *ReportsService) Summary(ctx context.Context) (*models.SummaryReport, error) {
	summary, err := s.repo.Overview(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.tickets.List(ctx, 10)
	if err != nil {
		return nil, err
	}
	summary.RecentTickets = recent
	return summary, nil
}

// Trends returns the trailing 30-day revenue series.
func (s *ReportsService) Trends(ctx context.Context) ([]models.TrendPoint, error) {
	return s.repo.Trends(ctx, trendWindowDays)
}

// MonthlyXLSX renders the monthly report as an Excel workbook.
func (s *ReportsService) MonthlyXLSX(ctx context.Context, year, month int) ([]byte, error) {
	report, err := s.Monthly(ctx, year, month)
	if err != nil {
		return nil, err
	}
	return export.MonthlyReportXLSX(report)
}
