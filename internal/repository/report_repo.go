package repository

import (
	"context"
	"database/sql"
	"time"

	"smartpark/internal/models"
)

// ReportRepository computes aggregates over tickets and payments. Every call
// re-scans the relevant rows; nothing is cached or maintained incrementally.
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository returns repository.
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Daily summarizes all tickets whose interval started on the given date.
// A date with no rows yields a zero-filled report, not an error.
func (r *ReportRepository) Daily(ctx context.Context, date string) (*models.DailyReport, error) {
	report := &models.DailyReport{Date: date}

	const totalsQuery = `
		SELECT
			COUNT(t.id),
			COUNT(t.id) FILTER (WHERE t.status = 'COMPLETED'),
			COUNT(t.id) FILTER (WHERE t.status = 'ACTIVE'),
			COALESCE(SUM(t.total_fee), 0),
			COALESCE(SUM(p.amount_paid), 0)
		FROM tickets t
		LEFT JOIN payments p ON p.ticket_id = t.id
		WHERE t.entry_time::date = $1::date
	`
	err := r.db.QueryRowContext(ctx, totalsQuery, date).Scan(
		&report.TotalTickets,
		&report.CompletedTickets,
		&report.ActiveTickets,
		&report.TotalFees,
		&report.TotalPayments,
	)
	if err != nil {
		return nil, err
	}

	const methodQuery = `
		SELECT p.method, COUNT(p.id), COALESCE(SUM(p.amount_paid), 0)
		FROM payments p
		JOIN tickets t ON t.id = p.ticket_id
		WHERE t.entry_time::date = $1::date
		GROUP BY p.method
		ORDER BY p.method
	`
	rows, err := r.db.QueryContext(ctx, methodQuery, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var mt models.MethodTotal
		if err := rows.Scan(&mt.Method, &mt.Count, &mt.Amount); err != nil {
			return nil, err
		}
		report.ByMethod = append(report.ByMethod, mt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const rateQuery = `
		SELECT r.name, COUNT(t.id), COALESCE(SUM(t.total_fee), 0)
		FROM tickets t
		JOIN rates r ON r.id = t.rate_id
		WHERE t.entry_time::date = $1::date
		GROUP BY r.name
		ORDER BY r.name
	`
	rateRows, err := r.db.QueryContext(ctx, rateQuery, date)
	if err != nil {
		return nil, err
	}
	defer rateRows.Close()
	for rateRows.Next() {
		var rt models.RateTotal
		if err := rateRows.Scan(&rt.RateName, &rt.Tickets, &rt.Amount); err != nil {
			return nil, err
		}
		report.ByRate = append(report.ByRate, rt)
	}
	if err := rateRows.Err(); err != nil {
		return nil, err
	}

	return report, nil
}

// MonthlyDays returns the per-day revenue rows for a month.
func (r *ReportRepository) MonthlyDays(ctx context.Context, year, month int) ([]models.DailyRevenue, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	const query = `
		SELECT t.entry_time::date, COUNT(t.id), COUNT(p.id), COALESCE(SUM(p.amount_paid), 0)
		FROM tickets t
		LEFT JOIN payments p ON p.ticket_id = t.id
		WHERE t.entry_time >= $1 AND t.entry_time < $2
		GROUP BY t.entry_time::date
		ORDER BY t.entry_time::date
	`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []models.DailyRevenue
	for rows.Next() {
		var (
			day time.Time
			d   models.DailyRevenue
		)
		if err := rows.Scan(&day, &d.TotalTickets, &d.PaidTickets, &d.TotalRevenue); err != nil {
			return nil, err
		}
		d.Date = day.Format("2006-01-02")
		d.UnpaidTickets = d.TotalTickets - d.PaidTickets
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return days, nil
}

// Overview returns the lifetime counters plus today's activity.
func (r *ReportRepository) Overview(ctx context.Context) (*models.SummaryReport, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM vehicles),
			(SELECT COUNT(*) FROM rates),
			(SELECT COUNT(*) FROM tickets),
			(SELECT COUNT(*) FROM payments),
			(SELECT COALESCE(SUM(amount_paid), 0) FROM payments),
			(SELECT COUNT(*)
			 FROM tickets t
			 LEFT JOIN payments p ON p.ticket_id = t.id
			 WHERE t.status = 'COMPLETED' AND p.id IS NULL),
			(SELECT COUNT(*) FROM tickets WHERE entry_time::date = CURRENT_DATE),
			(SELECT COALESCE(SUM(p.amount_paid), 0)
			 FROM payments p
			 JOIN tickets t ON t.id = p.ticket_id
			 WHERE t.entry_time::date = CURRENT_DATE)
	`
	var s models.SummaryReport
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.TotalVehicles,
		&s.TotalRates,
		&s.TotalTickets,
		&s.TotalPayments,
		&s.TotalRevenue,
		&s.UnpaidTickets,
		&s.TodayTickets,
		&s.TodayRevenue,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Trends returns the per-day revenue series for the trailing window.
func (r *ReportRepository) Trends(ctx context.Context, days int) ([]models.TrendPoint, error) {
	if days <= 0 {
		days = 30
	}
	const query = `
		SELECT t.entry_time::date, COUNT(t.id), COALESCE(SUM(p.amount_paid), 0)
		FROM tickets t
		LEFT JOIN payments p ON p.ticket_id = t.id
		WHERE t.entry_time >= CURRENT_DATE - $1 * INTERVAL '1 day'
		GROUP BY t.entry_time::date
		ORDER BY t.entry_time::date
	`
	rows, err := r.db.QueryContext(ctx, query, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []models.TrendPoint
	for rows.Next() {
		var (
			day time.Time
			p   models.TrendPoint
		)
		if err := rows.Scan(&day, &p.Tickets, &p.Revenue); err != nil {
			return nil, err
		}
		p.Date = day.Format("2006-01-02")
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return points, nil
}
