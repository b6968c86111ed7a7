package models

// MethodTotal is a payment sum grouped by method.
type MethodTotal struct {
	Method string  `json:"method"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// RateTotal is a fee sum grouped by rate name.
type RateTotal struct {
	RateName string  `json:"rate_name"`
	Tickets  int     `json:"tickets"`
	Amount   float64 `json:"amount"`
}

// DailyReport summarizes one day. Recomputed on every request.
type DailyReport struct {
	Date             string        `json:"date"`
	TotalTickets     int           `json:"total_tickets"`
	CompletedTickets int           `json:"completed_tickets"`
	ActiveTickets    int           `json:"active_tickets"`
	TotalFees        float64       `json:"total_fees"`
	TotalPayments    float64       `json:"total_payments"`
	ByMethod         []MethodTotal `json:"by_method"`
	ByRate           []RateTotal   `json:"by_rate"`
}

// DailyRevenue is one day inside a monthly breakdown.
type DailyRevenue struct {
	Date          string  `json:"date"`
	TotalTickets  int     `json:"total_tickets"`
	PaidTickets   int     `json:"paid_tickets"`
	UnpaidTickets int     `json:"unpaid_tickets"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// MonthlySummary totals a month; derived from the daily breakdown.
type MonthlySummary struct {
	TotalTickets        int     `json:"total_tickets"`
	PaidTickets         int     `json:"paid_tickets"`
	UnpaidTickets       int     `json:"unpaid_tickets"`
	TotalRevenue        float64 `json:"total_revenue"`
	AverageDailyRevenue float64 `json:"average_daily_revenue"`
}

// MonthlyReport is the per-day breakdown plus totals for a month.
type MonthlyReport struct {
	Year           int            `json:"year"`
	Month          int            `json:"month"`
	Summary        MonthlySummary `json:"summary"`
	DailyBreakdown []DailyRevenue `json:"daily_breakdown"`
}

// SummaryReport is the lifetime overview shown on the dashboard.
type SummaryReport struct {
	TotalVehicles  int             `json:"total_vehicles"`
	TotalRates     int             `json:"total_rates"`
	TotalTickets   int             `json:"total_tickets"`
	TotalPayments  int             `json:"total_payments"`
	TotalRevenue   float64         `json:"total_revenue"`
	UnpaidTickets  int             `json:"unpaid_tickets"`
	TodayTickets   int             `json:"today_tickets"`
	TodayRevenue   float64         `json:"today_revenue"`
	RecentTickets  []TicketDetail  `json:"recent_tickets"`
}

// TrendPoint is one day in the revenue trends series.
type TrendPoint struct {
	Date    string  `json:"date"`
	Tickets int     `json:"tickets"`
	Revenue float64 `json:"revenue"`
}
