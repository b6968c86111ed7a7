package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"smartpark/internal/models"
	"smartpark/internal/repository"
	"smartpark/internal/service"
)

type stubPaymentRepo struct {
	payment   *models.Payment
	createErr error
	bill      *models.Bill
	billErr   error
}

func (s *stubPaymentRepo) Create(context.Context, int64, float64, string) (*models.Payment, error) {
	return s.payment, s.createErr
}

func (s *stubPaymentRepo) List(context.Context, int) ([]models.PaymentDetail, error) {
	return nil, nil
}

func (s *stubPaymentRepo) Get(context.Context, int64) (*models.PaymentDetail, error) {
	return nil, repository.ErrNotFound
}

func (s *stubPaymentRepo) GetBill(context.Context, int64, models.BillCompany, time.Time) (*models.Bill, error) {
	if s.billErr != nil {
		return nil, s.billErr
	}
	return s.bill, nil
}

func newPaymentsMux(repo *stubPaymentRepo) *http.ServeMux {
	svc := service.NewPaymentsService(repo, nil, models.BillCompany{Name: "SmartPark"}, zap.NewNop())
	payments := NewPaymentsHandlers(svc, zap.NewNop())
	bills := NewBillsHandlers(svc, zap.NewNop())
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/payments", payments.Record)
	mux.HandleFunc("GET /api/payments/{id}", payments.Get)
	mux.HandleFunc("GET /api/bills/{paymentId}", bills.Get)
	mux.HandleFunc("GET /api/bills/{paymentId}/pdf", bills.PDF)
	return mux
}

func TestPaymentsRecordCreated(t *testing.T) {
	repo := &stubPaymentRepo{payment: &models.Payment{ID: 1, TicketID: 5, AmountPaid: 150, Method: "CASH"}}
	rec := httptest.NewRecorder()
	newPaymentsMux(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(`{"ticket_id":5,"amount_paid":150}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestPaymentsRecordErrors(t *testing.T) {
	cases := []struct {
		name   string
		repo   *stubPaymentRepo
		body   string
		status int
	}{
		{"invalid json", &stubPaymentRepo{}, `{`, http.StatusBadRequest},
		{"missing amount", &stubPaymentRepo{}, `{"ticket_id":5}`, http.StatusBadRequest},
		{"ticket not found", &stubPaymentRepo{createErr: repository.ErrTicketNotFound}, `{"ticket_id":5,"amount_paid":10}`, http.StatusNotFound},
		{"ticket still active", &stubPaymentRepo{createErr: repository.ErrTicketNotCompleted}, `{"ticket_id":5,"amount_paid":10}`, http.StatusBadRequest},
		{"second payment", &stubPaymentRepo{createErr: repository.ErrDuplicatePayment}, `{"ticket_id":5,"amount_paid":10}`, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newPaymentsMux(tc.repo).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(tc.body)))
			if rec.Code != tc.status {
				t.Fatalf("status %d, want %d, body %s", rec.Code, tc.status, rec.Body.String())
			}
		})
	}
}

func TestBillsGet(t *testing.T) {
	repo := &stubPaymentRepo{bill: &models.Bill{BillNumber: "BILL-2025-06-01-00001", PaymentID: 1}}
	rec := httptest.NewRecorder()
	newPaymentsMux(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bills/1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "BILL-2025-06-01-00001") {
		t.Fatalf("bill number missing: %s", rec.Body.String())
	}
}

func TestBillsPDF(t *testing.T) {
	repo := &stubPaymentRepo{bill: &models.Bill{
		BillNumber: "BILL-2025-06-01-00001",
		BillDate:   "2025-06-01",
		PaymentID:  1,
		PaidAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}}
	rec := httptest.NewRecorder()
	newPaymentsMux(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bills/1/pdf", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("content type %q", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Fatal("body is not a pdf")
	}
}

func TestBillsGetMissingPayment(t *testing.T) {
	repo := &stubPaymentRepo{billErr: repository.ErrNotFound}
	rec := httptest.NewRecorder()
	newPaymentsMux(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bills/9", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}
