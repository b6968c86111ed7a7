package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"smartpark/internal/metrics"
	"smartpark/internal/models"
	"smartpark/internal/ws"
)

// PaymentRepository defines the storage contract used by PaymentsService.
type PaymentRepository interface {
	Create(ctx context.Context, ticketID int64, amount float64, method string) (*models.Payment, error)
	List(ctx context.Context, limit int) ([]models.PaymentDetail, error)
	Get(ctx context.Context, id int64) (*models.PaymentDetail, error)
	GetBill(ctx context.Context, paymentID int64, company models.BillCompany, now time.Time) (*models.Bill, error)
}

// PaymentsService records payments against completed tickets.
type PaymentsService struct {
	repo    PaymentRepository
	feed    EventPublisher
	company models.BillCompany
	logger  *zap.Logger
}

// NewPaymentsService builds service.
func NewPaymentsService(repo PaymentRepository, feed EventPublisher, company models.BillCompany, logger *zap.Logger) *PaymentsService {
	return &PaymentsService{
		repo:    repo,
		feed:    feed,
		company: company,
		logger:  logger,
	}
}

// RecordPaymentInput is the create-payment request payload.
type RecordPaymentInput struct {
	TicketID   int64
	AmountPaid float64
	Method     string
}

// Record creates the single payment for a completed ticket.
func (s *PaymentsService) Record(ctx context.Context, input RecordPaymentInput) (*models.Payment, error) {
	if input.TicketID == 0 {
		return nil, fmt.Errorf("%w: ticket id required", ErrValidation)
	}
	if input.AmountPaid <= 0 {
		return nil, fmt.Errorf("%w: amount paid must be positive", ErrValidation)
	}
	method := strings.ToUpper(strings.TrimSpace(input.Method))
	if method == "" {
		method = models.PaymentMethodCash
	}

	payment, err := s.repo.Create(ctx, input.TicketID, input.AmountPaid, method)
	if err != nil {
		return nil, err
	}

	metrics.PaymentRecorded(payment.AmountPaid)
	if s.feed != nil {
		s.feed.Publish(ws.EventPaymentRecorded, payment)
	}

	s.logger.Info("payment recorded",
		zap.Int64("payment_id", payment.ID),
		zap.Int64("ticket_id", payment.TicketID),
		zap.Float64("amount_paid", payment.AmountPaid),
		zap.String("method", payment.Method),
	)
	return payment, nil
}

// List returns recent payments with joined detail.
func (s *PaymentsService) List(ctx context.Context, limit int) ([]models.PaymentDetail, error) {
	return s.repo.List(ctx, limit)
}

// Get returns one payment with joined detail.
func (s *PaymentsService) Get(ctx context.Context, id int64) (*models.PaymentDetail, error) {
	return s.repo.Get(ctx, id)
}

// Bill composes the printable bill for a payment.
func (s *PaymentsService) Bill(ctx context.Context, paymentID int64) (*models.Bill, error) {
	if paymentID == 0 {
		return nil, fmt.Errorf("%w: payment id required", ErrValidation)
	}
	return s.repo.GetBill(ctx, paymentID, s.company, time.Now().UTC())
}
