package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"smartpark/internal/billing"
	"smartpark/internal/metrics"
	"smartpark/internal/models"
	"smartpark/internal/redisstore"
	"smartpark/internal/ws"
)

// TicketRepository defines the storage contract used by TicketsService.
type TicketRepository interface {
	Open(ctx context.Context, plate string, rateID int64, entryTime time.Time) (*models.Ticket, error)
	Complete(ctx context.Context, id int64, exitTime time.Time, quantity float64, policy billing.NegativeDurationPolicy) (*models.Ticket, error)
	List(ctx context.Context, limit int) ([]models.TicketDetail, error)
	ListActive(ctx context.Context, limit int) ([]models.TicketDetail, error)
	Get(ctx context.Context, id int64) (*models.TicketDetail, error)
}

// ActiveTicketStore mirrors open tickets into redis; failures are logged,
// never fatal.
type ActiveTicketStore interface {
	Save(ctx context.Context, ticket redisstore.ActiveTicket) error
	Delete(ctx context.Context, ticketID int64) error
}

// EventPublisher pushes domain events to the live feed.
type EventPublisher interface {
	Publish(eventType string, payload interface{})
}

// TicketsService owns the ticket lifecycle.
type TicketsService struct {
	repo        TicketRepository
	activeStore ActiveTicketStore
	feed        EventPublisher
	policy      billing.NegativeDurationPolicy
	logger      *zap.Logger
}

// NewTicketsService builds service.
func NewTicketsService(
	repo TicketRepository,
	activeStore ActiveTicketStore,
	feed EventPublisher,
	policy billing.NegativeDurationPolicy,
	logger *zap.Logger,
) *TicketsService {
	if !policy.Valid() {
		policy = billing.ClampNegative
	}
	return &TicketsService{
		repo:        repo,
		activeStore: activeStore,
		feed:        feed,
		policy:      policy,
		logger:      logger,
	}
}

// OpenTicketInput is the create-ticket request payload.
type OpenTicketInput struct {
	Plate  string
	RateID int64
}

// Open starts a new ACTIVE ticket for a known vehicle.
func (s *TicketsService) Open(ctx context.Context, input OpenTicketInput) (*models.Ticket, error) {
	plate := strings.TrimSpace(input.Plate)
	if plate == "" {
		return nil, fmt.Errorf("%w: plate required", ErrValidation)
	}
	if input.RateID == 0 {
		return nil, fmt.Errorf("%w: rate id required", ErrValidation)
	}

	ticket, err := s.repo.Open(ctx, plate, input.RateID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	metrics.TicketOpened()
	if s.activeStore != nil {
		if cacheErr := s.activeStore.Save(ctx, redisstore.ActiveTicket{
			TicketID:  ticket.ID,
			Plate:     plate,
			RateID:    ticket.RateID,
			EntryTime: ticket.EntryTime,
		}); cacheErr != nil {
			s.logger.Warn("failed to cache active ticket", zap.Int64("ticket_id", ticket.ID), zap.Error(cacheErr))
		}
	}
	if s.feed != nil {
		s.feed.Publish(ws.EventTicketOpened, ticket)
	}

	s.logger.Info("ticket opened",
		zap.Int64("ticket_id", ticket.ID),
		zap.String("plate", plate),
		zap.Int64("rate_id", ticket.RateID),
	)
	return ticket, nil
}

// Complete closes an ACTIVE ticket and returns it with duration and fee set.
// Quantity is only meaningful for per-liter rates.
func (s *TicketsService) Complete(ctx context.Context, id int64, quantity float64) (*models.Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: ticket id required", ErrValidation)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}

	ticket, err := s.repo.Complete(ctx, id, time.Now().UTC(), quantity, s.policy)
	if err != nil {
		return nil, err
	}

	metrics.TicketCompleted()
	if s.activeStore != nil {
		if cacheErr := s.activeStore.Delete(ctx, ticket.ID); cacheErr != nil {
			s.logger.Warn("failed to evict active ticket cache", zap.Int64("ticket_id", ticket.ID), zap.Error(cacheErr))
		}
	}
	if s.feed != nil {
		s.feed.Publish(ws.EventTicketCompleted, ticket)
	}

	s.logger.Info("ticket completed",
		zap.Int64("ticket_id", ticket.ID),
		zap.Int("duration_hours", ticket.DurationHours),
		zap.Float64("total_fee", ticket.TotalFee),
	)
	return ticket, nil
}

// List returns recent tickets with joined detail.
func (s *TicketsService) List(ctx context.Context, limit int) ([]models.TicketDetail, error) {
	return s.repo.List(ctx, limit)
}

// ListActive returns currently open tickets.
func (s *TicketsService) ListActive(ctx context.Context, limit int) ([]models.TicketDetail, error) {
	return s.repo.ListActive(ctx, limit)
}

// Get returns one ticket with joined detail.
func (s *TicketsService) Get(ctx context.Context, id int64) (*models.TicketDetail, error) {
	return s.repo.Get(ctx, id)
}
