package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
)

// MemoryRepository keeps everything in process memory. It is used when no
// database is reachable and in tests.
type MemoryRepository struct {
	mu        sync.RWMutex
	bookings  map[string]model.Booking
	inquiries []model.Inquiry
	chatLogs  []model.ChatLog
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{bookings: make(map[string]model.Booking)}
}

func (r *MemoryRepository) CreateBooking(_ context.Context, b *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID] = copyBooking(*b)
	return nil
}

func (r *MemoryRepository) GetBooking(_ context.Context, id string) (*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	b = copyBooking(b)
	return &b, nil
}

func (r *MemoryRepository) ListBookings(_ context.Context, filter model.BookingFilter) ([]model.Booking, error) {
	r.mu.RLock()
	out := make([]model.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if filter.Status == "" || b.Status == filter.Status {
			out = append(out, copyBooking(b))
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return page(out, filter.Limit, filter.Offset), nil
}

func (r *MemoryRepository) UpdateBooking(_ context.Context, id string, apply func(b *model.Booking) error) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	b := copyBooking(stored)
	if err := apply(&b); err != nil {
		return nil, err
	}
	if b.PaymentIntentID != nil && r.intentUsedElsewhere(id, *b.PaymentIntentID) {
		return nil, ErrPaymentIntentInUse
	}

	// only status and payment intent are mutable
	stored.Status = b.Status
	stored.PaymentIntentID = b.PaymentIntentID
	stored.UpdatedAt = time.Now().UTC()
	r.bookings[id] = stored

	out := copyBooking(stored)
	return &out, nil
}

// intentUsedElsewhere must be called with r.mu held.
func (r *MemoryRepository) intentUsedElsewhere(id, intentID string) bool {
	for otherID, other := range r.bookings {
		if otherID != id && other.PaymentIntentID != nil && *other.PaymentIntentID == intentID {
			return true
		}
	}
	return false
}

func (r *MemoryRepository) CreateInquiry(_ context.Context, inq *model.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inquiries = append(r.inquiries, *inq)
	return nil
}

func (r *MemoryRepository) ListInquiries(_ context.Context, limit, offset int) ([]model.Inquiry, error) {
	r.mu.RLock()
	out := make([]model.Inquiry, len(r.inquiries))
	// newest first
	for i, inq := range r.inquiries {
		out[len(r.inquiries)-1-i] = inq
	}
	r.mu.RUnlock()
	return page(out, limit, offset), nil
}

func (r *MemoryRepository) LogChat(_ context.Context, entry *model.ChatLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chatLogs = append(r.chatLogs, *entry)
	return nil
}

// ChatLogs returns a copy of the recorded chat logs.
func (r *MemoryRepository) ChatLogs() []model.ChatLog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.ChatLog(nil), r.chatLogs...)
}

func (r *MemoryRepository) Stats(_ context.Context) (*model.DashboardStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &model.DashboardStats{
		TotalBookings:    len(r.bookings),
		BookingsByStatus: map[string]int{},
		Inquiries:        len(r.inquiries),
		ChatMessages:     len(r.chatLogs),
	}
	for _, b := range r.bookings {
		stats.BookingsByStatus[b.Status]++
		if isRevenueStatus(b.Status) {
			stats.ConfirmedRevenueCents += b.TotalCents
		}
	}
	return stats, nil
}

func (r *MemoryRepository) Close() error {
	return nil
}

func copyBooking(b model.Booking) model.Booking {
	if b.Addons != nil {
		b.Addons = append(model.StringList(nil), b.Addons...)
	}
	if b.PaymentIntentID != nil {
		id := *b.PaymentIntentID
		b.PaymentIntentID = &id
	}
	return b
}

func page[T any](items []T, limit, offset int) []T {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}
