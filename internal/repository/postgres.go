package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
)

// PostgresRepository handles database operations
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// NewPostgresRepositoryFromDB wraps an existing connection.
func NewPostgresRepositoryFromDB(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the tables if they are missing
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

const bookingColumns = `
	id, status, service_state, city, event_date, event_time, package,
	num_adults, num_children, addons, addons_total, travel_fee_status,
	travel_fee_amount, base_cents, subtotal_cents, total_cents,
	contact_name, contact_email, contact_phone, special_requests,
	payment_intent_id, created_at, updated_at`

// CreateBooking inserts a new booking
func (r *PostgresRepository) CreateBooking(ctx context.Context, b *model.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES (
			:id, :status, :service_state, :city, :event_date, :event_time, :package,
			:num_adults, :num_children, :addons, :addons_total, :travel_fee_status,
			:travel_fee_amount, :base_cents, :subtotal_cents, :total_cents,
			:contact_name, :contact_email, :contact_phone, :special_requests,
			:payment_intent_id, :created_at, :updated_at
		)`
	if _, err := r.db.NamedExecContext(ctx, query, b); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// GetBooking retrieves a single booking by its ID
func (r *PostgresRepository) GetBooking(ctx context.Context, id string) (*model.Booking, error) {
	var b model.Booking
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	if err := r.db.GetContext(ctx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &b, nil
}

// ListBookings returns bookings newest first, optionally filtered by status
func (r *PostgresRepository) ListBookings(ctx context.Context, filter model.BookingFilter) ([]model.Booking, error) {
	args := []interface{}{}
	where := ""
	if filter.Status != "" {
		where = "WHERE status = $1"
		args = append(args, filter.Status)
	}
	query := fmt.Sprintf(`
		SELECT %s FROM bookings %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, bookingColumns, where, len(args)+1, len(args)+2)
	args = append(args, clampLimit(filter.Limit), max(filter.Offset, 0))

	bookings := []model.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// UpdateBooking applies a status or payment change inside a transaction
func (r *PostgresRepository) UpdateBooking(ctx context.Context, id string, apply func(b *model.Booking) error) (*model.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var b model.Booking
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	if err := tx.GetContext(ctx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock booking: %w", err)
	}

	if err := apply(&b); err != nil {
		return nil, err
	}
	b.UpdatedAt = time.Now().UTC()

	update := `UPDATE bookings SET status = $2, payment_intent_id = $3, updated_at = $4 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, update, b.ID, b.Status, b.PaymentIntentID, b.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrPaymentIntentInUse
		}
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &b, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// CreateInquiry stores a contact form submission
func (r *PostgresRepository) CreateInquiry(ctx context.Context, inq *model.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, name, email, phone, subject, message, created_at)
		VALUES (:id, :name, :email, :phone, :subject, :message, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, inq); err != nil {
		return fmt.Errorf("failed to insert inquiry: %w", err)
	}
	return nil
}

// ListInquiries returns inquiries newest first
func (r *PostgresRepository) ListInquiries(ctx context.Context, limit, offset int) ([]model.Inquiry, error) {
	query := `
		SELECT id, name, email, phone, subject, message, created_at
		FROM inquiries
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	inquiries := []model.Inquiry{}
	if err := r.db.SelectContext(ctx, &inquiries, query, clampLimit(limit), max(offset, 0)); err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	return inquiries, nil
}

// LogChat records a chat exchange
func (r *PostgresRepository) LogChat(ctx context.Context, entry *model.ChatLog) error {
	query := `
		INSERT INTO chat_logs (id, message, intent, confidence, source, created_at)
		VALUES (:id, :message, :intent, :confidence, :source, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("failed to log chat: %w", err)
	}
	return nil
}

// Stats aggregates dashboard counters
func (r *PostgresRepository) Stats(ctx context.Context) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{BookingsByStatus: map[string]int{}}

	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
		Cents  int64  `db:"cents"`
	}
	query := `SELECT status, COUNT(*) AS count, COALESCE(SUM(total_cents), 0) AS cents FROM bookings GROUP BY status`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	for _, row := range rows {
		stats.BookingsByStatus[row.Status] = row.Count
		stats.TotalBookings += row.Count
		if isRevenueStatus(row.Status) {
			stats.ConfirmedRevenueCents += row.Cents
		}
	}

	if err := r.db.GetContext(ctx, &stats.Inquiries, `SELECT COUNT(*) FROM inquiries`); err != nil {
		return nil, fmt.Errorf("failed to count inquiries: %w", err)
	}
	if err := r.db.GetContext(ctx, &stats.ChatMessages, `SELECT COUNT(*) FROM chat_logs`); err != nil {
		return nil, fmt.Errorf("failed to count chat logs: %w", err)
	}

	return stats, nil
}
