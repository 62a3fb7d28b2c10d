package repository

const schema = `
CREATE TABLE IF NOT EXISTS bookings (
	id                TEXT PRIMARY KEY,
	status            TEXT NOT NULL DEFAULT 'pending',
	service_state     TEXT NOT NULL,
	city              TEXT NOT NULL,
	event_date        TEXT NOT NULL,
	event_time        TEXT NOT NULL,
	package           TEXT NOT NULL,
	num_adults        INTEGER NOT NULL DEFAULT 0,
	num_children      INTEGER NOT NULL DEFAULT 0,
	addons            JSONB NOT NULL DEFAULT '[]',
	addons_total      NUMERIC(10,2) NOT NULL DEFAULT 0,
	travel_fee_status TEXT NOT NULL DEFAULT 'included',
	travel_fee_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
	base_cents        BIGINT NOT NULL DEFAULT 0,
	subtotal_cents    BIGINT NOT NULL DEFAULT 0,
	total_cents       BIGINT NOT NULL DEFAULT 0,
	contact_name      TEXT NOT NULL,
	contact_email     TEXT NOT NULL,
	contact_phone     TEXT NOT NULL,
	special_requests  TEXT NOT NULL DEFAULT '',
	payment_intent_id TEXT,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings (status, created_at DESC);
CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_payment_intent ON bookings (payment_intent_id)
	WHERE payment_intent_id IS NOT NULL;

CREATE TABLE IF NOT EXISTS inquiries (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	phone      TEXT NOT NULL DEFAULT '',
	subject    TEXT NOT NULL DEFAULT '',
	message    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS chat_logs (
	id         TEXT PRIMARY KEY,
	message    TEXT NOT NULL,
	intent     TEXT NOT NULL,
	confidence DOUBLE PRECISION NOT NULL,
	source     TEXT NOT NULL DEFAULT 'rules',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
