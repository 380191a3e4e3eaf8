package database

import (
	"context"
	"fmt"
)

// Schema is the remote mirror layout. Every table but landing_submissions
// belongs to one owning user.
const Schema = `
CREATE TABLE IF NOT EXISTS leads (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	first_name TEXT NOT NULL,
	last_name TEXT,
	platform_type TEXT NOT NULL,
	profile_link TEXT,
	email TEXT,
	phone TEXT,
	status TEXT NOT NULL,
	tags TEXT[] NOT NULL DEFAULT '{}',
	notes TEXT NOT NULL DEFAULT '',
	source TEXT NOT NULL,
	bio TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	last_action_at TIMESTAMPTZ NOT NULL,
	message_sent BOOLEAN NOT NULL DEFAULT FALSE,
	message_date TIMESTAMPTZ,
	is_client BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS clients (
	id TEXT PRIMARY KEY REFERENCES leads(id) ON DELETE CASCADE,
	user_id TEXT NOT NULL,
	first_name TEXT NOT NULL,
	last_name TEXT,
	platform_type TEXT NOT NULL,
	profile_link TEXT,
	email TEXT,
	phone TEXT,
	status TEXT NOT NULL,
	tags TEXT[] NOT NULL DEFAULT '{}',
	notes TEXT NOT NULL DEFAULT '',
	source TEXT NOT NULL,
	bio TEXT,
	services TEXT[] NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL,
	converted_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS quotes (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	client_id TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
	service TEXT NOT NULL,
	amount NUMERIC(12,2) NOT NULL,
	currency TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	valid_until TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS timeline_events (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	client_id TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
	type TEXT NOT NULL,
	content TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS ai_profiles (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	name TEXT NOT NULL,
	tone TEXT NOT NULL,
	offer TEXT NOT NULL,
	cta TEXT NOT NULL,
	length TEXT NOT NULL,
	template TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
	user_id TEXT PRIMARY KEY,
	company_name TEXT NOT NULL,
	default_currency TEXT NOT NULL,
	ai_api_key TEXT,
	custom_tags TEXT[] NOT NULL DEFAULT '{}',
	services TEXT[] NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS landing_submissions (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT,
	service_interest TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_leads_user ON leads(user_id);
CREATE INDEX IF NOT EXISTS idx_quotes_client ON quotes(client_id);
CREATE INDEX IF NOT EXISTS idx_timeline_client ON timeline_events(client_id);
`

// CreateTables applies Schema. It is safe to run repeatedly.
func CreateTables(ctx context.Context, db Execer) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}
