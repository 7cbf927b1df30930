package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// schema contains the SQL statements to set up the database. They run on
// every startup; all statements are idempotent.
// IMPORTANT: trips must be created before its dependents because of the
// foreign key constraints.
const schema = `
CREATE TABLE IF NOT EXISTS trips (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    destination TEXT NOT NULL,
    departure_date TEXT NOT NULL,
    student_price INTEGER NOT NULL,
    expected_students INTEGER NOT NULL,
    chaperone_count INTEGER NOT NULL DEFAULT 0,
    nights INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS participants (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    trip_id INTEGER NOT NULL,
    kind TEXT NOT NULL DEFAULT 'student',
    last_name TEXT NOT NULL,
    first_name TEXT NOT NULL,
    class_name TEXT NOT NULL DEFAULT '',
    role TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'enrolled',
    refund_validated INTEGER NOT NULL DEFAULT 0,
    commitment_form INTEGER NOT NULL DEFAULT 0,
    final_list INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (trip_id) REFERENCES trips(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS debts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    participant_id INTEGER NOT NULL UNIQUE,
    initial_amount INTEGER NOT NULL,
    discount_amount INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (participant_id) REFERENCES participants(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS payment_modes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    label TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS payments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    debt_id INTEGER NOT NULL,
    mode_id INTEGER NOT NULL,
    amount INTEGER NOT NULL,
    paid_on TEXT NOT NULL,
    reference TEXT NOT NULL DEFAULT '',
    FOREIGN KEY (debt_id) REFERENCES debts(id) ON DELETE CASCADE,
    FOREIGN KEY (mode_id) REFERENCES payment_modes(id)
);

CREATE TABLE IF NOT EXISTS social_fund_requests (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    participant_id INTEGER NOT NULL,
    requested_amount INTEGER NOT NULL,
    granted_amount INTEGER NOT NULL DEFAULT 0,
    decided_on TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'pending',
    processed INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (participant_id) REFERENCES participants(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS budget_categories (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS budget_items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    trip_id INTEGER NOT NULL,
    kind TEXT NOT NULL,
    category_id INTEGER NOT NULL,
    description TEXT NOT NULL,
    amount INTEGER NOT NULL,
    FOREIGN KEY (trip_id) REFERENCES trips(id) ON DELETE CASCADE,
    FOREIGN KEY (category_id) REFERENCES budget_categories(id)
);

CREATE TABLE IF NOT EXISTS documents (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    trip_id INTEGER NOT NULL,
    file_name TEXT NOT NULL,
    stored_path TEXT NOT NULL,
    uploaded_on TEXT NOT NULL,
    FOREIGN KEY (trip_id) REFERENCES trips(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS institution (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    name TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    authorizer_name TEXT NOT NULL DEFAULT '',
    secretary_name TEXT NOT NULL DEFAULT '',
    signature_city TEXT NOT NULL DEFAULT '',
    certificate_text TEXT NOT NULL DEFAULT '',
    logo_path TEXT NOT NULL DEFAULT '',
    authorizer_image TEXT NOT NULL DEFAULT '',
    secretary_image TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_participants_trip_id ON participants(trip_id);
CREATE INDEX IF NOT EXISTS idx_payments_debt_id ON payments(debt_id);
CREATE INDEX IF NOT EXISTS idx_social_fund_participant_id ON social_fund_requests(participant_id);
CREATE INDEX IF NOT EXISTS idx_budget_items_trip_id ON budget_items(trip_id);
CREATE INDEX IF NOT EXISTS idx_documents_trip_id ON documents(trip_id);

INSERT OR IGNORE INTO institution (id, name) VALUES (1, 'Nom du Collège');
INSERT OR IGNORE INTO payment_modes (label) VALUES ('Espèces'), ('Chèque'), ('Virement');
INSERT OR IGNORE INTO budget_categories (name) VALUES ('Transport'), ('Hébergement'), ('Activités'), ('Subventions');
`

// tables in dependency order, children first, for Reset.
var tables = []string{
	"payments",
	"social_fund_requests",
	"debts",
	"participants",
	"budget_items",
	"documents",
	"trips",
	"payment_modes",
	"budget_categories",
	"institution",
}

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

// Reset drops every table and recreates the schema from scratch.
func (s *Store) Reset(ctx context.Context) error {
	for _, t := range tables {
		if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+t); err != nil {
			return fmt.Errorf("failed to drop %s: %w", t, err)
		}
	}
	if err := runMigrations(s.db); err != nil {
		return fmt.Errorf("failed to recreate schema: %w", err)
	}
	return nil
}
