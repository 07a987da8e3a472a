package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"lookdehoje/internal/domain"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	// Baseline rows so a fresh install renders a usable storefront
	// (idempotent; safe to run every start).
	if err := seedDefaults(db); err != nil {
		return nil, err
	}

	return db, nil
}

// EnsureSchema creates all tables and indexes. Exported so tests can build
// the real schema against an in-memory database.
func EnsureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_slug_nocase ON categories(LOWER(slug));

-- Pieces
CREATE TABLE IF NOT EXISTS pieces(
  id TEXT PRIMARY KEY,
  category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL CHECK (price >= 0),
  status TEXT NOT NULL CHECK (status IN ('available','rented')),
  image_url TEXT,
  images_json TEXT NOT NULL DEFAULT '[]',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_pieces_category   ON pieces(category_id);
CREATE INDEX IF NOT EXISTS idx_pieces_status     ON pieces(status);
CREATE INDEX IF NOT EXISTS idx_pieces_created_at ON pieces(created_at);

-- Store settings (singleton row, id = 'settings')
CREATE TABLE IF NOT EXISTS store_settings(
  id TEXT PRIMARY KEY,
  store_name TEXT NOT NULL,
  instagram_url TEXT,
  whatsapp_url TEXT,
  email TEXT,
  updated_at TEXT
);

-- Hero settings (singleton row, id = 'hero'); slides live inside the row
CREATE TABLE IF NOT EXISTS hero_settings(
  id TEXT PRIMARY KEY,
  is_active INTEGER NOT NULL DEFAULT 1,
  interval_ms INTEGER NOT NULL CHECK (interval_ms > 0),
  slides_json TEXT NOT NULL DEFAULT '[]',
  updated_at TEXT
);
`
	_, err := db.Exec(schema)
	return err
}

// seedDefaults mirrors the store's launch data: one category, the store
// settings row and an empty hero carousel.
func seedDefaults(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n == 0 {
		log.Println("[seed] inserting starter category")
		if _, err := db.Exec(`INSERT INTO categories(id, name, slug, is_active)
			VALUES ('vestidos', 'Vestidos', 'vestidos', 1)`); err != nil {
			return err
		}
	}

	if _, err := db.Exec(`
		INSERT INTO store_settings(id, store_name, email, whatsapp_url)
		SELECT ?, 'Looks de Hoje Brechó', 'contato@looksdehoje.com', 'https://wa.me/5511999999999'
		WHERE NOT EXISTS (SELECT 1 FROM store_settings WHERE id = ?)
	`, domain.StoreSettingsID, domain.StoreSettingsID); err != nil {
		return err
	}

	_, err := db.Exec(`
		INSERT INTO hero_settings(id, is_active, interval_ms, slides_json)
		SELECT ?, 1, 5000, '[]'
		WHERE NOT EXISTS (SELECT 1 FROM hero_settings WHERE id = ?)
	`, domain.HeroSettingsID, domain.HeroSettingsID)
	return err
}
