package store

import (
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Keys the shopper state is persisted under, one collection per key.
const (
	KeyCart        = "cart_v2"
	KeyWishlist    = "wish_v2"
	KeyCompare     = "compare_v2"
	KeyVehicle     = "vehicle_v2"
	KeyRated       = "rated_v2"
	KeyRatedValues = "rated_values_v2"
)

// Store is a per-profile key-value map with whole-value JSON overwrites.
// Last write wins; there is no merge and no cross-profile sharing.
type Store struct{ db *sqlx.DB }

func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func New(db *sqlx.DB) (*Store, error) {
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS kv(
  profile_id TEXT NOT NULL,
  k          TEXT NOT NULL,
  v          TEXT NOT NULL,
  updated_at TEXT,
  PRIMARY KEY(profile_id, k)
);
CREATE INDEX IF NOT EXISTS idx_kv_profile ON kv(profile_id);
`
	_, err := db.Exec(schema)
	return err
}

// Get unmarshals the stored value for (profileID, key) into out and reports
// whether it succeeded. A missing row or malformed stored value yields false;
// the caller keeps whatever default out already holds. Get never fails.
func (s *Store) Get(profileID, key string, out any) bool {
	var raw string
	if err := s.db.Get(&raw, `SELECT v FROM kv WHERE profile_id = ? AND k = ?`, profileID, key); err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false
	}
	return true
}

// Set serializes v and overwrites the prior value for (profileID, key).
func (s *Store) Set(profileID, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO kv(profile_id, k, v, updated_at)
		VALUES(?,?,?,?)
		ON CONFLICT(profile_id, k) DO UPDATE
		SET v = excluded.v, updated_at = excluded.updated_at
	`, profileID, key, string(raw), time.Now().UTC().Format(time.RFC3339))
	return err
}

func (s *Store) Close() error { return s.db.Close() }
