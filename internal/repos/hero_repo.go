package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"lookdehoje/internal/domain"
)

// HeroRepo persists the single hero-carousel row (fixed id
// domain.HeroSettingsID). Slides live inside the row as a JSON value
// collection and are replaced as a whole on every upsert.
type HeroRepo struct{ db *sqlx.DB }

func NewHeroRepo(db *sqlx.DB) *HeroRepo { return &HeroRepo{db: db} }

// Get returns nil when the singleton was never written.
func (r *HeroRepo) Get() (*domain.HeroSetting, error) {
	var h domain.HeroSetting
	err := r.db.Get(&h, `
	  SELECT id, is_active, interval_ms, slides_json, COALESCE(updated_at,'') AS updated_at
	  FROM hero_settings
	  WHERE id = ?
	`, domain.HeroSettingsID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HeroRepo) Upsert(h domain.HeroSetting) error {
	_, err := r.db.Exec(`
	  INSERT INTO hero_settings(id, is_active, interval_ms, slides_json, updated_at)
	  VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(id) DO UPDATE SET
	    is_active   = excluded.is_active,
	    interval_ms = excluded.interval_ms,
	    slides_json = excluded.slides_json,
	    updated_at  = CURRENT_TIMESTAMP
	`, domain.HeroSettingsID, h.IsActive, h.IntervalMS, h.SlidesJSON)
	return err
}
