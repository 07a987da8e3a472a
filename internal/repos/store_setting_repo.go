package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"lookdehoje/internal/domain"
)

// StoreSettingRepo persists the single store-settings row. The row is
// addressed by the fixed id domain.StoreSettingsID; there is deliberately no
// List or Delete.
type StoreSettingRepo struct{ db *sqlx.DB }

func NewStoreSettingRepo(db *sqlx.DB) *StoreSettingRepo { return &StoreSettingRepo{db: db} }

// Get returns nil (not an error) when the singleton was never written.
func (r *StoreSettingRepo) Get() (*domain.StoreSetting, error) {
	var s domain.StoreSetting
	err := r.db.Get(&s, `
	  SELECT id, store_name,
	         COALESCE(instagram_url,'') AS instagram_url,
	         COALESCE(whatsapp_url,'')  AS whatsapp_url,
	         COALESCE(email,'')         AS email,
	         COALESCE(updated_at,'')    AS updated_at
	  FROM store_settings
	  WHERE id = ?
	`, domain.StoreSettingsID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StoreSettingRepo) Upsert(s domain.StoreSetting) error {
	_, err := r.db.Exec(`
	  INSERT INTO store_settings(id, store_name, instagram_url, whatsapp_url, email, updated_at)
	  VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(id) DO UPDATE SET
	    store_name    = excluded.store_name,
	    instagram_url = excluded.instagram_url,
	    whatsapp_url  = excluded.whatsapp_url,
	    email         = excluded.email,
	    updated_at    = CURRENT_TIMESTAMP
	`, domain.StoreSettingsID, s.StoreName, s.InstagramURL, s.WhatsappURL, s.Email)
	return err
}
