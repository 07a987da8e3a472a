package services

import (
	"strings"

	"lookdehoje/internal/domain"
	"lookdehoje/internal/repos"
)

type StoreService struct {
	Settings *repos.StoreSettingRepo
}

func NewStoreService(settings *repos.StoreSettingRepo) *StoreService {
	return &StoreService{Settings: settings}
}

type UpdateStoreInput struct {
	StoreName    string  `json:"store_name"`
	InstagramURL *string `json:"instagram_url"`
	WhatsappURL  *string `json:"whatsapp_url"`
	Email        *string `json:"email"`
}

// Get returns nil when the store was never configured; callers render that as
// an empty object, not an error.
func (s *StoreService) Get() (*domain.StoreSetting, error) {
	return s.Settings.Get()
}

// Update upserts the singleton row. Omitted optional fields keep their stored
// value on the update branch and start empty on first create.
func (s *StoreService) Update(in UpdateStoreInput) (*domain.StoreSetting, error) {
	name := strings.TrimSpace(in.StoreName)
	if name == "" {
		return nil, domain.Invalid("store name is required")
	}

	cur, err := s.Settings.Get()
	if err != nil {
		return nil, err
	}
	next := domain.StoreSetting{ID: domain.StoreSettingsID, StoreName: name}
	if cur != nil {
		next.InstagramURL = cur.InstagramURL
		next.WhatsappURL = cur.WhatsappURL
		next.Email = cur.Email
	}
	if in.InstagramURL != nil {
		next.InstagramURL = strings.TrimSpace(*in.InstagramURL)
	}
	if in.WhatsappURL != nil {
		next.WhatsappURL = strings.TrimSpace(*in.WhatsappURL)
	}
	if in.Email != nil {
		next.Email = strings.TrimSpace(*in.Email)
	}

	if err := s.Settings.Upsert(next); err != nil {
		return nil, err
	}
	return s.Settings.Get()
}
