package services

import (
	"encoding/json"
	"strings"

	"lookdehoje/internal/domain"
	"lookdehoje/internal/repos"
)

type HeroService struct {
	Hero *repos.HeroRepo
}

func NewHeroService(hero *repos.HeroRepo) *HeroService {
	return &HeroService{Hero: hero}
}

type ReplaceHeroInput struct {
	IsActive   *bool               `json:"is_active"`
	IntervalMS *int                `json:"interval_ms"`
	Slides     *[]domain.HeroSlide `json:"slides"`
}

// defaultHero is what first-time callers see before the carousel was ever
// configured: active, 5s interval, no slides.
func defaultHero() domain.HeroView {
	return domain.HeroView{
		Settings: domain.HeroSetting{
			ID:         domain.HeroSettingsID,
			IsActive:   true,
			IntervalMS: 5000,
		},
		Slides: []domain.HeroSlide{},
	}
}

// Get never fails on an uninitialized store; it answers with the default view
// so the admin screen can render an empty state and create the row via PUT.
func (s *HeroService) Get() (domain.HeroView, error) {
	h, err := s.Hero.Get()
	if err != nil {
		return domain.HeroView{}, err
	}
	if h == nil {
		return defaultHero(), nil
	}

	slides := []domain.HeroSlide{}
	_ = json.Unmarshal([]byte(h.SlidesJSON), &slides)
	return domain.HeroView{Settings: *h, Slides: slides}, nil
}

// ReplaceAll upserts the singleton and swaps the slide collection wholesale.
// There is no per-slide patch: every call discards the previous slides.
func (s *HeroService) ReplaceAll(in ReplaceHeroInput) (domain.HeroView, error) {
	if in.Slides == nil || in.IsActive == nil || in.IntervalMS == nil {
		return domain.HeroView{}, domain.Invalid("slides, is_active and interval_ms are required")
	}
	if *in.IntervalMS <= 0 {
		return domain.HeroView{}, domain.Invalid("interval_ms must be a positive number of milliseconds")
	}

	slides := make([]domain.HeroSlide, 0, len(*in.Slides))
	for i, sl := range *in.Slides {
		if strings.TrimSpace(sl.ImageURL) == "" {
			return domain.HeroView{}, domain.Invalid("slide %d is missing image_url", i)
		}
		sl.Order = i // order always mirrors array position
		slides = append(slides, sl)
	}

	b, err := json.Marshal(slides)
	if err != nil {
		return domain.HeroView{}, err
	}
	next := domain.HeroSetting{
		ID:         domain.HeroSettingsID,
		IsActive:   *in.IsActive,
		IntervalMS: *in.IntervalMS,
		SlidesJSON: string(b),
	}
	if err := s.Hero.Upsert(next); err != nil {
		return domain.HeroView{}, err
	}
	return s.Get()
}
