package services

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"lookdehoje/internal/domain"
	"lookdehoje/internal/repos"
)

var validate = validator.New()

type PieceService struct {
	Pieces *repos.PieceRepo
	Cats   *repos.CategoryRepo
}

func NewPieceService(pieces *repos.PieceRepo, cats *repos.CategoryRepo) *PieceService {
	return &PieceService{Pieces: pieces, Cats: cats}
}

type CreatePieceInput struct {
	Name        string   `validate:"required,max=60"`
	Description string   `validate:"-"`
	Price       float64  `validate:"required,gt=0"`
	Available   bool     `validate:"-"`
	CategoryID  string   `validate:"required"`
	ImageURLs   []string `validate:"required,min=1,dive,required"`
}

// UpdatePieceInput distinguishes absent from zero: nil fields are left
// untouched, everything else overwrites.
type UpdatePieceInput struct {
	Name        *string   `validate:"omitempty,max=60"`
	Description *string   `validate:"-"`
	Price       *float64  `validate:"omitempty,gt=0"`
	Available   *bool     `validate:"-"`
	CategoryID  *string   `validate:"omitempty,min=1"`
	ImageURLs   *[]string `validate:"-"`
}

func (s *PieceService) List() ([]domain.Piece, error) {
	return s.Pieces.List()
}

func (s *PieceService) Get(id string) (domain.Piece, error) {
	p, err := s.Pieces.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Piece{}, domain.NotFound("piece", id)
	}
	return p, err
}

// Create requires name, price, category and at least one image URL. The
// availability flag becomes the status enum, and the first image URL is
// mirrored into the single-value image field.
func (s *PieceService) Create(in CreatePieceInput) (domain.Piece, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.ImageURLs = dropBlank(in.ImageURLs)
	if err := validate.Struct(in); err != nil {
		return domain.Piece{}, domain.Invalid("incomplete piece data: %v", err)
	}
	if err := s.categoryMustExist(in.CategoryID); err != nil {
		return domain.Piece{}, err
	}

	p := domain.Piece{
		ID:          uuid.NewString(),
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Status:      statusOf(in.Available),
		ImageURL:    in.ImageURLs[0],
		ImagesJSON:  mustJSON(in.ImageURLs),
	}
	if err := s.Pieces.Insert(p); err != nil {
		// The pre-check races with a concurrent category delete; the FK
		// RESTRICT failure is still the caller's bad category id.
		if isFKViolation(err) {
			return domain.Piece{}, domain.Invalid("category %q does not exist", in.CategoryID)
		}
		return domain.Piece{}, err
	}
	return s.Get(p.ID)
}

// Update applies a partial patch. A supplied image list recomputes the
// mirrored image field; a supplied availability re-derives the status enum.
func (s *PieceService) Update(id string, in UpdatePieceInput) (domain.Piece, error) {
	cur, err := s.Get(id)
	if err != nil {
		return domain.Piece{}, err
	}
	if err := validate.Struct(in); err != nil {
		return domain.Piece{}, domain.Invalid("invalid piece data: %v", err)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return domain.Piece{}, domain.Invalid("piece name cannot be empty")
		}
		cur.Name = name
	}
	if in.Description != nil {
		cur.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		cur.Price = *in.Price
	}
	if in.Available != nil {
		cur.Status = statusOf(*in.Available)
	}
	if in.CategoryID != nil {
		if err := s.categoryMustExist(*in.CategoryID); err != nil {
			return domain.Piece{}, err
		}
		cur.CategoryID = *in.CategoryID
	}
	if in.ImageURLs != nil {
		urls := dropBlank(*in.ImageURLs)
		cur.ImagesJSON = mustJSON(urls)
		if len(urls) > 0 {
			cur.ImageURL = urls[0]
		} else {
			cur.ImageURL = ""
		}
	}

	if err := s.Pieces.Update(cur); err != nil {
		if isFKViolation(err) {
			return domain.Piece{}, domain.Invalid("category %q does not exist", cur.CategoryID)
		}
		return domain.Piece{}, err
	}
	return s.Get(id)
}

// ToggleStatus flips availability based on the status the caller last
// observed. The write is guarded by that observation: if the stored status no
// longer matches, nothing changes and the caller gets a conflict instead of a
// silent lost update.
func (s *PieceService) ToggleStatus(id, observed string) (domain.Piece, error) {
	var next string
	switch observed {
	case domain.StatusAvailable:
		next = domain.StatusRented
	case domain.StatusRented:
		next = domain.StatusAvailable
	default:
		return domain.Piece{}, domain.Invalid("status must be %q or %q", domain.StatusAvailable, domain.StatusRented)
	}

	n, err := s.Pieces.UpdateStatus(id, observed, next)
	if err != nil {
		return domain.Piece{}, err
	}
	if n == 0 {
		exists, err := s.Pieces.Exists(id)
		if err != nil {
			return domain.Piece{}, err
		}
		if !exists {
			return domain.Piece{}, domain.NotFound("piece", id)
		}
		return domain.Piece{}, domain.Conflict("piece status changed since it was last read")
	}
	return s.Get(id)
}

func (s *PieceService) Delete(id string) error {
	n, err := s.Pieces.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFound("piece", id)
	}
	return nil
}

func (s *PieceService) categoryMustExist(id string) error {
	if _, err := s.Cats.Get(id); errors.Is(err, sql.ErrNoRows) {
		return domain.Invalid("category %q does not exist", id)
	} else if err != nil {
		return err
	}
	return nil
}

func isFKViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func statusOf(available bool) string {
	if available {
		return domain.StatusAvailable
	}
	return domain.StatusRented
}

func dropBlank(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if v := strings.TrimSpace(u); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func mustJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}
