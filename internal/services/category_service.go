package services

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"lookdehoje/internal/domain"
	"lookdehoje/internal/repos"
	"lookdehoje/internal/slug"
)

type CategoryService struct {
	Cats *repos.CategoryRepo
}

func NewCategoryService(cats *repos.CategoryRepo) *CategoryService {
	return &CategoryService{Cats: cats}
}

type UpdateCategoryInput struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

func (s *CategoryService) List() ([]domain.Category, error) {
	return s.Cats.List()
}

// Create computes the slug server-side; a client-supplied slug is never read.
// The slug pre-check is advisory, the unique index on categories(slug) is the
// backstop against concurrent creates.
func (s *CategoryService) Create(name string, isActive *bool) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, domain.Invalid("category name is required")
	}

	sl := slug.Make(name)
	if sl == "" {
		return domain.Category{}, domain.Invalid("category name %q does not produce a usable slug", name)
	}
	if _, err := s.Cats.GetBySlug(sl); err == nil {
		return domain.Category{}, domain.Conflict("a category with slug %q already exists", sl)
	} else if !errors.Is(err, sql.ErrNoRows) {
		return domain.Category{}, err
	}

	c := domain.Category{
		ID:       uuid.NewString(),
		Name:     name,
		Slug:     sl,
		IsActive: isActive == nil || *isActive,
	}
	if err := s.Cats.Insert(c); err != nil {
		return domain.Category{}, err
	}
	return s.Cats.Get(c.ID)
}

// Update applies only the supplied fields. A new name recomputes the slug and
// conflicts only against a different category.
func (s *CategoryService) Update(id string, in UpdateCategoryInput) (domain.Category, error) {
	cur, err := s.Cats.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Category{}, domain.NotFound("category", id)
	}
	if err != nil {
		return domain.Category{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return domain.Category{}, domain.Invalid("category name cannot be empty")
		}
		sl := slug.Make(name)
		if sl == "" {
			return domain.Category{}, domain.Invalid("category name %q does not produce a usable slug", name)
		}
		if sl != cur.Slug {
			other, err := s.Cats.GetBySlug(sl)
			if err == nil && other.ID != id {
				return domain.Category{}, domain.Conflict("a category with slug %q already exists", sl)
			}
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				return domain.Category{}, err
			}
		}
		cur.Name = name
		cur.Slug = sl
	}
	if in.IsActive != nil {
		cur.IsActive = *in.IsActive
	}

	if err := s.Cats.Update(cur); err != nil {
		return domain.Category{}, err
	}
	return s.Cats.Get(id)
}

// Delete refuses to remove a category that pieces still reference. The
// pre-check gives the friendly error; the FK RESTRICT is the backstop.
func (s *CategoryService) Delete(id string) error {
	if _, err := s.Cats.Get(id); errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound("category", id)
	} else if err != nil {
		return err
	}

	n, err := s.Cats.CountPieces(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.Conflict("category still has %d pieces and cannot be deleted", n)
	}
	return s.Cats.Delete(id)
}
