package repos

import (
	"github.com/jmoiron/sqlx"

	"lookdehoje/internal/domain"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	out := []domain.Category{}
	err := r.db.Select(&out, `
	  SELECT id, name, slug, is_active, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM categories
	  ORDER BY name
	`)
	return out, err
}

func (r *CategoryRepo) Get(id string) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `
	  SELECT id, name, slug, is_active, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM categories
	  WHERE id = ?
	`, id)
	return c, err
}

// GetBySlug matches case-insensitively, same as the unique index.
func (r *CategoryRepo) GetBySlug(slug string) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `
	  SELECT id, name, slug, is_active, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM categories
	  WHERE LOWER(slug) = LOWER(?)
	`, slug)
	return c, err
}

func (r *CategoryRepo) Insert(c domain.Category) error {
	_, err := r.db.Exec(`
	  INSERT INTO categories(id, name, slug, is_active)
	  VALUES (?, ?, ?, ?)
	`, c.ID, c.Name, c.Slug, c.IsActive)
	return err
}

func (r *CategoryRepo) Update(c domain.Category) error {
	_, err := r.db.Exec(`
	  UPDATE categories
	  SET name = ?, slug = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ?
	`, c.Name, c.Slug, c.IsActive, c.ID)
	return err
}

func (r *CategoryRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id = ?`, id)
	return err
}

// CountPieces reports how many pieces still reference the category.
func (r *CategoryRepo) CountPieces(categoryID string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM pieces WHERE category_id = ?`, categoryID)
	return n, err
}
