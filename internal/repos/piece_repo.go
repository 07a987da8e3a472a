package repos

import (
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"lookdehoje/internal/domain"
)

type PieceRepo struct{ db *sqlx.DB }

func NewPieceRepo(db *sqlx.DB) *PieceRepo { return &PieceRepo{db: db} }

// pieceRow carries the joined category columns alongside the piece.
type pieceRow struct {
	domain.Piece
	CatName      string `db:"cat_name"`
	CatSlug      string `db:"cat_slug"`
	CatIsActive  bool   `db:"cat_is_active"`
	CatCreatedAt string `db:"cat_created_at"`
}

const pieceSelect = `
  SELECT
    p.id, p.category_id, p.name, COALESCE(p.description,'') AS description,
    p.price, p.status, COALESCE(p.image_url,'') AS image_url, p.images_json,
    p.created_at, COALESCE(p.updated_at,'') AS updated_at,
    c.name AS cat_name, c.slug AS cat_slug, c.is_active AS cat_is_active,
    c.created_at AS cat_created_at
  FROM pieces p
  JOIN categories c ON c.id = p.category_id
`

func (row pieceRow) piece() domain.Piece {
	p := row.Piece
	p.ImageURLs = []string{}
	_ = json.Unmarshal([]byte(p.ImagesJSON), &p.ImageURLs)
	p.Category = &domain.Category{
		ID:        p.CategoryID,
		Name:      row.CatName,
		Slug:      row.CatSlug,
		IsActive:  row.CatIsActive,
		CreatedAt: row.CatCreatedAt,
	}
	return p
}

// List returns every piece joined with its category, newest first. rowid
// breaks ties between pieces created within the same timestamp second.
func (r *PieceRepo) List() ([]domain.Piece, error) {
	var rows []pieceRow
	err := r.db.Select(&rows, pieceSelect+` ORDER BY p.created_at DESC, p.rowid DESC`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Piece, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.piece())
	}
	return out, nil
}

func (r *PieceRepo) Get(id string) (domain.Piece, error) {
	var row pieceRow
	if err := r.db.Get(&row, pieceSelect+` WHERE p.id = ?`, id); err != nil {
		return domain.Piece{}, err
	}
	return row.piece(), nil
}

func (r *PieceRepo) Insert(p domain.Piece) error {
	_, err := r.db.Exec(`
	  INSERT INTO pieces(id, category_id, name, description, price, status, image_url, images_json)
	  VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.CategoryID, p.Name, p.Description, p.Price, p.Status, p.ImageURL, p.ImagesJSON)
	return err
}

func (r *PieceRepo) Update(p domain.Piece) error {
	_, err := r.db.Exec(`
	  UPDATE pieces
	  SET category_id = ?, name = ?, description = ?, price = ?, status = ?,
	      image_url = ?, images_json = ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ?
	`, p.CategoryID, p.Name, p.Description, p.Price, p.Status, p.ImageURL, p.ImagesJSON, p.ID)
	return err
}

// UpdateStatus flips the status only when the stored value still matches what
// the caller observed. Returns the number of rows changed; zero means either
// the piece is gone or the observation is stale.
func (r *PieceRepo) UpdateStatus(id, observed, next string) (int64, error) {
	res, err := r.db.Exec(`
	  UPDATE pieces
	  SET status = ?, updated_at = CURRENT_TIMESTAMP
	  WHERE id = ? AND status = ?
	`, next, id, observed)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PieceRepo) Delete(id string) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM pieces WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PieceRepo) Exists(id string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM pieces WHERE id = ?`, id); err != nil {
		return false, err
	}
	return n > 0, nil
}
