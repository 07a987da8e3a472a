package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookdehoje/internal/domain"
	"lookdehoje/internal/repos"
	"lookdehoje/internal/services"
)

type pieceFixture struct {
	svc *services.PieceService
	cat domain.Category
}

func newPieceFixture(t *testing.T) pieceFixture {
	t.Helper()
	db := memdb(t)
	catRepo := repos.NewCategoryRepo(db)
	cats := services.NewCategoryService(catRepo)
	cat, err := cats.Create("Vestidos", nil)
	require.NoError(t, err)
	return pieceFixture{
		svc: services.NewPieceService(repos.NewPieceRepo(db), catRepo),
		cat: cat,
	}
}

func (f pieceFixture) create(t *testing.T, urls ...string) domain.Piece {
	t.Helper()
	p, err := f.svc.Create(services.CreatePieceInput{
		Name:       "Vestido Longo",
		Price:      150,
		Available:  true,
		CategoryID: f.cat.ID,
		ImageURLs:  urls,
	})
	require.NoError(t, err)
	return p
}

func TestPieceCreate_MirrorsFirstImage(t *testing.T) {
	f := newPieceFixture(t)

	p := f.create(t, "http://x/a.jpg", "http://x/b.jpg")
	assert.Equal(t, "http://x/a.jpg", p.ImageURL)
	assert.Equal(t, []string{"http://x/a.jpg", "http://x/b.jpg"}, p.ImageURLs)
	assert.Equal(t, domain.StatusAvailable, p.Status)
	require.NotNil(t, p.Category)
	assert.Equal(t, f.cat.ID, p.Category.ID)
	assert.Equal(t, "Vestidos", p.Category.Name)
}

func TestPieceCreate_RequiresImages(t *testing.T) {
	f := newPieceFixture(t)

	in := services.CreatePieceInput{
		Name:       "Vestido Longo",
		Price:      150,
		Available:  true,
		CategoryID: f.cat.ID,
		ImageURLs:  []string{},
	}
	_, err := f.svc.Create(in)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// Blank entries do not count as images.
	in.ImageURLs = []string{"", "   "}
	_, err = f.svc.Create(in)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestPieceCreate_CategoryVanishesBeforeInsert(t *testing.T) {
	catDB := memdb(t)
	catRepo := repos.NewCategoryRepo(catDB)
	cat, err := services.NewCategoryService(catRepo).Create("Vestidos", nil)
	require.NoError(t, err)

	// The piece table lives in a database where the category was never
	// created: the existence check passes and the insert hits the foreign
	// key, the same shape as a concurrent category delete.
	svc := services.NewPieceService(repos.NewPieceRepo(memdb(t)), catRepo)
	_, err = svc.Create(services.CreatePieceInput{
		Name:       "Vestido Longo",
		Price:      150,
		Available:  true,
		CategoryID: cat.ID,
		ImageURLs:  []string{"http://x/a.jpg"},
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestPieceCreate_Validation(t *testing.T) {
	f := newPieceFixture(t)

	base := services.CreatePieceInput{
		Name:       "Vestido Longo",
		Price:      150,
		Available:  true,
		CategoryID: f.cat.ID,
		ImageURLs:  []string{"http://x/a.jpg"},
	}

	missingName := base
	missingName.Name = ""
	_, err := f.svc.Create(missingName)
	assert.True(t, domain.IsValidation(err))

	longName := base
	for len(longName.Name) <= 60 {
		longName.Name += "x"
	}
	_, err = f.svc.Create(longName)
	assert.True(t, domain.IsValidation(err))

	badPrice := base
	badPrice.Price = 0
	_, err = f.svc.Create(badPrice)
	assert.True(t, domain.IsValidation(err))

	badCategory := base
	badCategory.CategoryID = "missing-cat"
	_, err = f.svc.Create(badCategory)
	assert.True(t, domain.IsValidation(err))
}

func TestPieceUpdate_RecomputesMirror(t *testing.T) {
	f := newPieceFixture(t)
	p := f.create(t, "http://x/old.jpg")

	urls := []string{"a", "b"}
	got, err := f.svc.Update(p.ID, services.UpdatePieceInput{ImageURLs: &urls})
	require.NoError(t, err)
	assert.Equal(t, "a", got.ImageURL)
	assert.Equal(t, []string{"a", "b"}, got.ImageURLs)

	urls = []string{"c"}
	got, err = f.svc.Update(p.ID, services.UpdatePieceInput{ImageURLs: &urls})
	require.NoError(t, err)
	assert.Equal(t, "c", got.ImageURL)
	assert.Equal(t, []string{"c"}, got.ImageURLs)
}

func TestPieceUpdate_OmittedFieldsUntouched(t *testing.T) {
	f := newPieceFixture(t)
	p := f.create(t, "http://x/a.jpg")

	price := 199.0
	got, err := f.svc.Update(p.ID, services.UpdatePieceInput{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 199.0, got.Price)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.Status, got.Status)
	assert.Equal(t, p.ImageURL, got.ImageURL)
	assert.Equal(t, p.ImageURLs, got.ImageURLs)
}

func TestPieceUpdate_AvailabilityBecomesStatus(t *testing.T) {
	f := newPieceFixture(t)
	p := f.create(t, "http://x/a.jpg")

	unavailable := false
	got, err := f.svc.Update(p.ID, services.UpdatePieceInput{Available: &unavailable})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRented, got.Status)
}

func TestPieceUpdate_NotFound(t *testing.T) {
	f := newPieceFixture(t)

	price := 10.0
	_, err := f.svc.Update("missing-id", services.UpdatePieceInput{Price: &price})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestPieceToggleStatus_RoundTrip(t *testing.T) {
	f := newPieceFixture(t)
	p := f.create(t, "http://x/a.jpg")

	got, err := f.svc.ToggleStatus(p.ID, domain.StatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRented, got.Status)

	fetched, err := f.svc.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRented, fetched.Status)

	got, err = f.svc.ToggleStatus(p.ID, domain.StatusRented)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAvailable, got.Status)
}

func TestPieceToggleStatus_StaleObservationConflicts(t *testing.T) {
	f := newPieceFixture(t)
	p := f.create(t, "http://x/a.jpg") // status: available

	_, err := f.svc.ToggleStatus(p.ID, domain.StatusRented)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	// Nothing changed.
	got, err := f.svc.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAvailable, got.Status)
}

func TestPieceToggleStatus_BadInput(t *testing.T) {
	f := newPieceFixture(t)
	p := f.create(t, "http://x/a.jpg")

	_, err := f.svc.ToggleStatus(p.ID, "sold")
	assert.True(t, domain.IsValidation(err))

	_, err = f.svc.ToggleStatus("missing-id", domain.StatusAvailable)
	assert.True(t, domain.IsNotFound(err))
}

func TestPieceDelete(t *testing.T) {
	f := newPieceFixture(t)
	p := f.create(t, "http://x/a.jpg")

	require.NoError(t, f.svc.Delete(p.ID))

	_, err := f.svc.Get(p.ID)
	assert.True(t, domain.IsNotFound(err))

	err = f.svc.Delete(p.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestPieceList_NewestFirst(t *testing.T) {
	f := newPieceFixture(t)

	// Created within the same timestamp second; insertion order must still
	// come back reversed.
	var ids []string
	for _, url := range []string{"http://x/a.jpg", "http://x/b.jpg", "http://x/c.jpg"} {
		ids = append(ids, f.create(t, url).ID)
	}

	pieces, err := f.svc.List()
	require.NoError(t, err)
	require.Len(t, pieces, 3)
	for i, p := range pieces {
		assert.Equal(t, ids[len(ids)-1-i], p.ID)
	}
}

func TestPieceList_IncludesCategory(t *testing.T) {
	f := newPieceFixture(t)
	f.create(t, "http://x/a.jpg")
	f.create(t, "http://x/b.jpg")

	pieces, err := f.svc.List()
	require.NoError(t, err)
	require.Len(t, pieces, 2)
	for _, p := range pieces {
		require.NotNil(t, p.Category)
		assert.Equal(t, "Vestidos", p.Category.Name)
	}
}
