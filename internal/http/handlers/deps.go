package handlers

import (
	"github.com/jmoiron/sqlx"

	"lookdehoje/internal/config"
	"lookdehoje/internal/repos"
	"lookdehoje/internal/services"
	"lookdehoje/internal/storage"
)

type Deps struct {
	Categories *CategoryHandler
	Pieces     *PieceHandler
	Uploads    *UploadHandler
	Hero       *HeroHandler
	Admin      *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) (*Deps, error) {
	catRepo := repos.NewCategoryRepo(db)
	pieceRepo := repos.NewPieceRepo(db)
	storeRepo := repos.NewStoreSettingRepo(db)
	heroRepo := repos.NewHeroRepo(db)

	store, err := storage.NewLocal(cfg.UploadDir, cfg.PublicBaseURL+"/uploads")
	if err != nil {
		return nil, err
	}

	catSvc := services.NewCategoryService(catRepo)
	pieceSvc := services.NewPieceService(pieceRepo, catRepo)
	storeSvc := services.NewStoreService(storeRepo)
	heroSvc := services.NewHeroService(heroRepo)

	return &Deps{
		Categories: &CategoryHandler{Cats: catSvc},
		Pieces:     &PieceHandler{Pieces: pieceSvc},
		Uploads:    &UploadHandler{Store: store},
		Hero:       &HeroHandler{Hero: heroSvc},
		Admin:      &AdminHandler{Store: storeSvc},
	}, nil
}
