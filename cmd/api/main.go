// @title BookStream API
// @description API for the BookStream social reading platform
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/pageturn/bookstream/internal/api"
	"github.com/pageturn/bookstream/internal/repository"
	"github.com/pageturn/bookstream/internal/service"
	"github.com/pageturn/bookstream/pkg/cleanup"
	"github.com/pageturn/bookstream/pkg/config"
	"github.com/pageturn/bookstream/pkg/filestore"
	jwtservice "github.com/pageturn/bookstream/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool, err := repository.NewPool(context.Background(), &dbCfg)
	if err != nil {
		log.Fatal("connecting to postgres error: " + err.Error())
	}

	imagesDir := cfg.GetStringOr("IMAGES_DIR", "./images")
	covers, err := filestore.New(imagesDir)
	if err != nil {
		log.Fatal("preparing images directory error: " + err.Error())
	}

	usersRepo := repository.NewUsersRepo(pool)
	booksRepo := repository.NewBooksRepo(pool)
	marksRepo := repository.NewMarksRepo(pool)
	reviewsRepo := repository.NewReviewsRepo(pool)
	sessionsRepo := repository.NewSessionsRepo(pool)
	followsRepo := repository.NewFollowsRepo(pool)

	serv := api.New(&api.ServicesList{
		UserService:    service.NewUserService(usersRepo),
		BookService:    service.NewBookService(booksRepo, marksRepo, covers),
		ReviewService:  service.NewReviewService(reviewsRepo, booksRepo),
		SessionService: service.NewSessionService(sessionsRepo, booksRepo),
		SocialService:  service.NewSocialService(followsRepo, usersRepo),
		JwtService:     jwtservice.New(cfg.GetString("JWT_SECRET")),
		Health:         pool,
		ImagesDir:      imagesDir,
	})
	if err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		log.Println("Server error: " + err.Error())
	}
}
