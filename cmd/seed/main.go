// Fills the database with demo users, books, reviews, marks, follows and
// reading sessions for local development.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/pageturn/bookstream/internal/repository"
	"github.com/pageturn/bookstream/internal/service"
	"github.com/pageturn/bookstream/pkg/cleanup"
	"github.com/pageturn/bookstream/pkg/config"
	"github.com/pageturn/bookstream/pkg/entity"
)

func init() {
	service.InitValidator()
}

var sampleBooks = []struct {
	title   string
	author  string
	publish string
}{
	{"The Go Programming Language", "Alan Donovan", "2015-11-16"},
	{"A Tour of the Shire", "B. Baggins", "1954-07-29"},
	{"Distributed Systems for Readers", "M. Kleppmann", "2017-03-16"},
	{"One Hundred Years of Reading", "G. Marquez", "1967-05-30"},
	{"The Night Library", "M. Haig", "2020-08-13"},
	{"Practical Postgres", "C. Ramba", "2019-02-01"},
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	ctx := context.Background()
	pool, err := repository.NewPool(ctx, &dbCfg)
	if err != nil {
		log.Fatal("connecting to postgres error: " + err.Error())
	}

	usersRepo := repository.NewUsersRepo(pool)
	booksRepo := repository.NewBooksRepo(pool)
	marksRepo := repository.NewMarksRepo(pool)
	reviewsRepo := repository.NewReviewsRepo(pool)
	sessionsRepo := repository.NewSessionsRepo(pool)
	followsRepo := repository.NewFollowsRepo(pool)
	userService := service.NewUserService(usersRepo)

	users := make([]*entity.User, 0, 4)
	for _, seed := range []struct{ email, name string }{
		{"alice@example.com", "Alice Reader"},
		{"bob@example.com", "Bob Bookman"},
		{"carol@example.com", "Carol Pages"},
		{"dave@example.com", "Dave Chapters"},
	} {
		user, err := userService.Register(ctx, &service.RegisterRequest{
			Email:    seed.email,
			Name:     seed.name,
			Password: "Seed#pass1",
		})
		if err != nil {
			log.Fatal("seeding user error: " + err.Error())
		}
		users = append(users, user)
		log.Println("seeded user " + user.Email)
	}

	books := make([]*entity.Book, 0, len(sampleBooks))
	for i, seed := range sampleBooks {
		owner := users[i%len(users)].ID
		date, err := time.Parse("2006-01-02", seed.publish)
		if err != nil {
			log.Fatal("parsing publish date error: " + err.Error())
		}
		book, err := booksRepo.Create(ctx, &entity.Book{
			ID:          uuid.New(),
			UserID:      &owner,
			Title:       seed.title,
			AuthorName:  seed.author,
			PublishDate: &date,
		})
		if err != nil {
			log.Fatal("seeding book error: " + err.Error())
		}
		books = append(books, book)
	}

	for i, user := range users {
		book := books[(i+1)%len(books)]
		if err := marksRepo.Create(ctx, user.ID, book.ID); err != nil {
			log.Fatal("seeding mark error: " + err.Error())
		}
		rating := float64(3 + i%3)
		comment := "Couldn't put it down."
		if err := reviewsRepo.Create(ctx, &entity.Review{
			ID:            uuid.New(),
			UserID:        user.ID,
			BookID:        book.ID,
			Rating:        &rating,
			ReviewComment: &comment,
		}); err != nil {
			log.Fatal("seeding review error: " + err.Error())
		}
	}

	for i, user := range users {
		followed := users[(i+1)%len(users)]
		if err := followsRepo.Create(ctx, user.ID, followed.ID); err != nil {
			log.Fatal("seeding follow error: " + err.Error())
		}
	}

	for i, user := range users {
		book := books[i%len(books)]
		start := time.Now().Add(-time.Duration(i+1) * 24 * time.Hour)
		end := start.Add(45 * time.Minute)
		duration := service.DurationMinutes(start, end)
		if err := sessionsRepo.Create(ctx, &entity.ReadingSession{
			ID:          uuid.New(),
			UserID:      user.ID,
			BookID:      book.ID,
			StartTime:   start,
			EndTime:     &end,
			DurationMin: &duration,
		}); err != nil {
			log.Fatal("seeding session error: " + err.Error())
		}
	}

	log.Println("seeding finished")
}
