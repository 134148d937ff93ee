package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/pageturn/bookstream/internal/error_values"
	"github.com/pageturn/bookstream/internal/service"
	"github.com/pageturn/bookstream/pkg/entity"
)

func bookTestStack() (*service.BookService, *fakeBooksRepo, *fakeMarksRepo, *fakeCoverStore) {
	booksRepo := newFakeBooksRepo()
	marksRepo := newFakeMarksRepo()
	covers := &fakeCoverStore{}
	return service.NewBookService(booksRepo, marksRepo, covers), booksRepo, marksRepo, covers
}

func TestCreateBookFlow(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	t.Run("created with cover", func(t *testing.T) {
		bs, _, _, covers := bookTestStack()
		published := time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)
		book, err := bs.CreateBook(ctx, ownerID, &service.CreateBookRequest{
			Title:       "  Dune ",
			AuthorName:  "Frank Herbert",
			PublishDate: &published,
			Cover: &service.CoverUpload{
				Ext:     ".jpg",
				Content: strings.NewReader("jpeg bytes"),
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, "Dune", book.Title)
		assert.Equal(t, ownerID, *book.UserID)
		assert.NotNil(t, book.CoverURL)
		assert.Len(t, covers.saved, 1)
	})
	t.Run("rejects blank fields", func(t *testing.T) {
		bs, _, _, _ := bookTestStack()
		_, err := bs.CreateBook(ctx, ownerID, &service.CreateBookRequest{
			Title:      "   ",
			AuthorName: "",
		})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("rejects duplicate title per owner, case-insensitive", func(t *testing.T) {
		bs, _, _, _ := bookTestStack()
		_, err := bs.CreateBook(ctx, ownerID, &service.CreateBookRequest{Title: "Dune", AuthorName: "Frank Herbert"})
		assert.NoError(t, err)
		_, err = bs.CreateBook(ctx, ownerID, &service.CreateBookRequest{Title: "  DUNE ", AuthorName: "Frank Herbert"})
		assert.ErrorIs(t, err, errorvalues.ErrDuplicateTitle)
	})
	t.Run("same title allowed for another owner", func(t *testing.T) {
		bs, _, _, _ := bookTestStack()
		_, err := bs.CreateBook(ctx, ownerID, &service.CreateBookRequest{Title: "Dune", AuthorName: "Frank Herbert"})
		assert.NoError(t, err)
		_, err = bs.CreateBook(ctx, uuid.New(), &service.CreateBookRequest{Title: "Dune", AuthorName: "Frank Herbert"})
		assert.NoError(t, err)
	})
	t.Run("cover removed when the insert fails", func(t *testing.T) {
		bs, booksRepo, _, covers := bookTestStack()
		booksRepo.createErr = errors.New("insert failed")
		_, err := bs.CreateBook(ctx, ownerID, &service.CreateBookRequest{
			Title:      "Dune",
			AuthorName: "Frank Herbert",
			Cover: &service.CoverUpload{
				Ext:     ".png",
				Content: strings.NewReader("png bytes"),
			},
		})
		assert.Error(t, err)
		assert.Len(t, covers.deleted, 1)
		assert.Equal(t, covers.saved, covers.deleted)
	})
}

func TestUpdateBook(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	t.Run("updated own book", func(t *testing.T) {
		bs, _, _, _ := bookTestStack()
		book, err := bs.CreateBook(ctx, ownerID, &service.CreateBookRequest{Title: "Dune", AuthorName: "Frank Herbert"})
		assert.NoError(t, err)
		newTitle := "Dune Messiah"
		updated, err := bs.UpdateBook(ctx, ownerID, book.ID, &service.UpdateBookRequest{Title: &newTitle})
		assert.NoError(t, err)
		assert.Equal(t, newTitle, updated.Title)
	})
	t.Run("keeping own title is not a duplicate", func(t *testing.T) {
		bs, _, _, _ := bookTestStack()
		book, err := bs.CreateBook(ctx, ownerID, &service.CreateBookRequest{Title: "Dune", AuthorName: "Frank Herbert"})
		assert.NoError(t, err)
		sameTitle := "DUNE"
		_, err = bs.UpdateBook(ctx, ownerID, book.ID, &service.UpdateBookRequest{Title: &sameTitle})
		assert.NoError(t, err)
	})
	t.Run("rejects title taken by another own book", func(t *testing.T) {
		bs, _, _, _ := bookTestStack()
		_, err := bs.CreateBook(ctx, ownerID, &service.CreateBookRequest{Title: "Dune", AuthorName: "Frank Herbert"})
		assert.NoError(t, err)
		second, err := bs.CreateBook(ctx, ownerID, &service.CreateBookRequest{Title: "Dune Messiah", AuthorName: "Frank Herbert"})
		assert.NoError(t, err)
		takenTitle := "dune"
		_, err = bs.UpdateBook(ctx, ownerID, second.ID, &service.UpdateBookRequest{Title: &takenTitle})
		assert.ErrorIs(t, err, errorvalues.ErrDuplicateTitle)
	})
	t.Run("foreign book looks missing", func(t *testing.T) {
		bs, _, _, _ := bookTestStack()
		book, err := bs.CreateBook(ctx, ownerID, &service.CreateBookRequest{Title: "Dune", AuthorName: "Frank Herbert"})
		assert.NoError(t, err)
		newTitle := "Hijacked"
		_, err = bs.UpdateBook(ctx, uuid.New(), book.ID, &service.UpdateBookRequest{Title: &newTitle})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("unknown book", func(t *testing.T) {
		bs, _, _, _ := bookTestStack()
		newTitle := "Ghost"
		_, err := bs.UpdateBook(ctx, ownerID, uuid.New(), &service.UpdateBookRequest{Title: &newTitle})
		assert.ErrorIs(t, err, errorvalues.ErrBookNotFound)
	})
}

func TestDeleteBookRemovesCover(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	bs, booksRepo, _, covers := bookTestStack()
	book, err := bs.CreateBook(ctx, ownerID, &service.CreateBookRequest{
		Title:      "Dune",
		AuthorName: "Frank Herbert",
		Cover: &service.CoverUpload{
			Ext:     ".jpg",
			Content: strings.NewReader("jpeg bytes"),
		},
	})
	assert.NoError(t, err)
	assert.NoError(t, bs.DeleteBook(ctx, ownerID, book.ID))
	assert.Len(t, covers.deleted, 1)
	assert.Empty(t, booksRepo.books)
	assert.ErrorIs(t, bs.DeleteBook(ctx, ownerID, book.ID), errorvalues.ErrBookNotFound)
}

func TestSetVerified(t *testing.T) {
	ctx := context.Background()
	bs, booksRepo, _, _ := bookTestStack()
	book, err := bs.CreateBook(ctx, uuid.New(), &service.CreateBookRequest{Title: "Dune", AuthorName: "Frank Herbert"})
	assert.NoError(t, err)
	assert.NoError(t, bs.SetVerified(ctx, book.ID, true))
	assert.True(t, booksRepo.books[book.ID].IsVerified)
	assert.ErrorIs(t, bs.SetVerified(ctx, uuid.New(), true), errorvalues.ErrBookNotFound)
}

func TestMarks(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	seedBook := func(t *testing.T, bs *service.BookService) *entity.Book {
		t.Helper()
		book, err := bs.CreateBook(ctx, uuid.New(), &service.CreateBookRequest{Title: "Dune", AuthorName: "Frank Herbert"})
		assert.NoError(t, err)
		return book
	}
	t.Run("marked and unmarked", func(t *testing.T) {
		bs, _, _, _ := bookTestStack()
		book := seedBook(t, bs)
		assert.NoError(t, bs.MarkBook(ctx, userID, book.ID))
		marked, err := bs.IsMarked(ctx, userID, book.ID)
		assert.NoError(t, err)
		assert.True(t, marked)
		assert.NoError(t, bs.UnmarkBook(ctx, userID, book.ID))
		marked, err = bs.IsMarked(ctx, userID, book.ID)
		assert.NoError(t, err)
		assert.False(t, marked)
	})
	t.Run("second mark rejected", func(t *testing.T) {
		bs, _, _, _ := bookTestStack()
		book := seedBook(t, bs)
		assert.NoError(t, bs.MarkBook(ctx, userID, book.ID))
		assert.ErrorIs(t, bs.MarkBook(ctx, userID, book.ID), errorvalues.ErrAlreadyMarked)
	})
	t.Run("mark on unknown book", func(t *testing.T) {
		bs, _, _, _ := bookTestStack()
		assert.ErrorIs(t, bs.MarkBook(ctx, userID, uuid.New()), errorvalues.ErrBookNotFound)
	})
	t.Run("unmark without a mark", func(t *testing.T) {
		bs, _, _, _ := bookTestStack()
		book := seedBook(t, bs)
		assert.ErrorIs(t, bs.UnmarkBook(ctx, userID, book.ID), errorvalues.ErrMarkNotFound)
	})
}
