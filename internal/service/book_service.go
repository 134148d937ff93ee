package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	errorvalues "github.com/pageturn/bookstream/internal/error_values"
	"github.com/pageturn/bookstream/internal/repository"
	"github.com/pageturn/bookstream/pkg/entity"
	"github.com/pageturn/bookstream/pkg/filestore"
)

type BookService struct {
	booksRepo repository.BooksRepositoryI
	marksRepo repository.MarksRepositoryI
	covers    CoverStore
}

func NewBookService(booksRepo repository.BooksRepositoryI, marksRepo repository.MarksRepositoryI, covers CoverStore) *BookService {
	if booksRepo == nil || marksRepo == nil || covers == nil {
		log.Fatal("on book service provided nil dependencies")
	}
	return &BookService{
		booksRepo: booksRepo,
		marksRepo: marksRepo,
		covers:    covers,
	}
}

// CreateBook validates fields, runs the per-user duplicate title check and
// stores an optional cover before the insert. The duplicate check is
// read-then-decide; the storage unique index on (user_id, lower(title))
// remains the guard of last resort under concurrent submissions.
func (bs *BookService) CreateBook(ctx context.Context, ownerID uuid.UUID, req *CreateBookRequest) (*entity.Book, error) {
	if problems := ValidateBookFields(req.Title, req.AuthorName); len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrValidation, strings.Join(problems, "; "))
	}
	taken, err := bs.booksRepo.TitleExists(ctx, ownerID, req.Title, nil)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if taken {
		return nil, errorvalues.ErrDuplicateTitle
	}
	book := &entity.Book{
		ID:          uuid.New(),
		UserID:      &ownerID,
		Title:       strings.TrimSpace(req.Title),
		AuthorName:  strings.TrimSpace(req.AuthorName),
		PublishDate: req.PublishDate,
	}
	var coverName string
	if req.Cover != nil {
		coverName, err = bs.covers.Save(filestore.CoverFilename(book.Title, req.Cover.Ext), req.Cover.Content)
		if err != nil {
			return nil, errors.New("saving cover error: " + err.Error())
		}
		book.CoverURL = &coverName
	}
	created, err := bs.booksRepo.Create(ctx, book)
	if err != nil {
		// The cover must not outlive a failed insert
		if coverName != "" {
			bs.covers.Delete(coverName)
		}
		switch {
		case errors.Is(err, errorvalues.ErrDuplicateTitle), errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return created, nil
}

func (bs *BookService) GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	book, err := bs.booksRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBookNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return book, nil
}

func (bs *BookService) ListBooks(ctx context.Context, filter repository.BookFilter) ([]*entity.Book, error) {
	books, err := bs.booksRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return books, nil
}

func (bs *BookService) UpdateBook(ctx context.Context, ownerID, bookID uuid.UUID, req *UpdateBookRequest) (*entity.Book, error) {
	book, err := bs.ownedBook(ctx, ownerID, bookID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		taken, err := bs.booksRepo.TitleExists(ctx, ownerID, *req.Title, &bookID)
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		if taken {
			return nil, errorvalues.ErrDuplicateTitle
		}
		book.Title = strings.TrimSpace(*req.Title)
	}
	if req.AuthorName != nil {
		book.AuthorName = strings.TrimSpace(*req.AuthorName)
	}
	if req.PublishDate != nil {
		book.PublishDate = req.PublishDate
	}
	if problems := ValidateBookFields(book.Title, book.AuthorName); len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrValidation, strings.Join(problems, "; "))
	}
	if err := bs.booksRepo.Update(ctx, book); err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrBookNotFound), errors.Is(err, errorvalues.ErrDuplicateTitle):
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return book, nil
}

func (bs *BookService) DeleteBook(ctx context.Context, ownerID, bookID uuid.UUID) error {
	book, err := bs.ownedBook(ctx, ownerID, bookID)
	if err != nil {
		return err
	}
	if err := bs.booksRepo.Delete(ctx, bookID); err != nil {
		if errors.Is(err, errorvalues.ErrBookNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	if book.CoverURL != nil {
		bs.covers.Delete(*book.CoverURL)
	}
	return nil
}

func (bs *BookService) SetVerified(ctx context.Context, bookID uuid.UUID, verified bool) error {
	err := bs.booksRepo.SetVerified(ctx, bookID, verified)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBookNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (bs *BookService) Stats(ctx context.Context) (*entity.BookStats, error) {
	stats, err := bs.booksRepo.Stats(ctx)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return stats, nil
}

func (bs *BookService) MarkBook(ctx context.Context, userID, bookID uuid.UUID) error {
	if _, err := bs.GetBook(ctx, bookID); err != nil {
		return err
	}
	err := bs.marksRepo.Create(ctx, userID, bookID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlreadyMarked), errors.Is(err, errorvalues.ErrBookNotFound):
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (bs *BookService) UnmarkBook(ctx context.Context, userID, bookID uuid.UUID) error {
	err := bs.marksRepo.Delete(ctx, userID, bookID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMarkNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (bs *BookService) IsMarked(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	marked, err := bs.marksRepo.Exists(ctx, userID, bookID)
	if err != nil {
		return false, errors.New("repository error: " + err.Error())
	}
	return marked, nil
}

func (bs *BookService) MarkedBooks(ctx context.Context, userID uuid.UUID, pagination PaginationOpts) ([]*entity.MarkedBook, error) {
	marked, err := bs.marksRepo.ListByUser(ctx, userID, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return marked, nil
}

// ownedBook reports a missing book and a foreign owner identically, so the
// caller can't probe for existence of other users' books.
func (bs *BookService) ownedBook(ctx context.Context, ownerID, bookID uuid.UUID) (*entity.Book, error) {
	book, err := bs.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book.UserID == nil || *book.UserID != ownerID {
		return nil, errorvalues.ErrWrongOwner
	}
	return book, nil
}
