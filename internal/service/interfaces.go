package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/pageturn/bookstream/internal/repository"
	"github.com/pageturn/bookstream/pkg/entity"
)

type RegisterRequest struct {
	Email    string `validate:"required,email,max=100"`
	Name     string `validate:"required,min=1,max=100"`
	Password string `validate:"required,password_strength"`
}

type UpdateUserRequest struct {
	Name     *string
	Password *string
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type CoverUpload struct {
	Ext     string
	Content io.Reader
}

type CreateBookRequest struct {
	Title       string
	AuthorName  string
	PublishDate *time.Time
	Cover       *CoverUpload
}

type UpdateBookRequest struct {
	Title       *string
	AuthorName  *string
	PublishDate *time.Time
}

type ReviewRequest struct {
	Rating        *float64
	ReviewComment *string
}

type StartSessionRequest struct {
	StartTime time.Time
	EndTime   *time.Time
}

// CoverStore is the narrow surface of the file store the book service needs:
// it stores and deletes cover files, never raw bytes elsewhere.
type CoverStore interface {
	Save(suggestedName string, r io.Reader) (string, error)
	Delete(storedName string) bool
}

type UserServiceI interface {
	// Validates credentials, hashes the password and creates the user row
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Verifies credentials and applies the streak transition for today
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string, pagination PaginationOpts) ([]*entity.User, int, error)
}

type BookServiceI interface {
	CreateBook(ctx context.Context, ownerID uuid.UUID, req *CreateBookRequest) (*entity.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error)
	ListBooks(ctx context.Context, filter repository.BookFilter) ([]*entity.Book, error)
	UpdateBook(ctx context.Context, ownerID, bookID uuid.UUID, req *UpdateBookRequest) (*entity.Book, error)
	DeleteBook(ctx context.Context, ownerID, bookID uuid.UUID) error
	SetVerified(ctx context.Context, bookID uuid.UUID, verified bool) error
	Stats(ctx context.Context) (*entity.BookStats, error)
	MarkBook(ctx context.Context, userID, bookID uuid.UUID) error
	UnmarkBook(ctx context.Context, userID, bookID uuid.UUID) error
	IsMarked(ctx context.Context, userID, bookID uuid.UUID) (bool, error)
	MarkedBooks(ctx context.Context, userID uuid.UUID, pagination PaginationOpts) ([]*entity.MarkedBook, error)
}

type ReviewServiceI interface {
	CreateReview(ctx context.Context, userID, bookID uuid.UUID, req *ReviewRequest) (*entity.Review, error)
	BookReviews(ctx context.Context, bookID uuid.UUID, pagination PaginationOpts) ([]*entity.Review, error)
	MyReviews(ctx context.Context, userID uuid.UUID, pagination PaginationOpts) ([]*entity.Review, error)
	Summary(ctx context.Context, bookID uuid.UUID) (*entity.ReviewSummary, error)
	UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, req *ReviewRequest) (*entity.Review, error)
	DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error
}

type SessionServiceI interface {
	StartSession(ctx context.Context, userID, bookID uuid.UUID, req *StartSessionRequest) (*entity.ReadingSession, error)
	CloseSession(ctx context.Context, userID, sessionID uuid.UUID, endTime time.Time) (*entity.ReadingSession, error)
	UserSessions(ctx context.Context, userID uuid.UUID, filter repository.SessionFilter) ([]*entity.ReadingSession, error)
	Stats(ctx context.Context, userID uuid.UUID, period string, bookID *uuid.UUID) (*entity.ReadingStats, error)
}

type SocialServiceI interface {
	Follow(ctx context.Context, followerID, followedID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error
	Status(ctx context.Context, callerID, otherID uuid.UUID) (*entity.FollowStatus, error)
	FollowingList(ctx context.Context, userID uuid.UUID, pagination PaginationOpts) ([]*entity.User, int, error)
	FollowersList(ctx context.Context, userID uuid.UUID, pagination PaginationOpts) ([]*entity.User, int, error)
	Feed(ctx context.Context, userID uuid.UUID, pagination PaginationOpts) ([]*entity.ActivityEvent, error)
}
