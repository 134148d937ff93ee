package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pageturn/bookstream/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user row. ID, Email, Name, PasswordHash are necessary
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by id. Used by authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates name and password hash
	UpdateProfile(ctx context.Context, user *entity.User) error
	// Persists a streak transition with a single statement
	UpdateStreak(ctx context.Context, uid uuid.UUID, current, last int, lastLogin time.Time) error
	// Deletes user. Owned books are disowned by the schema, the rest cascades
	Delete(ctx context.Context, uid uuid.UUID) error
	// Case-insensitive name search with pagination
	SearchByName(ctx context.Context, query string, limit, offset int) ([]*entity.User, error)
	CountByName(ctx context.Context, query string) (int, error)
}

type BookFilter struct {
	Title    string
	Author   string
	Verified *bool
	Limit    int
	Offset   int
}

type BooksRepositoryI interface {
	// Inserts the book and selects it back inside one transaction
	Create(ctx context.Context, book *entity.Book) (*entity.Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)
	List(ctx context.Context, filter BookFilter) ([]*entity.Book, error)
	// Updates title, author, publish date and cover reference by ID
	Update(ctx context.Context, book *entity.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Reports whether owner already has a book with this title,
	// case-insensitive, optionally excluding the book being updated
	TitleExists(ctx context.Context, ownerID uuid.UUID, title string, exclude *uuid.UUID) (bool, error)
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
	Stats(ctx context.Context) (*entity.BookStats, error)
}

type MarksRepositoryI interface {
	Create(ctx context.Context, userID, bookID uuid.UUID) error
	Delete(ctx context.Context, userID, bookID uuid.UUID) error
	Exists(ctx context.Context, userID, bookID uuid.UUID) (bool, error)
	// Marked books of a user joined with mark time, newest mark first
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.MarkedBook, error)
}

type ReviewsRepositoryI interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	ListByBook(ctx context.Context, bookID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	SummaryByBook(ctx context.Context, bookID uuid.UUID) (*entity.ReviewSummary, error)
}

type SessionFilter struct {
	BookID *uuid.UUID
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

type SessionsRepositoryI interface {
	Create(ctx context.Context, session *entity.ReadingSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ReadingSession, error)
	// Sets end time and duration on an open session. The statement itself
	// guards the open state, so a concurrent close loses distinctly
	Close(ctx context.Context, id uuid.UUID, endTime time.Time, durationMin int) error
	ListByUser(ctx context.Context, userID uuid.UUID, filter SessionFilter) ([]*entity.ReadingSession, error)
	// All sessions of a user starting inside [from, to], unpaginated,
	// for the single-pass statistics computation
	GetWindow(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.ReadingSession, error)
}

type FollowsRepositoryI interface {
	Create(ctx context.Context, followerID, followedID uuid.UUID) error
	Delete(ctx context.Context, followerID, followedID uuid.UUID) error
	Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	Following(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int, error)
	Followers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error)
	CountFollowers(ctx context.Context, userID uuid.UUID) (int, error)
	// Union of book, review and session events of followed users ordered by
	// activity time descending
	ActivityFeed(ctx context.Context, followerID uuid.UUID, limit, offset int) ([]*entity.ActivityEvent, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
