package repository

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/pageturn/bookstream/internal/error_values"
	"github.com/pageturn/bookstream/pkg/entity"
)

type BooksRepository struct {
	conn PgConnection
}

func NewBooksRepo(conn PgConnection) *BooksRepository {
	if conn == nil {
		log.Fatal("nil connection provided to booksRepo")
	}
	return &BooksRepository{
		conn: conn,
	}
}

const bookColumns = `book_id, user_id, title, author_name, publish_date, is_verified, cover_url, created_at`

// Create inserts the book and selects the persisted row back in one
// transaction, so defaults filled by the database are returned consistently.
func (br *BooksRepository) Create(ctx context.Context, book *entity.Book) (*entity.Book, error) {
	if book == nil {
		return nil, errors.New("book is nil")
	}
	tx, err := br.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	_, err = tx.Exec(ctx,
		`INSERT INTO books (book_id, user_id, title, author_name, publish_date, cover_url) VALUES ($1, $2, $3, $4, $5, $6);`,
		book.ID, book.UserID, book.Title, book.AuthorName, book.PublishDate, book.CoverURL,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation on (user_id, lower(title))
			case "23505":
				return nil, errorvalues.ErrDuplicateTitle
			// FK violation
			case "23503":
				return nil, errorvalues.ErrUserNotFound
			}
		}
		return nil, errors.New("creating book error: " + err.Error())
	}
	row := tx.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE book_id = $1;`, book.ID)
	created, err := scanBook(row)
	if err != nil {
		return nil, errors.New("selecting created book error: " + err.Error())
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errors.New("committing book creation error: " + err.Error())
	}
	return created, nil
}

func (br *BooksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	row := br.conn.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE book_id = $1;`, id)
	book, err := scanBook(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrBookNotFound
		}
		return nil, errors.New("searching book by id error: " + err.Error())
	}
	return book, nil
}

func (br *BooksRepository) List(ctx context.Context, filter BookFilter) ([]*entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE 1=1`
	args := make([]any, 0, 5)
	if filter.Title != "" {
		args = append(args, filter.Title)
		query += ` AND title ILIKE '%' || $` + strconv.Itoa(len(args)) + ` || '%'`
	}
	if filter.Author != "" {
		args = append(args, filter.Author)
		query += ` AND author_name ILIKE '%' || $` + strconv.Itoa(len(args)) + ` || '%'`
	}
	if filter.Verified != nil {
		args = append(args, *filter.Verified)
		query += ` AND is_verified = $` + strconv.Itoa(len(args))
	}
	args = append(args, filter.Limit)
	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	query += ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := br.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing books error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.Book, 0, filter.Limit)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, errors.New("book row parsing error: " + err.Error())
		}
		result = append(result, book)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected book rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (br *BooksRepository) Update(ctx context.Context, book *entity.Book) error {
	ct, err := br.conn.Exec(ctx,
		`UPDATE books SET title = $1, author_name = $2, publish_date = $3, cover_url = $4 WHERE book_id = $5;`,
		book.Title, book.AuthorName, book.PublishDate, book.CoverURL, book.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errorvalues.ErrDuplicateTitle
		}
		return errors.New("updating book error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrBookNotFound
	}
	return nil
}

func (br *BooksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := br.conn.Exec(ctx, `DELETE FROM books WHERE book_id = $1;`, id)
	if err != nil {
		return errors.New("deleting book error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrBookNotFound
	}
	return nil
}

func (br *BooksRepository) TitleExists(ctx context.Context, ownerID uuid.UUID, title string, exclude *uuid.UUID) (bool, error) {
	var exists bool
	var row pgx.Row
	normalized := strings.ToLower(strings.TrimSpace(title))
	if exclude != nil {
		row = br.conn.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM books WHERE user_id = $1 AND LOWER(title) = $2 AND book_id <> $3);`,
			ownerID, normalized, *exclude,
		)
	} else {
		row = br.conn.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM books WHERE user_id = $1 AND LOWER(title) = $2);`,
			ownerID, normalized,
		)
	}
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting duplicate title error: " + err.Error())
	}
	return exists, nil
}

func (br *BooksRepository) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	ct, err := br.conn.Exec(ctx, `UPDATE books SET is_verified = $1 WHERE book_id = $2;`, verified, id)
	if err != nil {
		return errors.New("verifying book error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrBookNotFound
	}
	return nil
}

func (br *BooksRepository) Stats(ctx context.Context) (*entity.BookStats, error) {
	var stats entity.BookStats
	row := br.conn.QueryRow(ctx,
		`SELECT
			(SELECT COUNT(*) FROM books),
			(SELECT COUNT(*) FROM books WHERE is_verified),
			(SELECT COUNT(*) FROM reviews),
			(SELECT COUNT(*) FROM reading_sessions);`,
	)
	err := row.Scan(&stats.TotalBooks, &stats.VerifiedBooks, &stats.TotalReviews, &stats.TotalSessions)
	if err != nil {
		return nil, errors.New("collecting book stats error: " + err.Error())
	}
	return &stats, nil
}

func scanBook(row pgx.Row) (*entity.Book, error) {
	var book entity.Book
	err := row.Scan(
		&book.ID,
		&book.UserID,
		&book.Title,
		&book.AuthorName,
		&book.PublishDate,
		&book.IsVerified,
		&book.CoverURL,
		&book.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &book, nil
}
