package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/pageturn/bookstream/internal/error_values"
	"github.com/pageturn/bookstream/pkg/entity"
)

type MarksRepository struct {
	conn PgConnection
}

func NewMarksRepo(conn PgConnection) *MarksRepository {
	if conn == nil {
		log.Fatal("nil connection provided to marksRepo")
	}
	return &MarksRepository{
		conn: conn,
	}
}

func (mr *MarksRepository) Create(ctx context.Context, userID, bookID uuid.UUID) error {
	_, err := mr.conn.Exec(ctx,
		`INSERT INTO marks (user_id, book_id) VALUES ($1, $2);`,
		userID, bookID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation, the pair is the primary key
			case "23505":
				return errorvalues.ErrAlreadyMarked
			// FK violation
			case "23503":
				return errorvalues.ErrBookNotFound
			}
		}
		return errors.New("creating mark error: " + err.Error())
	}
	return nil
}

func (mr *MarksRepository) Delete(ctx context.Context, userID, bookID uuid.UUID) error {
	ct, err := mr.conn.Exec(ctx,
		`DELETE FROM marks WHERE user_id = $1 AND book_id = $2;`,
		userID, bookID,
	)
	if err != nil {
		return errors.New("deleting mark error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMarkNotFound
	}
	return nil
}

func (mr *MarksRepository) Exists(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	var exists bool
	row := mr.conn.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM marks WHERE user_id = $1 AND book_id = $2);`,
		userID, bookID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting if mark exists error: " + err.Error())
	}
	return exists, nil
}

func (mr *MarksRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.MarkedBook, error) {
	rows, err := mr.conn.Query(ctx,
		`SELECT b.book_id, b.user_id, b.title, b.author_name, b.publish_date, b.is_verified, b.cover_url, b.created_at, m.marked_at
		FROM marks m
		JOIN books b ON m.book_id = b.book_id
		WHERE m.user_id = $1
		ORDER BY m.marked_at DESC
		LIMIT $2 OFFSET $3;`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, errors.New("listing marked books error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.MarkedBook, 0, limit)
	for rows.Next() {
		var marked entity.MarkedBook
		err = rows.Scan(
			&marked.ID,
			&marked.UserID,
			&marked.Title,
			&marked.AuthorName,
			&marked.PublishDate,
			&marked.IsVerified,
			&marked.CoverURL,
			&marked.CreatedAt,
			&marked.MarkedAt,
		)
		if err != nil {
			return nil, errors.New("marked book row parsing error: " + err.Error())
		}
		result = append(result, &marked)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected marked book rows error: " + rows.Err().Error())
	}
	return result, nil
}
