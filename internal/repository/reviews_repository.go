package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/pageturn/bookstream/internal/error_values"
	"github.com/pageturn/bookstream/pkg/entity"
)

type ReviewsRepository struct {
	conn PgConnection
}

func NewReviewsRepo(conn PgConnection) *ReviewsRepository {
	if conn == nil {
		log.Fatal("nil connection provided to reviewsRepo")
	}
	return &ReviewsRepository{
		conn: conn,
	}
}

func (rr *ReviewsRepository) Create(ctx context.Context, review *entity.Review) error {
	if review == nil {
		return errors.New("review is nil")
	}
	_, err := rr.conn.Exec(ctx,
		`INSERT INTO reviews (id, user_id, book_id, rating, review_comment) VALUES ($1, $2, $3, $4, $5);`,
		review.ID, review.UserID, review.BookID, review.Rating, review.ReviewComment,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation on (user_id, book_id)
			case "23505":
				return errorvalues.ErrReviewExists
			// FK violation
			case "23503":
				return errorvalues.ErrBookNotFound
			}
		}
		return errors.New("creating review error: " + err.Error())
	}
	return nil
}

func (rr *ReviewsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var review entity.Review
	row := rr.conn.QueryRow(ctx,
		`SELECT id, user_id, book_id, rating, review_comment, created_at, updated_at FROM reviews WHERE id = $1;`,
		id,
	)
	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.BookID,
		&review.Rating,
		&review.ReviewComment,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrReviewNotFound
		}
		return nil, errors.New("searching review by id error: " + err.Error())
	}
	return &review, nil
}

func (rr *ReviewsRepository) ListByBook(ctx context.Context, bookID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	rows, err := rr.conn.Query(ctx,
		`SELECT r.id, r.user_id, r.book_id, r.rating, r.review_comment, u.name, r.created_at, r.updated_at
		FROM reviews r
		JOIN users u ON r.user_id = u.user_id
		WHERE r.book_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3;`,
		bookID, limit, offset,
	)
	if err != nil {
		return nil, errors.New("listing reviews error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.Review, 0, limit)
	for rows.Next() {
		var review entity.Review
		err = rows.Scan(
			&review.ID,
			&review.UserID,
			&review.BookID,
			&review.Rating,
			&review.ReviewComment,
			&review.UserName,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			return nil, errors.New("review row parsing error: " + err.Error())
		}
		result = append(result, &review)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected review rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (rr *ReviewsRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	rows, err := rr.conn.Query(ctx,
		`SELECT r.id, r.user_id, r.book_id, r.rating, r.review_comment, b.title, r.created_at, r.updated_at
		FROM reviews r
		JOIN books b ON r.book_id = b.book_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3;`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, errors.New("listing user reviews error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.Review, 0, limit)
	for rows.Next() {
		var review entity.Review
		err = rows.Scan(
			&review.ID,
			&review.UserID,
			&review.BookID,
			&review.Rating,
			&review.ReviewComment,
			&review.BookTitle,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			return nil, errors.New("review row parsing error: " + err.Error())
		}
		result = append(result, &review)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected review rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (rr *ReviewsRepository) Update(ctx context.Context, review *entity.Review) error {
	ct, err := rr.conn.Exec(ctx,
		`UPDATE reviews SET rating = $1, review_comment = $2, updated_at = NOW() WHERE id = $3;`,
		review.Rating, review.ReviewComment, review.ID,
	)
	if err != nil {
		return errors.New("updating review error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrReviewNotFound
	}
	return nil
}

func (rr *ReviewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := rr.conn.Exec(ctx, `DELETE FROM reviews WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting review error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrReviewNotFound
	}
	return nil
}

func (rr *ReviewsRepository) SummaryByBook(ctx context.Context, bookID uuid.UUID) (*entity.ReviewSummary, error) {
	summary := entity.ReviewSummary{BookID: bookID}
	row := rr.conn.QueryRow(ctx,
		`SELECT COUNT(*), AVG(rating) FROM reviews WHERE book_id = $1;`,
		bookID,
	)
	if err := row.Scan(&summary.ReviewCount, &summary.AverageRating); err != nil {
		return nil, errors.New("collecting review summary error: " + err.Error())
	}
	return &summary, nil
}
