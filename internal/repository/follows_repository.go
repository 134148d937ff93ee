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

type FollowsRepository struct {
	conn PgConnection
}

func NewFollowsRepo(conn PgConnection) *FollowsRepository {
	if conn == nil {
		log.Fatal("nil connection provided to followsRepo")
	}
	return &FollowsRepository{
		conn: conn,
	}
}

func (fr *FollowsRepository) Create(ctx context.Context, followerID, followedID uuid.UUID) error {
	_, err := fr.conn.Exec(ctx,
		`INSERT INTO followers (follower_id, followed_id) VALUES ($1, $2);`,
		followerID, followedID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation, the ordered pair is the primary key
			case "23505":
				return errorvalues.ErrAlreadyFollowing
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating follow error: " + err.Error())
	}
	return nil
}

func (fr *FollowsRepository) Delete(ctx context.Context, followerID, followedID uuid.UUID) error {
	ct, err := fr.conn.Exec(ctx,
		`DELETE FROM followers WHERE follower_id = $1 AND followed_id = $2;`,
		followerID, followedID,
	)
	if err != nil {
		return errors.New("deleting follow error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrFollowNotFound
	}
	return nil
}

func (fr *FollowsRepository) Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	var exists bool
	row := fr.conn.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM followers WHERE follower_id = $1 AND followed_id = $2);`,
		followerID, followedID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting if follow exists error: " + err.Error())
	}
	return exists, nil
}

func (fr *FollowsRepository) Following(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error) {
	return fr.listRelated(ctx,
		`SELECT u.user_id, u.email, u.name, u.current_streak, u.last_streak, u.created_at
		FROM followers f
		JOIN users u ON f.followed_id = u.user_id
		WHERE f.follower_id = $1
		ORDER BY f.followed_at DESC
		LIMIT $2 OFFSET $3;`,
		userID, limit, offset,
	)
}

func (fr *FollowsRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	return fr.countRelated(ctx, `SELECT COUNT(*) FROM followers WHERE follower_id = $1;`, userID)
}

func (fr *FollowsRepository) Followers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error) {
	return fr.listRelated(ctx,
		`SELECT u.user_id, u.email, u.name, u.current_streak, u.last_streak, u.created_at
		FROM followers f
		JOIN users u ON f.follower_id = u.user_id
		WHERE f.followed_id = $1
		ORDER BY f.followed_at DESC
		LIMIT $2 OFFSET $3;`,
		userID, limit, offset,
	)
}

func (fr *FollowsRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int, error) {
	return fr.countRelated(ctx, `SELECT COUNT(*) FROM followers WHERE followed_id = $1;`, userID)
}

// ActivityFeed merges the three event kinds of followed users in one query.
// The union is intentionally not deduplicated across kinds.
func (fr *FollowsRepository) ActivityFeed(ctx context.Context, followerID uuid.UUID, limit, offset int) ([]*entity.ActivityEvent, error) {
	rows, err := fr.conn.Query(ctx,
		`SELECT kind, user_id, user_name, book_id, book_title, rating, duration_min, activity_time FROM (
			SELECT 'book_added' AS kind, u.user_id, u.name AS user_name, b.book_id, b.title AS book_title,
				NULL::numeric AS rating, NULL::int AS duration_min, b.created_at AS activity_time
			FROM books b
			JOIN users u ON b.user_id = u.user_id
			JOIN followers f ON f.followed_id = u.user_id
			WHERE f.follower_id = $1
			UNION ALL
			SELECT 'review_added', u.user_id, u.name, b.book_id, b.title,
				r.rating, NULL::int, r.created_at
			FROM reviews r
			JOIN users u ON r.user_id = u.user_id
			JOIN books b ON r.book_id = b.book_id
			JOIN followers f ON f.followed_id = u.user_id
			WHERE f.follower_id = $1
			UNION ALL
			SELECT 'reading_session', u.user_id, u.name, b.book_id, b.title,
				NULL::numeric, s.duration_min, s.start_time
			FROM reading_sessions s
			JOIN users u ON s.user_id = u.user_id
			JOIN books b ON s.book_id = b.book_id
			JOIN followers f ON f.followed_id = u.user_id
			WHERE f.follower_id = $1
		) activity
		ORDER BY activity_time DESC
		LIMIT $2 OFFSET $3;`,
		followerID, limit, offset,
	)
	if err != nil {
		return nil, errors.New("getting activity feed error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.ActivityEvent, 0, limit)
	for rows.Next() {
		var event entity.ActivityEvent
		err = rows.Scan(
			&event.Kind,
			&event.UserID,
			&event.UserName,
			&event.BookID,
			&event.BookTitle,
			&event.Rating,
			&event.DurationMin,
			&event.ActivityTime,
		)
		if err != nil {
			return nil, errors.New("activity row parsing error: " + err.Error())
		}
		result = append(result, &event)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected activity rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (fr *FollowsRepository) listRelated(ctx context.Context, query string, userID uuid.UUID, limit, offset int) ([]*entity.User, error) {
	rows, err := fr.conn.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, errors.New("listing related users error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.User, 0, limit)
	for rows.Next() {
		var user entity.User
		err = rows.Scan(
			&user.ID,
			&user.Email,
			&user.Name,
			&user.CurrentStreak,
			&user.LastStreak,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, errors.New("related user row parsing error: " + err.Error())
		}
		result = append(result, &user)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected related user rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (fr *FollowsRepository) countRelated(ctx context.Context, query string, userID uuid.UUID) (int, error) {
	var count int
	row := fr.conn.QueryRow(ctx, query, userID)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("counting related users error: " + err.Error())
	}
	return count, nil
}
