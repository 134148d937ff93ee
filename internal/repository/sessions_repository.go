package repository

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/pageturn/bookstream/internal/error_values"
	"github.com/pageturn/bookstream/pkg/entity"
)

type SessionsRepository struct {
	conn PgConnection
}

func NewSessionsRepo(conn PgConnection) *SessionsRepository {
	if conn == nil {
		log.Fatal("nil connection provided to sessionsRepo")
	}
	return &SessionsRepository{
		conn: conn,
	}
}

const sessionColumns = `id, user_id, book_id, start_time, end_time, duration_min, created_at`

func (sr *SessionsRepository) Create(ctx context.Context, session *entity.ReadingSession) error {
	if session == nil {
		return errors.New("session is nil")
	}
	_, err := sr.conn.Exec(ctx,
		`INSERT INTO reading_sessions (id, user_id, book_id, start_time, end_time, duration_min) VALUES ($1, $2, $3, $4, $5, $6);`,
		session.ID, session.UserID, session.BookID, session.StartTime, session.EndTime, session.DurationMin,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrBookNotFound
			}
		}
		return errors.New("creating reading session error: " + err.Error())
	}
	return nil
}

func (sr *SessionsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReadingSession, error) {
	row := sr.conn.QueryRow(ctx, `SELECT `+sessionColumns+` FROM reading_sessions WHERE id = $1;`, id)
	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, errors.New("searching session by id error: " + err.Error())
	}
	return session, nil
}

// Close guards the open state in the statement itself: an already closed
// session matches no row, so a concurrent close is rejected at the store.
func (sr *SessionsRepository) Close(ctx context.Context, id uuid.UUID, endTime time.Time, durationMin int) error {
	ct, err := sr.conn.Exec(ctx,
		`UPDATE reading_sessions SET end_time = $1, duration_min = $2 WHERE id = $3 AND end_time IS NULL;`,
		endTime, durationMin, id,
	)
	if err != nil {
		return errors.New("closing reading session error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSessionClosed
	}
	return nil
}

func (sr *SessionsRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter SessionFilter) ([]*entity.ReadingSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM reading_sessions WHERE user_id = $1`
	args := []any{userID}
	if filter.BookID != nil {
		args = append(args, *filter.BookID)
		query += ` AND book_id = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND start_time >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND start_time <= $` + strconv.Itoa(len(args))
	}
	args = append(args, filter.Limit)
	query += ` ORDER BY start_time DESC LIMIT $` + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	query += ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := sr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing reading sessions error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.ReadingSession, 0, filter.Limit)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, errors.New("session row parsing error: " + err.Error())
		}
		result = append(result, session)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected session rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (sr *SessionsRepository) GetWindow(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.ReadingSession, error) {
	rows, err := sr.conn.Query(ctx,
		`SELECT `+sessionColumns+` FROM reading_sessions WHERE user_id = $1 AND start_time >= $2 AND start_time <= $3 ORDER BY start_time;`,
		userID, from, to,
	)
	if err != nil {
		return nil, errors.New("getting session window error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.ReadingSession, 0, 8)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, errors.New("session row parsing error: " + err.Error())
		}
		result = append(result, session)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected session rows error: " + rows.Err().Error())
	}
	return result, nil
}

func scanSession(row pgx.Row) (*entity.ReadingSession, error) {
	var session entity.ReadingSession
	err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.BookID,
		&session.StartTime,
		&session.EndTime,
		&session.DurationMin,
		&session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &session, nil
}
