package repo

import (
	"context"

	dom "github.com/ClarkAshida/Kanban-API/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepo provides notification persistence.
type NotificationRepo interface {
	Create(ctx context.Context, n dom.Notification) (dom.Notification, error)
	GetByID(ctx context.Context, id int64) (dom.Notification, error)
	ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]dom.Notification, error)
	MarkRead(ctx context.Context, id int64) (dom.Notification, error)
	Delete(ctx context.Context, id int64) error
}

// PGNotificationRepo implements NotificationRepo with Postgres.
type PGNotificationRepo struct {
	db *pgxpool.Pool
}

func NewPGNotificationRepo(db *pgxpool.Pool) *PGNotificationRepo {
	return &PGNotificationRepo{db: db}
}

const notificationColumns = `id, user_id, notification_type, message, read, created_at`

func scanNotification(row interface{ Scan(...any) error }) (dom.Notification, error) {
	var n dom.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.Read, &n.CreatedAt)
	return n, err
}

func (r *PGNotificationRepo) Create(ctx context.Context, n dom.Notification) (dom.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, notification_type, message)
		VALUES ($1, $2, $3)
		RETURNING ` + notificationColumns
	return scanNotification(r.db.QueryRow(ctx, query, n.UserID, n.Type, n.Message))
}

func (r *PGNotificationRepo) GetByID(ctx context.Context, id int64) (dom.Notification, error) {
	return scanNotification(r.db.QueryRow(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id))
}

func (r *PGNotificationRepo) ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]dom.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1`
	if unreadOnly {
		query += ` AND read = FALSE`
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *PGNotificationRepo) MarkRead(ctx context.Context, id int64) (dom.Notification, error) {
	query := `
		UPDATE notifications SET read = TRUE
		WHERE id = $1
		RETURNING ` + notificationColumns
	return scanNotification(r.db.QueryRow(ctx, query, id))
}

func (r *PGNotificationRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	return err
}
