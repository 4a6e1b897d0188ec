package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
	"taskboard/pkg/metrics"
)

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) List(ctx context.Context) ([]model.Notification, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM obtener_todas_las_notificaciones()`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.NotificacionID, &n.UsuarioID, &n.Mensaje, &n.Leida, &n.Fecha); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *NotificationRepository) GetByID(ctx context.Context, id int) (*model.Notification, error) {
	var n model.Notification
	err := r.db.QueryRow(ctx, `SELECT * FROM obtener_notificacion_por_id($1)`, id).
		Scan(&n.NotificacionID, &n.UsuarioID, &n.Mensaje, &n.Leida, &n.Fecha)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT verificar_notificacion_existente($1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create inserts an unread notification and fills in the generated ID.
func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("crear_notificacion", time.Since(start)) }()

	return r.db.QueryRow(ctx,
		`SELECT crear_notificacion($1, $2, $3)`, n.UsuarioID, n.Mensaje, n.Leida,
	).Scan(&n.NotificacionID)
}

func (r *NotificationRepository) Update(ctx context.Context, id int, mensaje string, leida bool) error {
	_, err := r.db.Exec(ctx, `SELECT actualizar_notificacion($1, $2, $3)`, id, mensaje, leida)
	return err
}

func (r *NotificationRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `SELECT eliminar_notificacion($1)`, id)
	return err
}
