package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
)

type InvitationRepository struct {
	db *pgxpool.Pool
}

func NewInvitationRepository(db *pgxpool.Pool) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) List(ctx context.Context) ([]model.Invitation, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM obtener_todas_las_invitaciones()`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []model.Invitation
	for rows.Next() {
		var i model.Invitation
		if err := rows.Scan(
			&i.InvitacionID, &i.UsuarioOrigenID, &i.UsuarioDestinoID,
			&i.Estado, &i.FechaEnvio, &i.FechaAceptacion,
		); err != nil {
			return nil, err
		}
		invitations = append(invitations, i)
	}
	return invitations, rows.Err()
}

func (r *InvitationRepository) GetByID(ctx context.Context, id int) (*model.Invitation, error) {
	var i model.Invitation
	err := r.db.QueryRow(ctx, `SELECT * FROM obtener_invitacion_por_id($1)`, id).Scan(
		&i.InvitacionID, &i.UsuarioOrigenID, &i.UsuarioDestinoID,
		&i.Estado, &i.FechaEnvio, &i.FechaAceptacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *InvitationRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT verificar_invitacion_existente($1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create inserts a pending invitation with its send timestamp and fills
// in the generated ID.
func (r *InvitationRepository) Create(ctx context.Context, i *model.Invitation, sentAt time.Time) error {
	return r.db.QueryRow(ctx,
		`SELECT crear_invitacion($1, $2, $3, $4)`,
		i.UsuarioOrigenID, i.UsuarioDestinoID, i.Estado, sentAt,
	).Scan(&i.InvitacionID)
}

func (r *InvitationRepository) Update(ctx context.Context, id int, estado string) error {
	_, err := r.db.Exec(ctx, `SELECT actualizar_invitacion($1, $2)`, id, estado)
	return err
}

func (r *InvitationRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `SELECT eliminar_invitacion($1)`, id)
	return err
}
