package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) List(ctx context.Context) ([]model.Profile, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM obtener_perfiles_usuario()`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []model.Profile
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(
			&p.PerfilID, &p.UsuarioID, &p.Editable, &p.Biografia, &p.Intereses, &p.Ocupacion,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *ProfileRepository) GetByID(ctx context.Context, id int) (*model.Profile, error) {
	var p model.Profile
	err := r.db.QueryRow(ctx, `SELECT * FROM obtener_perfil_usuario_por_id($1)`, id).Scan(
		&p.PerfilID, &p.UsuarioID, &p.Editable, &p.Biografia, &p.Intereses, &p.Ocupacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT verificar_perfil_usuario_existente($1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ProfileRepository) Create(ctx context.Context, p *model.Profile) error {
	return r.db.QueryRow(ctx,
		`SELECT crear_perfil_usuario($1, $2, $3, $4, $5)`,
		p.UsuarioID, p.Editable, p.Biografia, p.Intereses, p.Ocupacion,
	).Scan(&p.PerfilID)
}

func (r *ProfileRepository) Update(ctx context.Context, p *model.Profile) error {
	_, err := r.db.Exec(ctx,
		`SELECT actualizar_perfil_usuario($1, $2, $3, $4, $5, $6)`,
		p.PerfilID, p.UsuarioID, p.Editable, p.Biografia, p.Intereses, p.Ocupacion,
	)
	return err
}

func (r *ProfileRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `SELECT eliminar_perfil_usuario($1)`, id)
	return err
}
