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

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM obtener_usuarios()`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.UsuarioID, &u.Nombre, &u.Apellido, &u.CorreoElectronico,
			&u.Telefono, &u.ImagenPerfil, &u.PasswordHash, &u.DefaultBoardID,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("obtener_usuario_por_id", time.Since(start)) }()

	var u model.User
	err := r.db.QueryRow(ctx, `SELECT * FROM obtener_usuario_por_id($1)`, id).Scan(
		&u.UsuarioID, &u.Nombre, &u.Apellido, &u.CorreoElectronico,
		&u.Telefono, &u.ImagenPerfil, &u.PasswordHash, &u.DefaultBoardID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("obtener_usuario_por_correo", time.Since(start)) }()

	var u model.User
	err := r.db.QueryRow(ctx, `SELECT * FROM obtener_usuario_por_correo($1)`, email).Scan(
		&u.UsuarioID, &u.Nombre, &u.Apellido, &u.CorreoElectronico,
		&u.Telefono, &u.ImagenPerfil, &u.PasswordHash, &u.DefaultBoardID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Create registers a user and fills in the generated ID.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("registrar_usuario", time.Since(start)) }()

	return r.db.QueryRow(ctx,
		`SELECT registrar_usuario($1, $2, $3, $4, $5, $6)`,
		u.Nombre, u.Apellido, u.CorreoElectronico, u.Telefono, u.ImagenPerfil, u.PasswordHash,
	).Scan(&u.UsuarioID)
}

func (r *UserRepository) Update(ctx context.Context, u *model.User) error {
	_, err := r.db.Exec(ctx,
		`SELECT actualizar_usuario($1, $2, $3, $4, $5, $6, $7)`,
		u.UsuarioID, u.Nombre, u.Apellido, u.CorreoElectronico, u.Telefono, u.ImagenPerfil, u.PasswordHash,
	)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `SELECT eliminar_usuario($1)`, id)
	return err
}

// SetDefaultBoard links the auto-created board to its owner.
func (r *UserRepository) SetDefaultBoard(ctx context.Context, userID, boardID int) error {
	_, err := r.db.Exec(ctx, `SELECT asignar_tablero_predeterminado($1, $2)`, userID, boardID)
	return err
}
