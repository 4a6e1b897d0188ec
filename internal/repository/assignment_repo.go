package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
)

type AssignmentRepository struct {
	db *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) List(ctx context.Context) ([]model.Assignment, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM obtener_todas_las_asignaciones()`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []model.Assignment
	for rows.Next() {
		var a model.Assignment
		if err := rows.Scan(&a.AsignacionID, &a.TareaID, &a.UsuarioID); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id int) (*model.Assignment, error) {
	var a model.Assignment
	err := r.db.QueryRow(ctx, `SELECT * FROM obtener_asignacion_por_id($1)`, id).
		Scan(&a.AsignacionID, &a.TareaID, &a.UsuarioID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT verificar_asignacion_existente($1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *AssignmentRepository) Create(ctx context.Context, a *model.Assignment) error {
	return r.db.QueryRow(ctx,
		`SELECT crear_asignacion($1, $2)`, a.TareaID, a.UsuarioID,
	).Scan(&a.AsignacionID)
}

func (r *AssignmentRepository) Update(ctx context.Context, id, taskID, userID int) error {
	_, err := r.db.Exec(ctx, `SELECT actualizar_asignacion($1, $2, $3)`, id, taskID, userID)
	return err
}

func (r *AssignmentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `SELECT eliminar_asignacion($1)`, id)
	return err
}
