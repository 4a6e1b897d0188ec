package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
)

type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM obtener_todos_los_proyectos()`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ProyectoID, &p.BoardID, &p.Titulo); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int) (*model.Project, error) {
	var p model.Project
	err := r.db.QueryRow(ctx, `SELECT * FROM obtener_proyecto_por_id($1)`, id).
		Scan(&p.ProyectoID, &p.BoardID, &p.Titulo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT verificar_proyecto_existente($1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *model.Project) error {
	return r.db.QueryRow(ctx,
		`SELECT crear_proyecto($1, $2)`, p.BoardID, p.Titulo,
	).Scan(&p.ProyectoID)
}

func (r *ProjectRepository) Update(ctx context.Context, id, boardID int, titulo string) error {
	_, err := r.db.Exec(ctx, `SELECT actualizar_proyecto($1, $2, $3)`, id, boardID, titulo)
	return err
}

func (r *ProjectRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `SELECT eliminar_proyecto($1)`, id)
	return err
}
