package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
)

type ColumnRepository struct {
	db *pgxpool.Pool
}

func NewColumnRepository(db *pgxpool.Pool) *ColumnRepository {
	return &ColumnRepository{db: db}
}

func (r *ColumnRepository) List(ctx context.Context) ([]model.Column, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM obtener_todas_las_columnas()`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []model.Column
	for rows.Next() {
		var c model.Column
		if err := rows.Scan(&c.ColumnaID, &c.ProyectoID, &c.ColumnaNombre); err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return columns, rows.Err()
}

func (r *ColumnRepository) GetByID(ctx context.Context, id int) (*model.Column, error) {
	var c model.Column
	err := r.db.QueryRow(ctx, `SELECT * FROM obtener_columna_por_id($1)`, id).
		Scan(&c.ColumnaID, &c.ProyectoID, &c.ColumnaNombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ColumnRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT verificar_columna_existente($1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ColumnRepository) Create(ctx context.Context, c *model.Column) error {
	return r.db.QueryRow(ctx,
		`SELECT crear_columna($1, $2)`, c.ProyectoID, c.ColumnaNombre,
	).Scan(&c.ColumnaID)
}

func (r *ColumnRepository) Update(ctx context.Context, id int, nombre string) error {
	_, err := r.db.Exec(ctx, `SELECT actualizar_columna($1, $2)`, id, nombre)
	return err
}

func (r *ColumnRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `SELECT eliminar_columna($1)`, id)
	return err
}
