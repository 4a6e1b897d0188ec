package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
)

type LabelRepository struct {
	db *pgxpool.Pool
}

func NewLabelRepository(db *pgxpool.Pool) *LabelRepository {
	return &LabelRepository{db: db}
}

func (r *LabelRepository) List(ctx context.Context) ([]model.Label, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM obtener_todas_las_etiquetas()`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []model.Label
	for rows.Next() {
		var l model.Label
		if err := rows.Scan(&l.EtiquetaID, &l.Nombre, &l.Color); err != nil {
			return nil, err
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

func (r *LabelRepository) GetByID(ctx context.Context, id int) (*model.Label, error) {
	var l model.Label
	err := r.db.QueryRow(ctx, `SELECT * FROM obtener_etiqueta_por_id($1)`, id).
		Scan(&l.EtiquetaID, &l.Nombre, &l.Color)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *LabelRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT verificar_etiqueta_existente($1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *LabelRepository) Create(ctx context.Context, l *model.Label) error {
	return r.db.QueryRow(ctx,
		`SELECT crear_etiqueta($1, $2)`, l.Nombre, l.Color,
	).Scan(&l.EtiquetaID)
}

func (r *LabelRepository) Update(ctx context.Context, id int, nombre, color string) error {
	_, err := r.db.Exec(ctx, `SELECT actualizar_etiqueta($1, $2, $3)`, id, nombre, color)
	return err
}

func (r *LabelRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `SELECT eliminar_etiqueta($1)`, id)
	return err
}
