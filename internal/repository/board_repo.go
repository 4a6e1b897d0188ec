package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
)

type BoardRepository struct {
	db *pgxpool.Pool
}

func NewBoardRepository(db *pgxpool.Pool) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) List(ctx context.Context) ([]model.Board, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM obtener_todos_los_tableros()`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boards []model.Board
	for rows.Next() {
		var b model.Board
		if err := rows.Scan(&b.BoardID, &b.UsuarioPropietarioID, &b.Titulo); err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

func (r *BoardRepository) GetByID(ctx context.Context, id int) (*model.Board, error) {
	var b model.Board
	err := r.db.QueryRow(ctx, `SELECT * FROM obtener_tablero_por_id($1)`, id).
		Scan(&b.BoardID, &b.UsuarioPropietarioID, &b.Titulo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BoardRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT verificar_tablero_existente($1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *BoardRepository) Create(ctx context.Context, b *model.Board) error {
	return r.db.QueryRow(ctx,
		`SELECT crear_tablero($1, $2)`, b.UsuarioPropietarioID, b.Titulo,
	).Scan(&b.BoardID)
}

func (r *BoardRepository) Update(ctx context.Context, id int, titulo string) error {
	_, err := r.db.Exec(ctx, `SELECT actualizar_tablero($1, $2)`, id, titulo)
	return err
}

func (r *BoardRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `SELECT eliminar_tablero($1)`, id)
	return err
}
