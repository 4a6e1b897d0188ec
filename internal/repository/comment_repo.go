package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
)

type CommentRepository struct {
	db *pgxpool.Pool
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) List(ctx context.Context) ([]model.Comment, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM obtener_todos_los_comentarios()`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ComentarioID, &c.TareaID, &c.UsuarioID, &c.Texto, &c.Fecha); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) GetByID(ctx context.Context, id int) (*model.Comment, error) {
	var c model.Comment
	err := r.db.QueryRow(ctx, `SELECT * FROM obtener_comentario_por_id($1)`, id).
		Scan(&c.ComentarioID, &c.TareaID, &c.UsuarioID, &c.Texto, &c.Fecha)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) Create(ctx context.Context, c *model.Comment) error {
	return r.db.QueryRow(ctx,
		`SELECT crear_comentario($1, $2, $3)`, c.TareaID, c.UsuarioID, c.Texto,
	).Scan(&c.ComentarioID)
}

func (r *CommentRepository) Update(ctx context.Context, id int, texto string) error {
	_, err := r.db.Exec(ctx, `SELECT actualizar_comentario($1, $2)`, id, texto)
	return err
}

func (r *CommentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `SELECT eliminar_comentario($1)`, id)
	return err
}
