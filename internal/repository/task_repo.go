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

// TaskRepository invokes the task stored procedures. One method per
// procedure, parameter order preserved.
type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("obtener_tareas", time.Since(start)) }()

	rows, err := r.db.Query(ctx, `SELECT * FROM obtener_tareas()`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.TareaID, &t.ProyectoID, &t.Titulo, &t.Descripcion,
			&t.Importancia, &t.Estado, &t.FechaVencimiento,
			&t.FechaCreacion, &t.UltimaActualizacion,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) GetByID(ctx context.Context, id int) (*model.Task, error) {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("obtener_tarea_por_id", time.Since(start)) }()

	var t model.Task
	err := r.db.QueryRow(ctx, `SELECT * FROM obtener_tarea_por_id($1)`, id).Scan(
		&t.TareaID, &t.ProyectoID, &t.Titulo, &t.Descripcion,
		&t.Importancia, &t.Estado, &t.FechaVencimiento,
		&t.FechaCreacion, &t.UltimaActualizacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Create persists a new task and fills in the generated ID.
func (r *TaskRepository) Create(ctx context.Context, t *model.Task) error {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("crear_tarea", time.Since(start)) }()

	return r.db.QueryRow(ctx,
		`SELECT crear_tarea($1, $2, $3, $4, $5, $6)`,
		t.ProyectoID, t.Titulo, t.Descripcion, t.Importancia, t.Estado, t.FechaVencimiento,
	).Scan(&t.TareaID)
}

func (r *TaskRepository) Update(ctx context.Context, t *model.Task) error {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("actualizar_tarea", time.Since(start)) }()

	_, err := r.db.Exec(ctx,
		`SELECT actualizar_tarea($1, $2, $3, $4, $5, $6, $7)`,
		t.TareaID, t.ProyectoID, t.Titulo, t.Descripcion, t.Importancia, t.Estado, t.FechaVencimiento,
	)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	start := time.Now()
	defer func() { metrics.RecordDBQueryDuration("eliminar_tarea", time.Since(start)) }()

	_, err := r.db.Exec(ctx, `SELECT eliminar_tarea($1)`, id)
	return err
}

func (r *TaskRepository) AddMember(ctx context.Context, taskID, userID int) error {
	_, err := r.db.Exec(ctx, `SELECT anadir_miembro($1, $2)`, taskID, userID)
	return err
}

func (r *TaskRepository) AddLabel(ctx context.Context, taskID int, name string) error {
	_, err := r.db.Exec(ctx, `SELECT anadir_etiqueta($1, $2)`, taskID, name)
	return err
}

func (r *TaskRepository) AddChecklistItem(ctx context.Context, taskID int, title string) error {
	_, err := r.db.Exec(ctx, `SELECT anadir_checklist($1, $2)`, taskID, title)
	return err
}

func (r *TaskRepository) AddDueDate(ctx context.Context, taskID int, dueDate time.Time) error {
	_, err := r.db.Exec(ctx, `SELECT anadir_fecha($1, $2)`, taskID, dueDate)
	return err
}

func (r *TaskRepository) AddAttachment(ctx context.Context, taskID int, file string) error {
	_, err := r.db.Exec(ctx, `SELECT anadir_adjunto($1, $2)`, taskID, file)
	return err
}

func (r *TaskRepository) AddCover(ctx context.Context, taskID, coverID int) error {
	_, err := r.db.Exec(ctx, `SELECT anadir_portada($1, $2)`, taskID, coverID)
	return err
}
