package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
	"taskboard/internal/realtime"
)

const dueDateLayout = "2006-01-02"

type Gateway interface {
	GetByID(ctx context.Context, id int) (*model.Task, error)
	Create(ctx context.Context, t *model.Task) error
	Update(ctx context.Context, t *model.Task) error
	Delete(ctx context.Context, id int) error
	AddMember(ctx context.Context, taskID, userID int) error
	AddLabel(ctx context.Context, taskID int, name string) error
	AddChecklistItem(ctx context.Context, taskID int, title string) error
	AddDueDate(ctx context.Context, taskID int, dueDate time.Time) error
	AddAttachment(ctx context.Context, taskID int, file string) error
	AddCover(ctx context.Context, taskID, coverID int) error
}

// Service validates task payloads, applies mutations through the gateway
// and announces top-level mutations on the broadcast channel. The
// existence check and the following write are two separate round trips;
// a concurrent delete in between is not guarded against.
type Service struct {
	tasks     Gateway
	broadcast realtime.Broadcaster
	logger    *zap.Logger
}

func NewService(tasks Gateway, broadcast realtime.Broadcaster, logger *zap.Logger) *Service {
	return &Service{
		tasks:     tasks,
		broadcast: broadcast,
		logger:    logger,
	}
}

type taskEvent struct {
	Task *model.Task `json:"task"`
}

type taskDeletedEvent struct {
	TaskID int `json:"task_id"`
}

type CreateRequest struct {
	ProyectoID       int        `json:"ProyectoID"`
	Titulo           string     `json:"Titulo"`
	Descripcion      string     `json:"Descripcion"`
	Importancia      Importance `json:"Importancia"`
	Estado           string     `json:"Estado"`
	FechaVencimiento *string    `json:"FechaVencimiento"`
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*model.Task, error) {
	ve := &apperr.ValidationError{}

	if req.ProyectoID == 0 {
		ve.Add("ProyectoID", "ProyectoID is required")
	}
	titulo := strings.TrimSpace(req.Titulo)
	if titulo == "" {
		ve.Add("Titulo", "Titulo is required")
	} else if len(titulo) > 100 {
		ve.Add("Titulo", "Titulo must be at most 100 characters")
	}

	importancia := fallbackImportance
	if req.Importancia.Set() {
		importancia = req.Importancia.Value()
		if importancia < 1 || importancia > 5 {
			ve.Add("Importancia", "Importancia must be between 1 and 5")
		}
	}

	estado := req.Estado
	if estado == "" {
		estado = model.TaskStatePending
	} else if !model.ValidTaskState(estado) {
		ve.Add("Estado", "Estado must be one of: pendiente, en_proceso, completada")
	}

	var dueDate *time.Time
	if req.FechaVencimiento != nil && *req.FechaVencimiento != "" {
		d, err := time.Parse(dueDateLayout, *req.FechaVencimiento)
		if err != nil {
			ve.Add("FechaVencimiento", "FechaVencimiento must be a date in YYYY-MM-DD format")
		} else {
			dueDate = &d
		}
	}

	if len(ve.Fields) > 0 {
		return nil, ve
	}

	now := time.Now()
	t := &model.Task{
		ProyectoID:          req.ProyectoID,
		Titulo:              titulo,
		Descripcion:         req.Descripcion,
		Importancia:         importancia,
		Estado:              estado,
		FechaVencimiento:    dueDate,
		FechaCreacion:       now,
		UltimaActualizacion: now,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("task created",
		zap.Int("task_id", t.TareaID),
		zap.Int("project_id", t.ProyectoID),
	)
	s.broadcast.Publish(realtime.EventNewTask, taskEvent{Task: t})

	return t, nil
}

type UpdateRequest struct {
	ProyectoID       *int       `json:"ProyectoID"`
	Titulo           *string    `json:"Titulo"`
	Descripcion      *string    `json:"Descripcion"`
	Importancia      Importance `json:"Importancia"`
	Estado           *string    `json:"Estado"`
	FechaVencimiento *string    `json:"FechaVencimiento"`
}

// Update applies a partial update: every omitted field keeps the value
// currently stored, never a schema default.
func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*model.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ve := &apperr.ValidationError{}

	if req.ProyectoID != nil {
		t.ProyectoID = *req.ProyectoID
	}
	if req.Titulo != nil {
		titulo := strings.TrimSpace(*req.Titulo)
		if titulo == "" {
			ve.Add("Titulo", "Titulo must not be empty")
		} else if len(titulo) > 100 {
			ve.Add("Titulo", "Titulo must be at most 100 characters")
		} else {
			t.Titulo = titulo
		}
	}
	if req.Descripcion != nil {
		t.Descripcion = *req.Descripcion
	}
	if req.Importancia.Set() {
		v := req.Importancia.Value()
		if v < 1 || v > 5 {
			ve.Add("Importancia", "Importancia must be between 1 and 5")
		} else {
			t.Importancia = v
		}
	}
	if req.Estado != nil {
		if !model.ValidTaskState(*req.Estado) {
			ve.Add("Estado", "Estado must be one of: pendiente, en_proceso, completada")
		} else {
			t.Estado = *req.Estado
		}
	}
	if req.FechaVencimiento != nil {
		if *req.FechaVencimiento == "" {
			t.FechaVencimiento = nil
		} else if d, parseErr := time.Parse(dueDateLayout, *req.FechaVencimiento); parseErr != nil {
			ve.Add("FechaVencimiento", "FechaVencimiento must be a date in YYYY-MM-DD format")
		} else {
			t.FechaVencimiento = &d
		}
	}

	if len(ve.Fields) > 0 {
		return nil, ve
	}

	t.UltimaActualizacion = time.Now()
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info("task updated", zap.Int("task_id", t.TareaID))
	s.broadcast.Publish(realtime.EventUpdateTask, taskEvent{Task: t})

	return t, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.tasks.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("task deleted", zap.Int("task_id", id))
	s.broadcast.Publish(realtime.EventDeleteTask, taskDeletedEvent{TaskID: id})

	return nil
}

// The attach operations below require the parent task to exist and
// perform a single additive write. None of them broadcast; only
// top-level create/update/delete do.

func (s *Service) AddMember(ctx context.Context, taskID, userID int) error {
	if userID == 0 {
		return apperr.NewValidation("UsuarioID", "UsuarioID is required")
	}
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return err
	}
	return s.tasks.AddMember(ctx, taskID, userID)
}

func (s *Service) AddLabel(ctx context.Context, taskID int, name string) error {
	if strings.TrimSpace(name) == "" {
		return apperr.NewValidation("Nombre", "Nombre is required")
	}
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return err
	}
	return s.tasks.AddLabel(ctx, taskID, name)
}

func (s *Service) AddChecklistItem(ctx context.Context, taskID int, title string) error {
	if strings.TrimSpace(title) == "" {
		return apperr.NewValidation("Titulo", "Titulo is required")
	}
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return err
	}
	return s.tasks.AddChecklistItem(ctx, taskID, title)
}

func (s *Service) AddDueDate(ctx context.Context, taskID int, dueDate string) error {
	d, err := time.Parse(dueDateLayout, dueDate)
	if err != nil {
		return apperr.NewValidation("FechaVencimiento", "FechaVencimiento must be a date in YYYY-MM-DD format")
	}
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return err
	}
	return s.tasks.AddDueDate(ctx, taskID, d)
}

func (s *Service) AddAttachment(ctx context.Context, taskID int, file string) error {
	if strings.TrimSpace(file) == "" {
		return apperr.NewValidation("Archivo", "Archivo is required")
	}
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return err
	}
	return s.tasks.AddAttachment(ctx, taskID, file)
}

func (s *Service) AddCover(ctx context.Context, taskID, coverID int) error {
	if coverID == 0 {
		return apperr.NewValidation("PortadaID", "PortadaID is required")
	}
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return err
	}
	return s.tasks.AddCover(ctx, taskID, coverID)
}
