package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
	"taskboard/internal/realtime"
	"taskboard/internal/service/task"
)

type recordedEvent struct {
	event   string
	payload any
}

type recorderBroadcaster struct {
	events []recordedEvent
}

func (r *recorderBroadcaster) Publish(event string, payload any) {
	r.events = append(r.events, recordedEvent{event: event, payload: payload})
}

type fakeTaskStore struct {
	tasks  map[int]*model.Task
	nextID int
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: map[int]*model.Task{}, nextID: 1}
}

func (s *fakeTaskStore) List(_ context.Context) ([]model.Task, error) {
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, *t)
	}
	return out, nil
}

func (s *fakeTaskStore) GetByID(_ context.Context, id int) (*model.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *fakeTaskStore) Create(_ context.Context, t *model.Task) error {
	t.TareaID = s.nextID
	s.nextID++
	cp := *t
	s.tasks[t.TareaID] = &cp
	return nil
}

func (s *fakeTaskStore) Update(_ context.Context, t *model.Task) error {
	cp := *t
	s.tasks[t.TareaID] = &cp
	return nil
}

func (s *fakeTaskStore) Delete(_ context.Context, id int) error {
	delete(s.tasks, id)
	return nil
}

func (s *fakeTaskStore) AddMember(_ context.Context, _, _ int) error          { return nil }
func (s *fakeTaskStore) AddLabel(_ context.Context, _ int, _ string) error    { return nil }
func (s *fakeTaskStore) AddChecklistItem(_ context.Context, _ int, _ string) error {
	return nil
}
func (s *fakeTaskStore) AddDueDate(_ context.Context, _ int, _ time.Time) error { return nil }
func (s *fakeTaskStore) AddAttachment(_ context.Context, _ int, _ string) error { return nil }
func (s *fakeTaskStore) AddCover(_ context.Context, _, _ int) error             { return nil }

func newTaskRouter() (*gin.Engine, *fakeTaskStore, *recorderBroadcaster) {
	gin.SetMode(gin.TestMode)
	store := newFakeTaskStore()
	rec := &recorderBroadcaster{}
	svc := task.NewService(store, rec, zap.NewNop())
	h := NewTaskHandler(store, svc, zap.NewNop())

	r := gin.New()
	r.GET("/tareas", h.List)
	r.GET("/tareas/:id", h.Get)
	r.POST("/tareas", h.Create)
	r.PUT("/tareas/:id", h.Update)
	r.DELETE("/tareas/:id", h.Delete)
	r.POST("/tareas/:id/etiquetas", h.AddLabel)
	return r, store, rec
}

func TestCreateTaskEndpoint(t *testing.T) {
	r, _, rec := newTaskRouter()

	body := `{"ProyectoID":1,"Titulo":"T"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tareas", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created model.Task
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.TareaID == 0 {
		t.Error("expected a generated task id")
	}
	if created.Importancia != 1 {
		t.Errorf("expected importance 1, got %d", created.Importancia)
	}
	if created.Estado != model.TaskStatePending {
		t.Errorf("expected state %q, got %q", model.TaskStatePending, created.Estado)
	}

	if len(rec.events) != 1 || rec.events[0].event != realtime.EventNewTask {
		t.Errorf("expected one new_task event, got %+v", rec.events)
	}
}

func TestCreateTaskValidationError(t *testing.T) {
	r, store, rec := newTaskRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tareas", bytes.NewBufferString(`{"Titulo":""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var fields map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &fields); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := fields["Titulo"]; !ok {
		t.Errorf("expected Titulo field error, got %v", fields)
	}
	if _, ok := fields["ProyectoID"]; !ok {
		t.Errorf("expected ProyectoID field error, got %v", fields)
	}

	if len(store.tasks) != 0 {
		t.Error("invalid payload must not persist a task")
	}
	if len(rec.events) != 0 {
		t.Error("invalid payload must not broadcast")
	}
}

func TestListTasksEmpty(t *testing.T) {
	r, _, _ := newTaskRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tareas", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an empty collection, got %d", w.Code)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	r, _, _ := newTaskRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tareas/99", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestDeleteTaskEndpoint(t *testing.T) {
	r, store, rec := newTaskRouter()
	store.tasks[5] = &model.Task{TareaID: 5, ProyectoID: 1, Titulo: "T"}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/tareas/5", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if len(rec.events) != 1 || rec.events[0].event != realtime.EventDeleteTask {
		t.Errorf("expected one delete_task event, got %+v", rec.events)
	}
}

func TestUpdateTaskEndpoint(t *testing.T) {
	r, store, rec := newTaskRouter()
	store.tasks[5] = &model.Task{TareaID: 5, ProyectoID: 1, Titulo: "Original", Importancia: 2, Estado: model.TaskStatePending}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/tareas/5", bytes.NewBufferString(`{"Estado":"completada"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	stored := store.tasks[5]
	if stored.Estado != model.TaskStateCompleted {
		t.Errorf("expected state %q, got %q", model.TaskStateCompleted, stored.Estado)
	}
	if stored.Titulo != "Original" || stored.Importancia != 2 {
		t.Errorf("omitted fields were not preserved: %+v", stored)
	}
	if len(rec.events) != 1 || rec.events[0].event != realtime.EventUpdateTask {
		t.Errorf("expected one update_task event, got %+v", rec.events)
	}
}

func TestAddLabelEndpointDoesNotBroadcast(t *testing.T) {
	r, store, rec := newTaskRouter()
	store.tasks[5] = &model.Task{TareaID: 5, ProyectoID: 1, Titulo: "T"}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tareas/5/etiquetas", bytes.NewBufferString(`{"Nombre":"urgente"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(rec.events) != 0 {
		t.Errorf("attach route must not broadcast, got %+v", rec.events)
	}
}
