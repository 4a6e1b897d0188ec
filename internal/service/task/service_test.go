package task

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
	"taskboard/internal/realtime"
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

type fakeGateway struct {
	tasks  map[int]*model.Task
	nextID int

	createCalls int
	addCalls    int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{tasks: map[int]*model.Task{}, nextID: 1}
}

func (g *fakeGateway) GetByID(_ context.Context, id int) (*model.Task, error) {
	t, ok := g.tasks[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (g *fakeGateway) Create(_ context.Context, t *model.Task) error {
	g.createCalls++
	t.TareaID = g.nextID
	g.nextID++
	cp := *t
	g.tasks[t.TareaID] = &cp
	return nil
}

func (g *fakeGateway) Update(_ context.Context, t *model.Task) error {
	cp := *t
	g.tasks[t.TareaID] = &cp
	return nil
}

func (g *fakeGateway) Delete(_ context.Context, id int) error {
	delete(g.tasks, id)
	return nil
}

func (g *fakeGateway) AddMember(_ context.Context, _, _ int) error      { g.addCalls++; return nil }
func (g *fakeGateway) AddLabel(_ context.Context, _ int, _ string) error {
	g.addCalls++
	return nil
}
func (g *fakeGateway) AddChecklistItem(_ context.Context, _ int, _ string) error {
	g.addCalls++
	return nil
}
func (g *fakeGateway) AddDueDate(_ context.Context, _ int, _ time.Time) error {
	g.addCalls++
	return nil
}
func (g *fakeGateway) AddAttachment(_ context.Context, _ int, _ string) error {
	g.addCalls++
	return nil
}
func (g *fakeGateway) AddCover(_ context.Context, _, _ int) error { g.addCalls++; return nil }

func newTestService() (*Service, *fakeGateway, *recorderBroadcaster) {
	gw := newFakeGateway()
	rec := &recorderBroadcaster{}
	return NewService(gw, rec, zap.NewNop()), gw, rec
}

func TestCreateBroadcastsNewTask(t *testing.T) {
	svc, _, rec := newTestService()

	created, err := svc.Create(context.Background(), CreateRequest{
		ProyectoID: 1,
		Titulo:     "T",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if created.TareaID == 0 {
		t.Error("expected a generated task id")
	}
	if created.Importancia != 1 {
		t.Errorf("expected default importance 1, got %d", created.Importancia)
	}
	if created.Estado != model.TaskStatePending {
		t.Errorf("expected default state %q, got %q", model.TaskStatePending, created.Estado)
	}

	if len(rec.events) != 1 {
		t.Fatalf("expected 1 broadcast event, got %d", len(rec.events))
	}
	if rec.events[0].event != realtime.EventNewTask {
		t.Errorf("expected event %q, got %q", realtime.EventNewTask, rec.events[0].event)
	}
	ev, ok := rec.events[0].payload.(taskEvent)
	if !ok {
		t.Fatalf("unexpected payload type %T", rec.events[0].payload)
	}
	if ev.Task.TareaID != created.TareaID {
		t.Errorf("broadcast task id %d does not match created id %d", ev.Task.TareaID, created.TareaID)
	}
}

func TestCreateValidationFailureDoesNotPersistOrBroadcast(t *testing.T) {
	svc, gw, rec := newTestService()

	_, err := svc.Create(context.Background(), CreateRequest{ProyectoID: 1, Titulo: "   "})
	ve, ok := apperr.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, found := ve.Fields["Titulo"]; !found {
		t.Errorf("expected Titulo field error, got %v", ve.Fields)
	}
	if gw.createCalls != 0 {
		t.Errorf("expected no create call, got %d", gw.createCalls)
	}
	if len(rec.events) != 0 {
		t.Errorf("expected no broadcast, got %d events", len(rec.events))
	}
}

func TestCreateRejectsOutOfRangeImportance(t *testing.T) {
	svc, _, _ := newTestService()

	var req CreateRequest
	if err := json.Unmarshal([]byte(`{"ProyectoID":1,"Titulo":"T","Importancia":9}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	_, err := svc.Create(context.Background(), req)
	ve, ok := apperr.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, found := ve.Fields["Importancia"]; !found {
		t.Errorf("expected Importancia field error, got %v", ve.Fields)
	}
}

func TestImportanceCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{`{"ProyectoID":1,"Titulo":"T","Importancia":"3"}`, 3},
		{`{"ProyectoID":1,"Titulo":"T","Importancia":" 2 "}`, 2},
		{`{"ProyectoID":1,"Titulo":"T","Importancia":"abc"}`, 1},
		{`{"ProyectoID":1,"Titulo":"T","Importancia":true}`, 1},
		{`{"ProyectoID":1,"Titulo":"T"}`, 1},
	}

	for _, tc := range cases {
		svc, _, _ := newTestService()
		var req CreateRequest
		if err := json.Unmarshal([]byte(tc.raw), &req); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		created, err := svc.Create(context.Background(), req)
		if err != nil {
			t.Fatalf("Create for %s returned error: %v", tc.raw, err)
		}
		if created.Importancia != tc.want {
			t.Errorf("payload %s: expected importance %d, got %d", tc.raw, tc.want, created.Importancia)
		}
	}
}

func TestUpdatePartialKeepsStoredFields(t *testing.T) {
	svc, gw, rec := newTestService()

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	gw.tasks[10] = &model.Task{
		TareaID:          10,
		ProyectoID:       3,
		Titulo:           "Original",
		Descripcion:      "keep me",
		Importancia:      4,
		Estado:           model.TaskStatePending,
		FechaVencimiento: &due,
	}

	var req UpdateRequest
	if err := json.Unmarshal([]byte(`{"Estado":"completada"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	updated, err := svc.Update(context.Background(), 10, req)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.Estado != model.TaskStateCompleted {
		t.Errorf("expected state %q, got %q", model.TaskStateCompleted, updated.Estado)
	}
	if updated.Titulo != "Original" || updated.Descripcion != "keep me" || updated.Importancia != 4 {
		t.Errorf("omitted fields were not preserved: %+v", updated)
	}
	if updated.FechaVencimiento == nil || !updated.FechaVencimiento.Equal(due) {
		t.Errorf("due date was not preserved: %v", updated.FechaVencimiento)
	}

	if len(rec.events) != 1 || rec.events[0].event != realtime.EventUpdateTask {
		t.Errorf("expected one update_task event, got %+v", rec.events)
	}
}

func TestUpdateMissingTask(t *testing.T) {
	svc, _, rec := newTestService()

	titulo := "New"
	_, err := svc.Update(context.Background(), 99, UpdateRequest{Titulo: &titulo})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(rec.events) != 0 {
		t.Errorf("expected no broadcast, got %d events", len(rec.events))
	}
}

func TestDeleteBroadcastsTaskID(t *testing.T) {
	svc, gw, rec := newTestService()
	gw.tasks[5] = &model.Task{TareaID: 5, ProyectoID: 1, Titulo: "T"}

	if err := svc.Delete(context.Background(), 5); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := gw.tasks[5]; ok {
		t.Error("task was not deleted")
	}

	if len(rec.events) != 1 || rec.events[0].event != realtime.EventDeleteTask {
		t.Fatalf("expected one delete_task event, got %+v", rec.events)
	}
	ev, ok := rec.events[0].payload.(taskDeletedEvent)
	if !ok {
		t.Fatalf("unexpected payload type %T", rec.events[0].payload)
	}
	if ev.TaskID != 5 {
		t.Errorf("expected task id 5, got %d", ev.TaskID)
	}
}

func TestDeleteMissingTask(t *testing.T) {
	svc, _, rec := newTestService()

	if err := svc.Delete(context.Background(), 123); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(rec.events) != 0 {
		t.Errorf("expected no broadcast, got %d events", len(rec.events))
	}
}

func TestAttachOperationsDoNotBroadcast(t *testing.T) {
	svc, gw, rec := newTestService()
	gw.tasks[1] = &model.Task{TareaID: 1, ProyectoID: 1, Titulo: "T"}

	ops := []func() error{
		func() error { return svc.AddMember(context.Background(), 1, 2) },
		func() error { return svc.AddLabel(context.Background(), 1, "urgente") },
		func() error { return svc.AddChecklistItem(context.Background(), 1, "paso 1") },
		func() error { return svc.AddDueDate(context.Background(), 1, "2026-09-01") },
		func() error { return svc.AddAttachment(context.Background(), 1, "doc.pdf") },
		func() error { return svc.AddCover(context.Background(), 1, 3) },
	}
	for i, op := range ops {
		if err := op(); err != nil {
			t.Fatalf("op %d returned error: %v", i, err)
		}
	}

	if gw.addCalls != len(ops) {
		t.Errorf("expected %d gateway writes, got %d", len(ops), gw.addCalls)
	}
	if len(rec.events) != 0 {
		t.Errorf("attach operations must not broadcast, got %d events", len(rec.events))
	}
}

func TestAttachOperationValidation(t *testing.T) {
	svc, gw, _ := newTestService()
	gw.tasks[1] = &model.Task{TareaID: 1, ProyectoID: 1, Titulo: "T"}

	if err := svc.AddLabel(context.Background(), 1, "  "); err == nil {
		t.Error("expected validation error for blank label")
	}
	if err := svc.AddDueDate(context.Background(), 1, "not-a-date"); err == nil {
		t.Error("expected validation error for bad date")
	}
	if err := svc.AddMember(context.Background(), 99, 2); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing parent, got %v", err)
	}
}
