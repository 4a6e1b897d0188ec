package invitation

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"taskboard/internal/model"
	"taskboard/internal/mq"
)

type fakeInvitationGateway struct {
	created []*model.Invitation
	nextID  int
}

func (g *fakeInvitationGateway) Create(_ context.Context, i *model.Invitation, _ time.Time) error {
	g.nextID++
	i.InvitacionID = g.nextID
	g.created = append(g.created, i)
	return nil
}

type fakeNotificationGateway struct {
	created []*model.Notification
	nextID  int
	err     error
}

func (g *fakeNotificationGateway) Create(_ context.Context, n *model.Notification) error {
	if g.err != nil {
		return g.err
	}
	g.nextID++
	n.NotificacionID = g.nextID
	g.created = append(g.created, n)
	return nil
}

type fakePublisher struct {
	published []struct {
		routingKey string
		payload    any
	}
	err error
}

func (p *fakePublisher) Publish(routingKey string, payload any) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, struct {
		routingKey string
		payload    any
	}{routingKey, payload})
	return nil
}

func TestCreateInvitationNotifiesDestination(t *testing.T) {
	invitations := &fakeInvitationGateway{}
	notifications := &fakeNotificationGateway{}
	publisher := &fakePublisher{}
	svc := NewService(invitations, notifications, publisher, zap.NewNop())

	inv, err := svc.Create(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if inv.Estado != model.InvitationPending {
		t.Errorf("expected state %q, got %q", model.InvitationPending, inv.Estado)
	}
	if inv.UsuarioOrigenID != 1 || inv.UsuarioDestinoID != 2 {
		t.Errorf("unexpected invitation endpoints: %+v", inv)
	}

	if len(notifications.created) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications.created))
	}
	n := notifications.created[0]
	if n.UsuarioID != 2 {
		t.Errorf("notification went to user %d, expected 2", n.UsuarioID)
	}
	if n.Leida {
		t.Error("new notification must be unread")
	}
	if n.Mensaje != "Has recibido una nueva invitación de 1" {
		t.Errorf("unexpected message %q", n.Mensaje)
	}

	if len(publisher.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(publisher.published))
	}
	if publisher.published[0].routingKey != mq.RoutingKeyNotificationCreated {
		t.Errorf("unexpected routing key %q", publisher.published[0].routingKey)
	}
	payload, ok := publisher.published[0].payload.(mq.NotificationCreatedPayload)
	if !ok {
		t.Fatalf("unexpected payload type %T", publisher.published[0].payload)
	}
	if payload.UserID != 2 || payload.NotificationID != n.NotificacionID {
		t.Errorf("unexpected payload %+v", payload)
	}
}

func TestCreateInvitationSurvivesNotificationFailure(t *testing.T) {
	invitations := &fakeInvitationGateway{}
	notifications := &fakeNotificationGateway{err: errors.New("db down")}
	svc := NewService(invitations, notifications, &fakePublisher{}, zap.NewNop())

	_, err := svc.Create(context.Background(), 1, 2)
	if err == nil {
		t.Fatal("expected error when the notification insert fails")
	}

	// The invitation insert is not rolled back.
	if len(invitations.created) != 1 {
		t.Errorf("expected the invitation to stay behind, got %d", len(invitations.created))
	}
}

func TestNotifyToleratesPublishFailure(t *testing.T) {
	notifications := &fakeNotificationGateway{}
	publisher := &fakePublisher{err: errors.New("mq down")}
	svc := NewService(&fakeInvitationGateway{}, notifications, publisher, zap.NewNop())

	id, err := svc.Notify(context.Background(), 7, "hola")
	if err != nil {
		t.Fatalf("Notify returned error: %v", err)
	}
	if id == 0 {
		t.Error("expected a notification id")
	}
	if len(notifications.created) != 1 {
		t.Errorf("expected 1 notification, got %d", len(notifications.created))
	}
}

func TestNotifyWithoutPublisher(t *testing.T) {
	notifications := &fakeNotificationGateway{}
	svc := NewService(&fakeInvitationGateway{}, notifications, nil, zap.NewNop())

	if _, err := svc.Notify(context.Background(), 7, "hola"); err != nil {
		t.Fatalf("Notify returned error: %v", err)
	}
}
