package invitation

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"taskboard/internal/model"
	"taskboard/internal/mq"
	"taskboard/pkg/metrics"
)

type InvitationGateway interface {
	Create(ctx context.Context, i *model.Invitation, sentAt time.Time) error
}

type NotificationGateway interface {
	Create(ctx context.Context, n *model.Notification) error
}

type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// Service creates invitations and emits the notification to the
// destination user. The invitation insert and the notification insert
// are two sequential writes with no shared transaction: if the second
// fails the invitation stays behind without its notification. Known
// gap, kept deliberately.
type Service struct {
	invitations   InvitationGateway
	notifications NotificationGateway
	events        EventPublisher
	logger        *zap.Logger
}

func NewService(invitations InvitationGateway, notifications NotificationGateway, events EventPublisher, logger *zap.Logger) *Service {
	return &Service{
		invitations:   invitations,
		notifications: notifications,
		events:        events,
		logger:        logger,
	}
}

// Create persists a pending invitation from origin to destination and
// notifies the destination user.
func (s *Service) Create(ctx context.Context, originID, destinationID int) (*model.Invitation, error) {
	now := time.Now()
	inv := &model.Invitation{
		UsuarioOrigenID:  originID,
		UsuarioDestinoID: destinationID,
		Estado:           model.InvitationPending,
		FechaEnvio:       now,
	}
	if err := s.invitations.Create(ctx, inv, now); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	message := fmt.Sprintf("Has recibido una nueva invitación de %d", originID)
	if _, err := s.Notify(ctx, destinationID, message); err != nil {
		return nil, err
	}

	s.logger.Info("invitation created",
		zap.Int("invitation_id", inv.InvitacionID),
		zap.Int("origin_id", originID),
		zap.Int("destination_id", destinationID),
	)
	return inv, nil
}

// Notify inserts an unread notification for the user and, on success,
// publishes a notification.created event for downstream delivery. The
// MQ publish is best-effort; its failure is logged, never returned.
func (s *Service) Notify(ctx context.Context, userID int, message string) (int, error) {
	n := &model.Notification{
		UsuarioID: userID,
		Mensaje:   message,
		Leida:     false,
		Fecha:     time.Now(),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		metrics.IncrementNotificationEmitted("failed")
		return 0, fmt.Errorf("failed to create notification: %w", err)
	}
	metrics.IncrementNotificationEmitted("success")

	if s.events != nil {
		payload := mq.NotificationCreatedPayload{
			NotificationID: n.NotificacionID,
			UserID:         n.UsuarioID,
			Message:        n.Mensaje,
			CreatedAt:      n.Fecha,
		}
		if err := s.events.Publish(mq.RoutingKeyNotificationCreated, payload); err != nil {
			s.logger.Warn("failed to publish notification.created event",
				zap.Int("notification_id", n.NotificacionID),
				zap.Error(err),
			)
		}
	}

	return n.NotificacionID, nil
}
