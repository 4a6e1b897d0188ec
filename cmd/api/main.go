package main

import (
	"context"

	"go.uber.org/zap"

	"taskboard/config"
	"taskboard/internal/auth"
	"taskboard/internal/handler"
	"taskboard/internal/httpserver"
	"taskboard/internal/mq"
	"taskboard/internal/realtime"
	"taskboard/internal/repository"
	"taskboard/internal/service/invitation"
	"taskboard/internal/service/task"
	"taskboard/internal/service/user"
	"taskboard/pkg/db"
	"taskboard/pkg/logger"
	"taskboard/pkg/redisclient"
)

func main() {
	// Load config
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// Init Redis
	rdb := redisclient.New(cfg.Redis)
	defer rdb.Close()

	// Init RabbitMQ Publisher. Broken MQ keeps the API up; notification
	// events are best effort.
	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		log.Warn("MQ initialization failed, events disabled", zap.Error(err))
		publisher = nil
	} else {
		defer publisher.Close()
	}

	// Init Repositories
	userRepo := repository.NewUserRepository(dbConn)
	boardRepo := repository.NewBoardRepository(dbConn)
	projectRepo := repository.NewProjectRepository(dbConn)
	columnRepo := repository.NewColumnRepository(dbConn)
	taskRepo := repository.NewTaskRepository(dbConn)
	commentRepo := repository.NewCommentRepository(dbConn)
	labelRepo := repository.NewLabelRepository(dbConn)
	notificationRepo := repository.NewNotificationRepository(dbConn)
	invitationRepo := repository.NewInvitationRepository(dbConn)
	assignmentRepo := repository.NewAssignmentRepository(dbConn)
	profileRepo := repository.NewProfileRepository(dbConn)
	auditRepo := repository.NewAuditRepository(dbConn)

	// Realtime: local hub plus a redis bridge so every instance sees
	// every event.
	hub := realtime.NewHub(log)
	bridge := realtime.NewRedisBridge(rdb, cfg.Redis.Channel, hub, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bridge.Run(ctx)

	// Init Services
	tokens := auth.NewTokenService(cfg.JWT.Secret)
	userService := user.NewService(userRepo, boardRepo, tokens, log)
	taskService := task.NewService(taskRepo, bridge, log)

	var events invitation.EventPublisher
	if publisher != nil {
		events = publisher
	}
	invitationService := invitation.NewService(invitationRepo, notificationRepo, events, log)

	// Init Handlers
	authHandler := handler.NewAuthHandler(userService, log)
	taskHandler := handler.NewTaskHandler(taskRepo, taskService, log)
	boardHandler := handler.NewBoardHandler(boardRepo, log)
	projectHandler := handler.NewProjectHandler(projectRepo, log)
	columnHandler := handler.NewColumnHandler(columnRepo, log)
	commentHandler := handler.NewCommentHandler(commentRepo, log)
	labelHandler := handler.NewLabelHandler(labelRepo, log)
	notificationHandler := handler.NewNotificationHandler(notificationRepo, invitationService, log)
	invitationHandler := handler.NewInvitationHandler(invitationRepo, invitationService, log)
	assignmentHandler := handler.NewAssignmentHandler(assignmentRepo, log)
	profileHandler := handler.NewProfileHandler(profileRepo, log)
	userHandler := handler.NewUserHandler(userRepo, userService, log)
	auditHandler := handler.NewAuditHandler(auditRepo, log)

	// Router
	router := httpserver.NewRouter(httpserver.Deps{
		Auth:          authHandler,
		Tasks:         taskHandler,
		Boards:        boardHandler,
		Projects:      projectHandler,
		Columns:       columnHandler,
		Comments:      commentHandler,
		Labels:        labelHandler,
		Notifications: notificationHandler,
		Invitations:   invitationHandler,
		Assignments:   assignmentHandler,
		Profiles:      profileHandler,
		Users:         userHandler,
		Audit:         auditHandler,

		Tokens:    tokens,
		Resolver:  userRepo,
		Hub:       hub,
		DB:        dbConn,
		Publisher: publisher,
		JWTSecret: cfg.JWT.Secret,
		Logger:    log,
	})

	// Start API server
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
