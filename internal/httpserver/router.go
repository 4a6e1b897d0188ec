package httpserver

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"taskboard/internal/handler"
	"taskboard/internal/mq"
	"taskboard/internal/realtime"
	"taskboard/pkg/metrics"
	"taskboard/pkg/trace"
)

type Router struct {
	Engine *gin.Engine
}

// Deps carries everything the route table wires together.
type Deps struct {
	Auth          *handler.AuthHandler
	Tasks         *handler.TaskHandler
	Boards        *handler.BoardHandler
	Projects      *handler.ProjectHandler
	Columns       *handler.ColumnHandler
	Comments      *handler.CommentHandler
	Labels        *handler.LabelHandler
	Notifications *handler.NotificationHandler
	Invitations   *handler.InvitationHandler
	Assignments   *handler.AssignmentHandler
	Profiles      *handler.ProfileHandler
	Users         *handler.UserHandler
	Audit         *handler.AuditHandler

	Tokens    TokenVerifier
	Resolver  UserResolver
	Hub       *realtime.Hub
	DB        *pgxpool.Pool
	Publisher *mq.Publisher
	JWTSecret string
	Logger    *zap.Logger
}

func NewRouter(d Deps) *Router {
	r := gin.New()
	r.Use(gin.Recovery())

	// trace + request log + latency metric per request
	r.Use(func(c *gin.Context) {
		traceID := c.GetHeader(trace.HeaderName())
		if traceID == "" {
			traceID = trace.GenerateTraceID()
		}
		c.Request = c.Request.WithContext(trace.WithContext(c.Request.Context(), traceID))
		c.Header(trace.HeaderName(), traceID)

		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		metrics.RecordHTTPRequestDuration(c.Request.Method, path, strconv.Itoa(status), latency)
		d.Logger.Info("HTTP Request",
			zap.String("trace_id", traceID),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	})

	// Health endpoints
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})

	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := d.DB.Ping(ctx); err != nil {
			c.JSON(500, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}

		if d.Publisher != nil && !d.Publisher.IsConnected() {
			c.JSON(500, gin.H{"status": "mq_not_ready"})
			return
		}

		c.JSON(200, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Diagnostic endpoint kept from the legacy surface. It leaks the
	// signing secret to any caller; do not expose it outside dev.
	r.GET("/check_jwt_config", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"secret_key":     d.JWTSecret,
			"algorithm":      "HS256",
			"token_location": "headers",
			"header_name":    "Authorization",
		})
	})

	r.GET("/ws", func(c *gin.Context) {
		d.Hub.Serve(c.Writer, c.Request)
	})

	api := r.Group("/api")

	// Public
	api.POST("/login", d.Auth.Login)
	api.POST("/register", d.Auth.Register)
	api.POST("/usuarios", d.Users.Create)

	// Protected
	auth := api.Group("/")
	auth.Use(AuthMiddleware(d.Tokens, d.Resolver, d.Logger))
	{
		auth.POST("/refresh-token", d.Auth.RefreshToken)
		auth.POST("/logout", d.Auth.Logout)

		auth.GET("/tareas", d.Tasks.List)
		auth.GET("/tareas/:id", d.Tasks.Get)
		auth.POST("/tareas", d.Tasks.Create)
		auth.PUT("/tareas/:id", d.Tasks.Update)
		auth.DELETE("/tareas/:id", d.Tasks.Delete)
		auth.POST("/tareas/:id/miembros", d.Tasks.AddMember)
		auth.POST("/tareas/:id/etiquetas", d.Tasks.AddLabel)
		auth.POST("/tareas/:id/checklist", d.Tasks.AddChecklistItem)
		auth.POST("/tareas/:id/fechas", d.Tasks.AddDueDate)
		auth.POST("/tareas/:id/adjuntos", d.Tasks.AddAttachment)
		auth.POST("/tareas/:id/portada", d.Tasks.AddCover)

		auth.GET("/boards", d.Boards.List)
		auth.GET("/boards/:id", d.Boards.Get)
		auth.POST("/boards", d.Boards.Create)
		auth.PUT("/boards/:id", d.Boards.Update)
		auth.DELETE("/boards/:id", d.Boards.Delete)

		auth.GET("/proyectos", d.Projects.List)
		auth.GET("/proyectos/:id", d.Projects.Get)
		auth.POST("/proyectos", d.Projects.Create)
		auth.PUT("/proyectos/:id", d.Projects.Update)
		auth.DELETE("/proyectos/:id", d.Projects.Delete)

		auth.GET("/columnas", d.Columns.List)
		auth.GET("/columnas/:id", d.Columns.Get)
		auth.POST("/columnas", d.Columns.Create)
		auth.PUT("/columnas/:id", d.Columns.Update)
		auth.DELETE("/columnas/:id", d.Columns.Delete)

		auth.GET("/comentarios", d.Comments.List)
		auth.GET("/comentarios/:id", d.Comments.Get)
		auth.POST("/comentarios", d.Comments.Create)
		auth.PUT("/comentarios/:id", d.Comments.Update)
		auth.DELETE("/comentarios/:id", d.Comments.Delete)

		auth.GET("/etiquetas", d.Labels.List)
		auth.GET("/etiquetas/:id", d.Labels.Get)
		auth.POST("/etiquetas", d.Labels.Create)
		auth.PUT("/etiquetas/:id", d.Labels.Update)
		auth.DELETE("/etiquetas/:id", d.Labels.Delete)

		auth.GET("/notificaciones", d.Notifications.List)
		auth.GET("/notificaciones/:id", d.Notifications.Get)
		auth.POST("/notificaciones", d.Notifications.Create)
		auth.PUT("/notificaciones/:id", d.Notifications.Update)
		auth.DELETE("/notificaciones/:id", d.Notifications.Delete)

		auth.GET("/invitaciones", d.Invitations.List)
		auth.GET("/invitaciones/:id", d.Invitations.Get)
		auth.POST("/invitaciones", d.Invitations.Create)
		auth.PUT("/invitaciones/:id", d.Invitations.Update)
		auth.DELETE("/invitaciones/:id", d.Invitations.Delete)

		auth.GET("/asignaciones", d.Assignments.List)
		auth.GET("/asignaciones/:id", d.Assignments.Get)
		auth.POST("/asignaciones", d.Assignments.Create)
		auth.PUT("/asignaciones/:id", d.Assignments.Update)
		auth.DELETE("/asignaciones/:id", d.Assignments.Delete)

		auth.GET("/perfiles", d.Profiles.List)
		auth.GET("/perfiles/:id", d.Profiles.Get)
		auth.POST("/perfiles", d.Profiles.Create)
		auth.PUT("/perfiles/:id", d.Profiles.Update)
		auth.DELETE("/perfiles/:id", d.Profiles.Delete)

		auth.GET("/usuarios", d.Users.List)
		auth.GET("/usuarios/:id", d.Users.Get)
		auth.PUT("/usuarios/:id", d.Users.Update)
		auth.DELETE("/usuarios/:id", d.Users.Delete)

		auth.GET("/auditoria", d.Audit.List)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
