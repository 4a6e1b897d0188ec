package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/model"
	"taskboard/internal/service/task"
)

// TaskReader covers the read side served straight from the repository.
type TaskReader interface {
	List(ctx context.Context) ([]model.Task, error)
	GetByID(ctx context.Context, id int) (*model.Task, error)
}

// TaskService covers the mutating operations.
type TaskService interface {
	Create(ctx context.Context, req task.CreateRequest) (*model.Task, error)
	Update(ctx context.Context, id int, req task.UpdateRequest) (*model.Task, error)
	Delete(ctx context.Context, id int) error
	AddMember(ctx context.Context, taskID, userID int) error
	AddLabel(ctx context.Context, taskID int, name string) error
	AddChecklistItem(ctx context.Context, taskID int, title string) error
	AddDueDate(ctx context.Context, taskID int, dueDate string) error
	AddAttachment(ctx context.Context, taskID int, file string) error
	AddCover(ctx context.Context, taskID, coverID int) error
}

type TaskHandler struct {
	tasks  TaskReader
	svc    TaskService
	logger *zap.Logger
}

func NewTaskHandler(tasks TaskReader, svc TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, svc: svc, logger: logger}
}

func taskID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return 0, false
	}
	return id, true
}

// List answers 404 when no tasks exist at all.
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, taskNotFound)
		return
	}
	if len(tasks) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": taskNotFound})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	t, err := h.tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req task.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	t, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err, taskNotFound)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var req task.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	if _, err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		writeError(c, h.logger, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task updated successfully"})
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err, taskNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

type addMemberRequest struct {
	UsuarioID int `json:"UsuarioID"`
}

func (h *TaskHandler) AddMember(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}
	if err := h.svc.AddMember(c.Request.Context(), id, req.UsuarioID); err != nil {
		writeError(c, h.logger, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member added successfully"})
}

type addLabelRequest struct {
	Nombre string `json:"Nombre"`
}

func (h *TaskHandler) AddLabel(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var req addLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}
	if err := h.svc.AddLabel(c.Request.Context(), id, req.Nombre); err != nil {
		writeError(c, h.logger, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Label added successfully"})
}

type addChecklistRequest struct {
	Titulo string `json:"Titulo"`
}

func (h *TaskHandler) AddChecklistItem(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var req addChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}
	if err := h.svc.AddChecklistItem(c.Request.Context(), id, req.Titulo); err != nil {
		writeError(c, h.logger, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Checklist item added successfully"})
}

type addDueDateRequest struct {
	FechaVencimiento string `json:"FechaVencimiento"`
}

func (h *TaskHandler) AddDueDate(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var req addDueDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}
	if err := h.svc.AddDueDate(c.Request.Context(), id, req.FechaVencimiento); err != nil {
		writeError(c, h.logger, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Due date added successfully"})
}

type addAttachmentRequest struct {
	Archivo string `json:"Archivo"`
}

func (h *TaskHandler) AddAttachment(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var req addAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}
	if err := h.svc.AddAttachment(c.Request.Context(), id, req.Archivo); err != nil {
		writeError(c, h.logger, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attachment added successfully"})
}

type addCoverRequest struct {
	PortadaID int `json:"PortadaID"`
}

func (h *TaskHandler) AddCover(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var req addCoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}
	if err := h.svc.AddCover(c.Request.Context(), id, req.PortadaID); err != nil {
		writeError(c, h.logger, err, taskNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cover added successfully"})
}
