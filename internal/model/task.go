package model

import "time"

// Task states. Any state is reachable from any other via an explicit update.
const (
	TaskStatePending    = "pendiente"
	TaskStateInProgress = "en_proceso"
	TaskStateCompleted  = "completada"
)

// ValidTaskState reports whether s is one of the task state constants.
func ValidTaskState(s string) bool {
	return s == TaskStatePending || s == TaskStateInProgress || s == TaskStateCompleted
}

type Task struct {
	TareaID             int        `json:"TareaID"`
	ProyectoID          int        `json:"ProyectoID"`
	Titulo              string     `json:"Titulo"`
	Descripcion         string     `json:"Descripcion"`
	Importancia         int        `json:"Importancia"`
	Estado              string     `json:"Estado"`
	FechaVencimiento    *time.Time `json:"FechaVencimiento"`
	FechaCreacion       time.Time  `json:"FechaCreacion"`
	UltimaActualizacion time.Time  `json:"UltimaActualizacion"`
}

type Checklist struct {
	ChecklistID int    `json:"ChecklistID"`
	TareaID     int    `json:"TareaID"`
	Titulo      string `json:"Titulo"`
}

type Attachment struct {
	AdjuntoID int       `json:"AdjuntoID"`
	TareaID   int       `json:"TareaID"`
	Archivo   string    `json:"Archivo"`
	Fecha     time.Time `json:"Fecha"`
}

type Assignment struct {
	AsignacionID int `json:"AsignacionID"`
	TareaID      int `json:"TareaID"`
	UsuarioID    int `json:"UsuarioID"`
}
