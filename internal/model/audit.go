package model

import "time"

type AuditLog struct {
	LogID     int       `json:"LogID"`
	UsuarioID int       `json:"UsuarioID"`
	Accion    string    `json:"Accion"`
	Detalles  string    `json:"Detalles,omitempty"`
	Fecha     time.Time `json:"Fecha"`
}
