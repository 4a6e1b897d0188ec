package model

import "time"

type Notification struct {
	NotificacionID int       `json:"NotificacionID"`
	UsuarioID      int       `json:"UsuarioID"`
	Mensaje        string    `json:"Mensaje"`
	Leida          bool      `json:"Leida"`
	Fecha          time.Time `json:"Fecha"`
}
