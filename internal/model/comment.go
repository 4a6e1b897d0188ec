package model

import "time"

type Comment struct {
	ComentarioID int       `json:"ComentarioID"`
	TareaID      int       `json:"TareaID"`
	UsuarioID    int       `json:"UsuarioID"`
	Texto        string    `json:"Texto"`
	Fecha        time.Time `json:"Fecha"`
}
