package model

import "time"

// Invitation states.
const (
	InvitationPending  = "pendiente"
	InvitationAccepted = "aceptada"
	InvitationRejected = "rechazada"
)

func ValidInvitationState(s string) bool {
	return s == InvitationPending || s == InvitationAccepted || s == InvitationRejected
}

type Invitation struct {
	InvitacionID     int        `json:"InvitacionID"`
	UsuarioOrigenID  int        `json:"UsuarioOrigenID"`
	UsuarioDestinoID int        `json:"UsuarioDestinoID"`
	Estado           string     `json:"Estado"`
	FechaEnvio       time.Time  `json:"FechaEnvio"`
	FechaAceptacion  *time.Time `json:"FechaAceptacion"`
}
