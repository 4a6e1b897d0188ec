package model

type Profile struct {
	PerfilID  int    `json:"PerfilID"`
	UsuarioID int    `json:"UsuarioID"`
	Editable  bool   `json:"Editable"`
	Biografia string `json:"Biografia,omitempty"`
	Intereses string `json:"Intereses,omitempty"`
	Ocupacion string `json:"Ocupacion,omitempty"`
}
