package model

type User struct {
	UsuarioID         int    `json:"UsuarioID"`
	Nombre            string `json:"Nombre"`
	Apellido          string `json:"Apellido"`
	CorreoElectronico string `json:"CorreoElectronico"`
	Telefono          string `json:"Telefono,omitempty"`
	ImagenPerfil      string `json:"ImagenPerfil,omitempty"`
	PasswordHash      string `json:"-"`
	DefaultBoardID    *int   `json:"defaultBoardId"`
}

// UserSummary is the login response payload.
type UserSummary struct {
	UsuarioID      int  `json:"UsuarioID"`
	DefaultBoardID *int `json:"defaultBoardId"`
}
