package model

type Board struct {
	BoardID              int    `json:"BoardID"`
	UsuarioPropietarioID int    `json:"UsuarioPropietarioID"`
	Titulo               string `json:"Titulo"`
}

type Project struct {
	ProyectoID int    `json:"ProyectoID"`
	BoardID    int    `json:"BoardID"`
	Titulo     string `json:"Titulo"`
}

type Column struct {
	ColumnaID     int    `json:"ColumnaID"`
	ProyectoID    int    `json:"ProyectoID"`
	ColumnaNombre string `json:"ColumnaNombre"`
}
