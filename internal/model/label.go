package model

type Label struct {
	EtiquetaID int    `json:"EtiquetaID"`
	Nombre     string `json:"Nombre"`
	Color      string `json:"Color,omitempty"`
}
