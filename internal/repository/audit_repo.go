package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"taskboard/internal/model"
)

type AuditRepository struct {
	db *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) List(ctx context.Context) ([]model.AuditLog, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM obtener_todos_los_registros_de_auditoria()`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []model.AuditLog
	for rows.Next() {
		var l model.AuditLog
		if err := rows.Scan(&l.LogID, &l.UsuarioID, &l.Accion, &l.Detalles, &l.Fecha); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
