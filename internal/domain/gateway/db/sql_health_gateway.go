package db

import (
	"database/sql"

	"frost-api/internal/domain/model"
)

// SQLHealthGateway checks database health over a plain database/sql
// connection, kept separate from the GORM session used by the domain
// gateways.
type SQLHealthGateway struct {
	DB *sql.DB
}

var _ HealthDBGateway = (*SQLHealthGateway)(nil)

func NewSQLHealthGateway(db *sql.DB) *SQLHealthGateway {
	return &SQLHealthGateway{DB: db}
}

func (gateway *SQLHealthGateway) Health() model.ComponentHealthStatus {
	if err := gateway.DB.Ping(); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message": string(model.StatusUp),
		},
	}
}
