package db

import "frost-api/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
