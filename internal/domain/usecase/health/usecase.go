package health

import "frost-api/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
