package health

import (
	"testing"

	"frost-api/internal/domain/model"
	"frost-api/pkg/sqs"
)

type fakeHealthGateway struct {
	status model.HealthStatus
}

func (f fakeHealthGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: f.status}
}

type fakeQueueHealthGateway struct {
	fakeHealthGateway
}

func (f fakeQueueHealthGateway) RegisterWorker(name string, worker *sqs.Worker) {}
func (f fakeQueueHealthGateway) UnregisterWorker(name string)                   {}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name     string
		db       model.HealthStatus
		cache    model.HealthStatus
		queue    model.HealthStatus
		expected model.HealthStatus
	}{
		{"all components up", model.StatusUp, model.StatusUp, model.StatusUp, model.StatusUp},
		{"database down", model.StatusDown, model.StatusUp, model.StatusUp, model.StatusDown},
		{"cache down", model.StatusUp, model.StatusDown, model.StatusUp, model.StatusDown},
		{"queue down", model.StatusUp, model.StatusUp, model.StatusDown, model.StatusDown},
		{"no workers registered yet", model.StatusUp, model.StatusUp, model.StatusUnknown, model.StatusUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewHealthUseCase(
				fakeHealthGateway{status: tt.db},
				fakeHealthGateway{status: tt.cache},
				fakeQueueHealthGateway{fakeHealthGateway{status: tt.queue}},
			)

			response := useCase.CheckHealth()
			if response.Status != tt.expected {
				t.Errorf("expected overall status %s, got %s", tt.expected, response.Status)
			}
			if response.Database.Status != tt.db {
				t.Errorf("expected database status %s, got %s", tt.db, response.Database.Status)
			}
		})
	}
}
