package department

import (
	"frost-api/internal/domain/entity"
	"frost-api/internal/domain/model"
)

type UseCase interface {
	// FindAllDepartments returns a paginated list of monitored departments
	FindAllDepartments(page int, size int) (*model.Page[entity.Department], error)

	// MonitorDepartment verifies the department upstream, registers it and
	// enqueues its first refresh
	MonitorDepartment(code string, name string) error

	// RefreshDepartment re-fetches the departmental record set and persists it
	RefreshDepartment(dept entity.Department) error

	// RefreshAllDepartments enqueues all departments in batches using pagination
	RefreshAllDepartments()

	// RefreshAllDepartmentsScheduled enqueues all departments for refresh
	// using key-set pagination, tagged with the scheduler request id
	RefreshAllDepartmentsScheduled(requestID string) error

	// RemoveDepartment deletes a department with all its stations and observations
	RemoveDepartment(code string) error
}
