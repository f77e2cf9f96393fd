package db

import (
	"frost-api/internal/domain/entity"
)

// DepartmentGateway is the persistence boundary for departments, stations and
// observations.
type DepartmentGateway interface {
	// Department registry operations
	FindAllDepartments(page int, size int) ([]entity.Department, error)
	FindDepartmentsWithKeysetPagination(lastCode string, size int) ([]entity.Department, error)
	CountDepartments() (int64, error)
	FindDepartmentByCode(code string) (*entity.Department, error)
	CreateDepartment(department entity.Department) (*entity.Department, error)
	DeleteDepartmentByCode(code string) error

	// Station operations
	FindStationsByDepartment(dept string) ([]entity.Station, error)
	UpsertStations(stations []entity.Station) error
	DeleteStationsByDepartment(dept string) error

	// Observation operations
	FindObservationsByDepartment(dept string) ([]entity.Observation, error)
	FindObservationsByStation(stationID string) ([]entity.Observation, error)
	CountObservationsByDepartment(dept string) (int64, error)
	UpsertObservations(observations []entity.Observation) error
	DeleteObservationsByDepartment(dept string) error
}
