package db

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"frost-api/internal/domain/entity"
)

// GormDepartmentGateway is the GORM/Postgres implementation of
// DepartmentGateway.
type GormDepartmentGateway struct {
	DB *gorm.DB
}

var _ DepartmentGateway = (*GormDepartmentGateway)(nil)

func NewGormDepartmentGateway(db *gorm.DB) *GormDepartmentGateway {
	return &GormDepartmentGateway{DB: db}
}

// FindAllDepartments returns one page of the department registry ordered by code.
func (gateway *GormDepartmentGateway) FindAllDepartments(page int, size int) ([]entity.Department, error) {
	var departments []entity.Department
	err := gateway.DB.
		Order("code").
		Offset(page * size).
		Limit(size).
		Find(&departments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

// FindDepartmentsWithKeysetPagination returns up to size departments with a
// code greater than lastCode. An empty lastCode starts from the beginning.
func (gateway *GormDepartmentGateway) FindDepartmentsWithKeysetPagination(lastCode string, size int) ([]entity.Department, error) {
	var departments []entity.Department
	query := gateway.DB.Order("code").Limit(size)
	if lastCode != "" {
		query = query.Where("code > ?", lastCode)
	}
	if err := query.Find(&departments).Error; err != nil {
		return nil, fmt.Errorf("failed to list departments after %q: %w", lastCode, err)
	}
	return departments, nil
}

// CountDepartments returns the number of monitored departments.
func (gateway *GormDepartmentGateway) CountDepartments() (int64, error) {
	var count int64
	if err := gateway.DB.Model(&entity.Department{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count departments: %w", err)
	}
	return count, nil
}

// FindDepartmentByCode returns the department with the given code, or nil
// when it is not monitored.
func (gateway *GormDepartmentGateway) FindDepartmentByCode(code string) (*entity.Department, error) {
	var department entity.Department
	err := gateway.DB.Where("code = ?", code).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find department %q: %w", code, err)
	}
	return &department, nil
}

// CreateDepartment registers a department for monitoring.
func (gateway *GormDepartmentGateway) CreateDepartment(department entity.Department) (*entity.Department, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	department.CreatedAt = now
	department.UpdatedAt = now

	err := gateway.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(&department).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create department %q: %w", department.Code, err)
	}
	return &department, nil
}

// DeleteDepartmentByCode removes a department from the registry.
func (gateway *GormDepartmentGateway) DeleteDepartmentByCode(code string) error {
	result := gateway.DB.Where("code = ?", code).Delete(&entity.Department{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete department %q: %w", code, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("department %q not found", code)
	}
	return nil
}

// FindStationsByDepartment returns all stations of a department.
func (gateway *GormDepartmentGateway) FindStationsByDepartment(dept string) ([]entity.Station, error) {
	var stations []entity.Station
	err := gateway.DB.Where("department = ?", dept).Order("id").Find(&stations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stations of department %q: %w", dept, err)
	}
	return stations, nil
}

// UpsertStations inserts or updates station registry rows keyed by station id.
func (gateway *GormDepartmentGateway) UpsertStations(stations []entity.Station) error {
	if len(stations) == 0 {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i := range stations {
		if stations[i].CreatedAt == "" {
			stations[i].CreatedAt = now
		}
		stations[i].UpdatedAt = now
	}

	err := gateway.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "department", "latitude", "longitude", "altitude", "updated_at"}),
	}).CreateInBatches(stations, 500).Error
	if err != nil {
		return fmt.Errorf("failed to upsert %d stations: %w", len(stations), err)
	}
	return nil
}

// DeleteStationsByDepartment removes every station of a department.
func (gateway *GormDepartmentGateway) DeleteStationsByDepartment(dept string) error {
	err := gateway.DB.Where("department = ?", dept).Delete(&entity.Station{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete stations of department %q: %w", dept, err)
	}
	return nil
}

// FindObservationsByDepartment returns all observations of a department
// ordered by station and date.
func (gateway *GormDepartmentGateway) FindObservationsByDepartment(dept string) ([]entity.Observation, error) {
	var observations []entity.Observation
	err := gateway.DB.
		Where("department = ?", dept).
		Order("station_id, date").
		Find(&observations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list observations of department %q: %w", dept, err)
	}
	return observations, nil
}

// FindObservationsByStation returns all observations of one station ordered by date.
func (gateway *GormDepartmentGateway) FindObservationsByStation(stationID string) ([]entity.Observation, error) {
	var observations []entity.Observation
	err := gateway.DB.
		Where("station_id = ?", stationID).
		Order("date").
		Find(&observations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list observations of station %q: %w", stationID, err)
	}
	return observations, nil
}

// CountObservationsByDepartment returns the number of observation rows of a department.
func (gateway *GormDepartmentGateway) CountObservationsByDepartment(dept string) (int64, error) {
	var count int64
	err := gateway.DB.Model(&entity.Observation{}).Where("department = ?", dept).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count observations of department %q: %w", dept, err)
	}
	return count, nil
}

// UpsertObservations inserts or updates observation rows keyed by
// (station_id, date).
func (gateway *GormDepartmentGateway) UpsertObservations(observations []entity.Observation) error {
	if len(observations) == 0 {
		return nil
	}

	err := gateway.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "station_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"min_temp", "department"}),
	}).CreateInBatches(observations, 1000).Error
	if err != nil {
		return fmt.Errorf("failed to upsert %d observations: %w", len(observations), err)
	}
	return nil
}

// DeleteObservationsByDepartment removes every observation of a department.
func (gateway *GormDepartmentGateway) DeleteObservationsByDepartment(dept string) error {
	err := gateway.DB.Where("department = ?", dept).Delete(&entity.Observation{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete observations of department %q: %w", dept, err)
	}
	return nil
}
