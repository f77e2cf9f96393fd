package api

import (
	"frost-api/internal/domain/model/external"
)

// FrostGateway defines the interface for the external departmental weather
// data API.
type FrostGateway interface {
	// FetchDepartmentRecords returns every daily minimum-temperature record
	// of a department, station metadata included.
	FetchDepartmentRecords(dept string) (*external.DepartmentRecordsResponse, error)

	// FetchStations returns the station registry of a department.
	FetchStations(dept string) (*external.StationListResponse, error)
}
