package model

import "frost-api/internal/domain/entity"

// DepartmentDataset is the full record set of one department: the station
// registry plus every daily observation. It is the unit of caching for the
// dashboard.
type DepartmentDataset struct {
	Department   string               `json:"department"`
	Stations     []entity.Station     `json:"stations"`
	Observations []entity.Observation `json:"observations"`
}

// IsEmpty reports whether the dataset has no observations.
func (d *DepartmentDataset) IsEmpty() bool {
	return d == nil || len(d.Observations) == 0
}

// StationName resolves a station id to its display name, falling back to the
// id itself for stations missing from the registry.
func (d *DepartmentDataset) StationName(stationID string) string {
	for _, station := range d.Stations {
		if station.ID == stationID {
			if station.Name != "" {
				return station.Name
			}
			break
		}
	}
	return stationID
}
