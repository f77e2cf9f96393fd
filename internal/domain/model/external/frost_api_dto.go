package external

// DepartmentRecordsResponse is the upstream payload with every daily
// minimum-temperature record of a department.
type DepartmentRecordsResponse struct {
	Department string         `json:"department"`
	Records    []StationRecord `json:"records"`
}

// StationRecord is one upstream row. tmin and the coordinates can be null for
// stations with gaps in their registry data.
type StationRecord struct {
	StationID   string   `json:"station_id"`
	StationName string   `json:"station_name"`
	Date        string   `json:"date"`
	MinTemp     *float64 `json:"tmin"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Altitude    *float64 `json:"alti"`
}

// StationListResponse is the upstream station registry for a department.
type StationListResponse struct {
	Department string        `json:"department"`
	Stations   []StationInfo `json:"stations"`
}

// StationInfo is one station registry entry.
type StationInfo struct {
	StationID   string   `json:"station_id"`
	StationName string   `json:"station_name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Altitude    *float64 `json:"alti"`
}

// APIErrorResponse is the upstream error body.
type APIErrorResponse struct {
	Message string `json:"message"`
}
