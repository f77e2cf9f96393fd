package model

// ObservationRow is one row of the dataset preview, mirroring the columns of
// the upstream record set.
type ObservationRow struct {
	StationID   string   `json:"stationId"`
	StationName string   `json:"stationName"`
	Date        string   `json:"date"`
	MinTemp     float64  `json:"minTemp"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Altitude    *float64 `json:"altitude"`
}

// DatasetPreview is the head of a departmental dataset plus its dimensions.
type DatasetPreview struct {
	Department   string           `json:"department"`
	Rows         []ObservationRow `json:"rows"`
	TotalRows    int64            `json:"totalRows"`
	TotalColumns int              `json:"totalColumns"`
	Stations     int              `json:"stations"`
}

// TrendPoint is the mean minimum temperature of one year.
type TrendPoint struct {
	Year        int     `json:"year"`
	MeanMinTemp float64 `json:"meanMinTemp"`
	Samples     int     `json:"samples"`
}

// AnnualTrend is the yearly mean-TN series of the most frequent station of a
// department.
type AnnualTrend struct {
	Department  string       `json:"department"`
	StationID   string       `json:"stationId"`
	StationName string       `json:"stationName"`
	Points      []TrendPoint `json:"points"`
}

// StationPoint is one station placed on the map, colored by altitude.
type StationPoint struct {
	StationID string  `json:"stationId"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

// YearBox is the boxplot of minimum temperatures for one year. Whiskers
// follow the 1.5*IQR convention; values beyond them are listed as outliers.
type YearBox struct {
	Year     int       `json:"year"`
	Lower    float64   `json:"lower"`
	Q1       float64   `json:"q1"`
	Median   float64   `json:"median"`
	Q3       float64   `json:"q3"`
	Upper    float64   `json:"upper"`
	Outliers []float64 `json:"outliers"`
	Samples  int       `json:"samples"`
}

// MonitorDepartmentDTO is the request body to start monitoring a department.
type MonitorDepartmentDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
