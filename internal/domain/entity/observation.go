package entity

// Observation is one daily minimum-temperature reading (TN) for a station.
// A station reports at most one observation per day.
type Observation struct {
	ID         uint    `json:"id" gorm:"primaryKey;autoIncrement;column:id"`
	StationID  string  `json:"stationId" gorm:"column:station_id;uniqueIndex:idx_observations_station_date"`
	Department string  `json:"department" gorm:"column:department;index:idx_observations_department"`
	Date       string  `json:"date" gorm:"column:date;uniqueIndex:idx_observations_station_date"`
	MinTemp    float64 `json:"minTemp" gorm:"column:min_temp"`
}

// Year returns the four-digit year of the observation date, or 0 when the
// date is not in YYYY-MM-DD form.
func (o Observation) Year() int {
	if len(o.Date) < 4 {
		return 0
	}
	year := 0
	for _, r := range o.Date[:4] {
		if r < '0' || r > '9' {
			return 0
		}
		year = year*10 + int(r-'0')
	}
	return year
}
