package entity

// Station is a departmental weather station. Latitude, longitude and altitude
// come from the upstream station registry and may be absent for decommissioned
// posts, hence the pointer fields.
type Station struct {
	ID         string   `json:"id" gorm:"primaryKey;column:id"`
	Name       string   `json:"name" gorm:"column:name"`
	Department string   `json:"department" gorm:"column:department;index:idx_stations_department"`
	Latitude   *float64 `json:"latitude" gorm:"column:latitude"`
	Longitude  *float64 `json:"longitude" gorm:"column:longitude"`
	Altitude   *float64 `json:"altitude" gorm:"column:altitude"`
	CreatedAt  string   `json:"createdDate" gorm:"column:created_at"`
	UpdatedAt  string   `json:"updatedDate" gorm:"column:updated_at"`
}

// HasCoordinates reports whether the station can be placed on the map.
func (s Station) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}
