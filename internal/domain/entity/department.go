package entity

// Department is an administrative region whose weather stations are monitored.
type Department struct {
	Code      string `json:"code" gorm:"primaryKey;column:code"`
	Name      string `json:"name" gorm:"column:name"`
	CreatedAt string `json:"createdDate" gorm:"column:created_at"`
	UpdatedAt string `json:"updatedDate" gorm:"column:updated_at"`
}
