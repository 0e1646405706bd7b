package models

// Vehicle represents a managed vehicle.
type Vehicle struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"type:varchar(150)"`
	Brand string `json:"brand" gorm:"type:varchar(100)"`
	Year  int    `json:"year"`
}
