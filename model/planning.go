package model

import "time"

type Planning struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"index;not null" json:"-"`

	Title string `gorm:"not null" json:"title"`

	// Date-precision bounds of the covered week(s). start_date < end_date is
	// checked at creation time only
	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`

	UpdatedAt time.Time `json:"updated_at"`

	Events []StreamEvent `gorm:"foreignKey:PlanningID" json:"-"`
}
