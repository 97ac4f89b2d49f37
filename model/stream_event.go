package model

type StreamEvent struct {
	ID         uint `gorm:"primaryKey;autoIncrement" json:"id"`
	PlanningID uint `gorm:"index;not null" json:"planning_id"`

	GameName    string  `gorm:"not null" json:"game_name"`
	StreamTitle *string `json:"stream_title"`

	// Either a plain URL or a data URL produced by the frontend's
	// client-side compression. Stored opaque
	GameImageURL *string `json:"game_image_url"`

	// One of the seven literals in Days
	DayOfWeek string `gorm:"not null" json:"day_of_week"`

	// Zero-padded wall-clock "HH:MM" strings, always stored canonical so
	// the lexicographic part of the grid sort is correct.
	// end_time > start_time is validated before every write
	StartTime string `gorm:"not null" json:"start_time"`
	EndTime   string `gorm:"not null" json:"end_time"`
}
