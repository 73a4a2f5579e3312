package models

// WorkingWindow is a therapist's daily bookable window, minutes from midnight.
type WorkingWindow struct {
	OpenMinute  int `bson:"open_minute" json:"open_minute"`   // e.g., 540 for 09:00
	CloseMinute int `bson:"close_minute" json:"close_minute"` // e.g., 1080 for 18:00
}

// Therapist represents a member of the bookable roster.
type Therapist struct {
	ID            string        `bson:"id" json:"id"`
	Name          string        `bson:"name" json:"name"`
	WorkingWindow WorkingWindow `bson:"working_window" json:"working_window"`
	Active        bool          `bson:"active" json:"active"`
}
