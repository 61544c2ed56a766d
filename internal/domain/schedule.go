package domain

import "time"

// AvailabilityWindow is one span of time a participant is free.
type AvailabilityWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Booking is an already committed session that a suggested slot must not
// overlap.
type Booking struct {
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ScheduleConstraints are the inputs to an AI slot suggestion.
type ScheduleConstraints struct {
	Availability []AvailabilityWindow `json:"availability"`
	Duration     time.Duration        `json:"duration"`
	Bookings     []Booking            `json:"bookings"`
}

// Validate checks that the constraints describe a solvable request.
func (c ScheduleConstraints) Validate() error {
	if len(c.Availability) == 0 {
		return ErrNoAvailability
	}
	if c.Duration <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

// ScheduleSlot is a chosen session slot plus the model's free-text
// justification for picking it.
type ScheduleSlot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Rationale string    `json:"rationale"`
}
