package models

import "time"

// Trip is a scheduled school excursion with its own price and capacity.
type Trip struct {
	ID int64

	// Destination is the display name of the excursion (e.g. "Berlin, Allemagne").
	Destination string

	// DepartureDate is the first day of the trip.
	DepartureDate time.Time

	// StudentPrice is the per-student price in cents. Each new participant's
	// debt is opened with this amount.
	StudentPrice int64

	// ExpectedStudents is the planned (paying) student headcount. It caps the
	// number of enrolled participants; beyond it new participants are waitlisted.
	ExpectedStudents int

	// ChaperoneCount is informational: accompanying adults travel for free and
	// never enter the per-student cost calculations.
	ChaperoneCount int

	// Nights is the stay duration used for per-night cost indicators.
	Nights int
}

// ExpectedRevenue is the total the trip would collect if every expected
// student paid the full price. Value receiver so templates can call it on
// trip values.
func (t Trip) ExpectedRevenue() int64 {
	return int64(t.ExpectedStudents) * t.StudentPrice
}

// TripSummary is a trip joined with the counters shown on the index page.
type TripSummary struct {
	Trip

	// EnrolledCount is the number of participants with StatusEnrolled.
	EnrolledCount int

	// RefundableCount is the number of participants awaiting refund validation.
	RefundableCount int
}
