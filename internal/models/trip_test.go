package models

import "testing"

func TestExpectedRevenue(t *testing.T) {
	trip := Trip{StudentPrice: 62000, ExpectedStudents: 30}
	if got := trip.ExpectedRevenue(); got != 1860000 {
		t.Errorf("ExpectedRevenue: got %d, want 1860000", got)
	}

	if got := (Trip{}).ExpectedRevenue(); got != 0 {
		t.Errorf("ExpectedRevenue on empty trip: got %d, want 0", got)
	}
}
