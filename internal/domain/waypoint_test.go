package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewWaypoint(t *testing.T) {
	w, err := NewWaypoint(WaypointInput{
		Label:        "  Central warehouse ",
		ContactPhone: " 0991234567 ",
		Coordinates:  "-2.90, -79.00",
		Date:         "2024-01-01",
		Time:         "09:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.ID == "" {
		t.Fatal("waypoint id is empty")
	}
	if w.Label != "Central warehouse" {
		t.Errorf("label = %q", w.Label)
	}
	if w.ContactPhone != "0991234567" {
		t.Errorf("phone = %q", w.ContactPhone)
	}
	if w.Location != (Coordinates{Lat: -2.90, Lon: -79.00}) {
		t.Errorf("location = %+v", w.Location)
	}
	if !w.ScheduledDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v", w.ScheduledDate)
	}
	if w.ScheduledTime != NewTimeOfDay(9, 0, 0) {
		t.Errorf("time = %v", w.ScheduledTime)
	}
}

func TestNewWaypointDefaults(t *testing.T) {
	w, err := NewWaypoint(WaypointInput{Coordinates: "1, 2", Time: "10:30"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Label != DefaultLabel {
		t.Errorf("label = %q, want %q", w.Label, DefaultLabel)
	}
	if w.HasDate() {
		t.Errorf("waypoint without date reports HasDate")
	}
	if w.ScheduledTime.String() != "10:30" {
		t.Errorf("time = %q, want 10:30", w.ScheduledTime.String())
	}
}

func TestNewWaypointUniqueIDs(t *testing.T) {
	in := WaypointInput{Label: "Same", Coordinates: "1, 2", Time: "08:00"}

	a, err := NewWaypoint(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewWaypoint(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.ID == b.ID {
		t.Fatalf("identical inputs produced the same id %q", a.ID)
	}
}

func TestNewWaypointRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		in   WaypointInput
		want error
	}{
		{name: "coordinates", in: WaypointInput{Coordinates: "abc, def", Time: "09:00"}, want: ErrInvalidCoordinates},
		{name: "date", in: WaypointInput{Coordinates: "1, 2", Date: "01/02/2024", Time: "09:00"}, want: ErrInvalidSchedule},
		{name: "time", in: WaypointInput{Coordinates: "1, 2", Time: "25:00"}, want: ErrInvalidSchedule},
		{name: "missing time", in: WaypointInput{Coordinates: "1, 2"}, want: ErrInvalidSchedule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWaypoint(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCompareSchedule(t *testing.T) {
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b Waypoint
		want int
	}{
		{
			name: "earlier date wins over earlier time",
			a:    Waypoint{ScheduledDate: jan1, ScheduledTime: NewTimeOfDay(18, 0, 0)},
			b:    Waypoint{ScheduledDate: jan2, ScheduledTime: NewTimeOfDay(6, 0, 0)},
			want: -1,
		},
		{
			name: "same date compares time",
			a:    Waypoint{ScheduledDate: jan1, ScheduledTime: NewTimeOfDay(9, 0, 0)},
			b:    Waypoint{ScheduledDate: jan1, ScheduledTime: NewTimeOfDay(8, 0, 0)},
			want: 1,
		},
		{
			name: "undated after dated",
			a:    Waypoint{ScheduledTime: NewTimeOfDay(1, 0, 0)},
			b:    Waypoint{ScheduledDate: jan2, ScheduledTime: NewTimeOfDay(23, 0, 0)},
			want: 1,
		},
		{
			name: "undated compares time",
			a:    Waypoint{ScheduledTime: NewTimeOfDay(7, 0, 0)},
			b:    Waypoint{ScheduledTime: NewTimeOfDay(7, 30, 0)},
			want: -1,
		},
		{
			name: "equal keys",
			a:    Waypoint{ScheduledDate: jan1, ScheduledTime: NewTimeOfDay(7, 0, 0)},
			b:    Waypoint{ScheduledDate: jan1, ScheduledTime: NewTimeOfDay(7, 0, 0)},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompareSchedule(tt.a, tt.b); got != tt.want {
				t.Fatalf("CompareSchedule = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	if got := NewTimeOfDay(8, 5, 0).String(); got != "08:05" {
		t.Errorf("String = %q, want 08:05", got)
	}
	if got := NewTimeOfDay(8, 5, 9).String(); got != "08:05:09" {
		t.Errorf("String = %q, want 08:05:09", got)
	}

	tod, err := ParseTimeOfDay("08:05:09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tod != NewTimeOfDay(8, 5, 9) {
		t.Errorf("ParseTimeOfDay = %v", tod)
	}
}
