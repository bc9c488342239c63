package domain

import (
	"errors"
	"testing"
	"time"
)

func stops(ids ...int) []BusStop {
	out := make([]BusStop, len(ids))
	for i, id := range ids {
		out[i] = BusStop{ID: id, Name: "stop", Address: Address{City: "Lublin"}}
	}
	return out
}

func TestRouteCheckRideCoverage(t *testing.T) {
	route := NewRoute(1, stops(1, 2, 3, 4), 240)
	start := time.Date(2021, 2, 2, 15, 5, 0, 0, time.UTC)

	cases := []struct {
		name    string
		stops   []BusStop
		wantErr bool
	}{
		{"all stops", stops(1, 2, 3, 4), false},
		{"subset", stops(2, 4), false},
		{"different order is accepted", stops(4, 1), false},
		{"empty", nil, false},
		{"foreign stop", stops(1, 9), true},
		{"more stops than route", stops(1, 1, 2, 3, 4), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := route.CheckRide(c.stops, start, start)
			if c.wantErr != (err != nil) {
				t.Fatalf("CheckRide() error = %v, wantErr %v", err, c.wantErr)
			}
			if !c.wantErr {
				return
			}
			if !errors.Is(err, ErrInvalidRideCoverage) {
				t.Errorf("expected ErrInvalidRideCoverage, got %v", err)
			}
			var coverage *RideCoverageError
			if !errors.As(err, &coverage) || coverage.RouteID != 1 || len(coverage.RideStopIDs) != len(c.stops) {
				t.Errorf("unexpected coverage error details: %+v", coverage)
			}
		})
	}
}

func TestRouteCheckRideCoverageComparesWholeStop(t *testing.T) {
	route := NewRoute(1, stops(1, 2), 10)
	moved := BusStop{ID: 1, Name: "stop", Address: Address{City: "Kielce"}}

	if err := route.CheckRide([]BusStop{moved}, time.Time{}, time.Time{}); !errors.Is(err, ErrInvalidRideCoverage) {
		t.Errorf("expected coverage error for stop with different address, got %v", err)
	}
}

func TestRouteCheckRideInterval(t *testing.T) {
	route := NewRoute(3, stops(1, 2), 43)
	start := time.Date(2021, 2, 8, 21, 5, 0, 0, time.UTC)

	if err := route.CheckRide(stops(1), start, start); err != nil {
		t.Errorf("end == start should be accepted, got %v", err)
	}

	err := route.CheckRide(stops(1), start, start.Add(-time.Minute))
	if !errors.Is(err, ErrInvalidRideInterval) {
		t.Fatalf("expected ErrInvalidRideInterval, got %v", err)
	}
	var interval *RideIntervalError
	if !errors.As(err, &interval) || !interval.Start.Equal(start) || interval.RouteID != 3 {
		t.Errorf("unexpected interval error details: %+v", interval)
	}
}

func TestRouteCheckRideReportsCoverageFirst(t *testing.T) {
	route := NewRoute(1, stops(1), 10)
	start := time.Now()

	err := route.CheckRide(stops(7), start, start.Add(-time.Hour))
	if !errors.Is(err, ErrInvalidRideCoverage) {
		t.Errorf("expected coverage error to win, got %v", err)
	}
}

func TestRouteRideLength(t *testing.T) {
	route := NewRoute(1, stops(1, 2, 3, 4), 240)

	if got := route.RideLength(4); got != 240 {
		t.Errorf("RideLength(4) = %v, want 240", got)
	}
	if got := route.RideLength(2); got != 120 {
		t.Errorf("RideLength(2) = %v, want 120", got)
	}
	if got := NewRoute(2, nil, 50).RideLength(0); got != 0 {
		t.Errorf("RideLength on empty route = %v, want 0", got)
	}
}

func TestNewRouteCopiesStops(t *testing.T) {
	input := stops(1, 2)
	route := NewRoute(1, input, 10)
	input[0].Name = "changed"

	if route.BusStops[0].Name != "stop" {
		t.Error("route shares backing array with caller")
	}
	if route.BusRides == nil {
		t.Error("BusRides should start empty, not nil")
	}
}
