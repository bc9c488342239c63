package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidRideCoverage = errors.New("ride stops not contained in route")
	ErrInvalidRideInterval = errors.New("ride ends before it starts")
)

// RideCoverageError indica paradas fora da rota ou em quantidade maior que a da rota.
type RideCoverageError struct {
	RouteID      int
	RouteStopIDs []int
	RideStopIDs  []int
}

func (e *RideCoverageError) Error() string {
	return fmt.Sprintf("%v (route=%d, route stops=%v, ride stops=%v)",
		ErrInvalidRideCoverage, e.RouteID, e.RouteStopIDs, e.RideStopIDs)
}

func (e *RideCoverageError) Unwrap() error {
	return ErrInvalidRideCoverage
}

type RideIntervalError struct {
	RouteID int
	Start   time.Time
	End     time.Time
}

func (e *RideIntervalError) Error() string {
	return fmt.Sprintf("%v (route=%d, start=%s, end=%s)",
		ErrInvalidRideInterval, e.RouteID, e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

func (e *RideIntervalError) Unwrap() error {
	return ErrInvalidRideInterval
}
