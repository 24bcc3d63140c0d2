package domain_models

import (
	"fmt"
	"strings"
	"time"

	"wayfare/pkg/utils"
)

type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceModerate Pace = "moderate"
	PacePacked   Pace = "packed"
)

// TripRequest is validated once at construction and read-only afterwards.
type TripRequest struct {
	City      string
	StartDate time.Time
	EndDate   time.Time
	Budget    float64
	Interests []string
	Pace      Pace
	GroupSize int
}

func NewTripRequest(
	city string,
	startDate, endDate time.Time,
	budget float64,
	interests []string,
	pace string,
	groupSize int,
) (TripRequest, error) {

	if strings.TrimSpace(city) == "" {
		return TripRequest{}, fmt.Errorf("%w: city is required", utils.ErrInvalidInput)
	}
	if !endDate.After(startDate) {
		return TripRequest{}, fmt.Errorf("%w: end date must be after start date", utils.ErrInvalidInput)
	}
	if budget <= 0 {
		return TripRequest{}, fmt.Errorf("%w: budget must be greater than 0", utils.ErrInvalidInput)
	}
	if groupSize < 1 {
		return TripRequest{}, fmt.Errorf("%w: group size must be at least 1", utils.ErrInvalidInput)
	}

	normalized := Pace(strings.ToLower(strings.TrimSpace(pace)))
	if normalized == "" {
		normalized = PaceModerate
	}
	switch normalized {
	case PaceRelaxed, PaceModerate, PacePacked:
	default:
		return TripRequest{}, fmt.Errorf("%w: pace must be one of relaxed, moderate, packed", utils.ErrInvalidInput)
	}

	return TripRequest{
		City:      city,
		StartDate: startDate,
		EndDate:   endDate,
		Budget:    budget,
		Interests: interests,
		Pace:      normalized,
		GroupSize: groupSize,
	}, nil
}

// NumDays is the trip length in whole days.
func (t TripRequest) NumDays() int {
	return int(t.EndDate.Sub(t.StartDate).Hours() / 24)
}

// DailyBudget divides the total budget evenly across days.
func (t TripRequest) DailyBudget() float64 {
	days := t.NumDays()
	if days < 1 {
		days = 1
	}
	return t.Budget / float64(days)
}
