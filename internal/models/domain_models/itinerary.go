package domain_models

import "time"

// DayPlan is one day of the itinerary. Places are in visiting order.
type DayPlan struct {
	DayIndex  int
	Date      time.Time
	Places    []Place
	TotalCost float64
	Notes     string
}

func (d DayPlan) PlaceCount() int {
	return len(d.Places)
}

// TotalTime is the estimated time in minutes for all of the day's activities.
func (d DayPlan) TotalTime() int {
	total := 0
	for _, place := range d.Places {
		total += place.TimeNeeded
	}
	return total
}

// Itinerary is the terminal output of the planner.
type Itinerary struct {
	TripRequest TripRequest
	Days        []DayPlan
	TotalCost   float64
	Notes       string
	CreatedAt   time.Time
}

func (i Itinerary) TotalPlaces() int {
	total := 0
	for _, day := range i.Days {
		total += day.PlaceCount()
	}
	return total
}

func (i Itinerary) BudgetRemaining() float64 {
	return i.TripRequest.Budget - i.TotalCost
}

func (i Itinerary) BudgetUsedPercent() float64 {
	if i.TripRequest.Budget == 0 {
		return 0
	}
	return i.TotalCost / i.TripRequest.Budget * 100
}
