package services

import (
	"fmt"
	"math"

	"wayfare/internal/models/domain_models"
	"wayfare/pkg/utils"
)

const (
	mealCostPerPerson      = 40.0
	transportCostPerPerson = 15.0
	dailyBudgetOverrun     = 1.2
	defaultPlacesPerDay    = 3
)

// placesPerDayTarget maps pace to how many places a day should hold.
// Pace is validated at TripRequest construction; the default branch is a
// fallback for values that bypassed it.
func placesPerDayTarget(pace domain_models.Pace) int {
	switch pace {
	case domain_models.PaceRelaxed:
		return 2
	case domain_models.PaceModerate:
		return 3
	case domain_models.PacePacked:
		return 5
	default:
		return defaultPlacesPerDay
	}
}

// AllocatePlacesToDays distributes the ranked places across the trip's days.
// The ranked list is consumed front to back through a single cursor shared by
// all days; a place rejected for cost ends that day's packing outright, even
// if cheaper places sit further down the queue. That no-lookahead behavior is
// deliberate and pinned by tests.
func AllocatePlacesToDays(
	trip domain_models.TripRequest,
	ranked []domain_models.Place,
) []domain_models.DayPlan {

	numDays := trip.NumDays()
	if numDays < 1 {
		return []domain_models.DayPlan{}
	}

	target := placesPerDayTarget(trip.Pace)
	dailyBudget := trip.DailyBudget()
	groupSize := float64(trip.GroupSize)

	mealCost := mealCostPerPerson * groupSize
	transportCost := transportCostPerPerson * groupSize

	plans := make([]domain_models.DayPlan, 0, numDays)
	cursor := 0

	for dayNum := 1; dayNum <= numDays; dayNum++ {
		dayPlaces := []domain_models.Place{}
		dayCost := mealCost

		for len(dayPlaces) < target &&
			cursor < len(ranked) &&
			dayCost+ranked[cursor].EstimatedCost*groupSize <= dailyBudget*dailyBudgetOverrun {

			place := ranked[cursor]
			dayPlaces = append(dayPlaces, place)
			dayCost += place.EstimatedCost * groupSize
			cursor++
		}

		dayCost += transportCost

		plans = append(plans, domain_models.DayPlan{
			DayIndex:  dayNum,
			Date:      utils.AddDays(trip.StartDate, dayNum-1),
			Places:    dayPlaces,
			TotalCost: roundToCents(dayCost),
			Notes:     fmt.Sprintf("Includes meals (~$%.0f) and transport (~$%.0f)", mealCost, transportCost),
		})
	}

	return plans
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
