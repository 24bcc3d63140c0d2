package response_models

type PlaceResponse struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	EstimatedCost float64  `json:"estimated_cost"`
	Hours         *string  `json:"hours,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	TimeNeeded    int      `json:"time_needed"`
	Address       *string  `json:"address,omitempty"`
}

type DayPlanResponse struct {
	Day        int             `json:"day"`
	Date       string          `json:"date"`
	Places     []PlaceResponse `json:"places"`
	TotalCost  float64         `json:"total_cost"`
	TotalTime  int             `json:"total_time_minutes"`
	PlaceCount int             `json:"place_count"`
	Notes      string          `json:"notes"`
}

type ItineraryResponse struct {
	ID                string            `json:"id"`
	City              string            `json:"city"`
	DisplayName       string            `json:"display_name"`
	StartDate         string            `json:"start_date"`
	EndDate           string            `json:"end_date"`
	Pace              string            `json:"pace"`
	GroupSize         int               `json:"group_size"`
	Days              []DayPlanResponse `json:"days"`
	TotalPlaces       int               `json:"total_places"`
	TotalCost         float64           `json:"total_cost"`
	Budget            float64           `json:"budget"`
	BudgetRemaining   float64           `json:"budget_remaining"`
	BudgetUsedPercent float64           `json:"budget_used_percent"`
	Notes             string            `json:"notes"`
	TravelTips        string            `json:"travel_tips,omitempty"`
	CreatedAt         string            `json:"created_at"`
}
