package request_models

type CreateItineraryRequest struct {
	City string `json:"city" binding:"required"`
	// Calendar dates, "2006-01-02"
	StartDate string   `json:"start_date" binding:"required"`
	EndDate   string   `json:"end_date" binding:"required"`
	Budget    float64  `json:"budget" binding:"required,gt=0"`
	Interests []string `json:"interests"`
	Pace      string   `json:"pace"`
	GroupSize int      `json:"group_size"`
}
