package request_models

// TravelRequest carries the trip parameters collected by the planner form.
// Days is bounded at the widest form variant; stricter limits are a client concern.
type TravelRequest struct {
	Days            int      `json:"days" binding:"required,min=1,max=30"`
	StartLocation   string   `json:"start_location" binding:"required"`
	EndLocation     string   `json:"end_location"`
	TravelModes     []string `json:"travel_modes"`
	Interests       []string `json:"interests"`
	UserDescription string   `json:"user_description"`
	CustomInterests string   `json:"custom_interests"`
}
