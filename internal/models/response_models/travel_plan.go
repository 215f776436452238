package response_models

// TravelPlan is the day-by-day itinerary returned to the client, either parsed
// from the model output or built by the deterministic fallback.
type TravelPlan struct {
	Title    string        `json:"title"`
	Overview *PlanOverview `json:"overview,omitempty"`
	Days     []TravelDay   `json:"days"`
}

type PlanOverview struct {
	Summary         string   `json:"summary,omitempty"`
	EstimatedCost   string   `json:"estimated_cost,omitempty"`
	BestTimeToVisit string   `json:"best_time_to_visit,omitempty"`
	Tips            []string `json:"tips,omitempty"`
}

type TravelDay struct {
	Day   string       `json:"day"`
	Nodes []TravelNode `json:"nodes"`
}

// TravelNode is one timed activity. Time is a display string, never parsed.
type TravelNode struct {
	Time        string       `json:"time"`
	Place       string       `json:"place"`
	Activity    string       `json:"activity"`
	Description string       `json:"description,omitempty"`
	Details     *NodeDetails `json:"details,omitempty"`
}

type NodeDetails struct {
	Address      string   `json:"address,omitempty"`
	OpeningHours string   `json:"opening_hours,omitempty"`
	Cost         string   `json:"cost,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	Tips         []string `json:"tips,omitempty"`
}
