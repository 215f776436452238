package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"tripmap/internal/models/request_models"
	"tripmap/internal/models/response_models"
	"tripmap/pkg/utils"
)

// planSystemPrompt is the static instruction sent with every generation call.
// It pins the exact JSON shape the parser expects.
const planSystemPrompt = `You are a travel assistant that generates structured travel itineraries and mind map data from user input.

The user will provide:
- Number of days
- Starting and ending location
- Mode of travel
- Types of places they are interested in (e.g. historical, cultural, natural, etc.)

Your task is to create a day-wise travel plan with clear time slots, activities, and locations. Then, convert this into a mind map friendly format.

Requirements:
- Each day must have 6-8 activities with realistic timing, starting early and ending late
- Use specific place names, not generic terms
- Weight activity selection heavily toward the user's interests
- Account for the chosen mode of travel when sequencing locations
- Include meals and rest breaks alongside attractions

Respond only in this JSON format:
{
  "title": "Trip Title",
  "days": [
    {
      "day": "Day 1",
      "nodes": [
        { "time": "6:00 AM", "place": "Place A", "activity": "Activity 1" },
        { "time": "10:00 AM", "place": "Place B", "activity": "Activity 2" }
      ]
    },
    {
      "day": "Day 2",
      "nodes": [
        { "time": "9:00 AM", "place": "Place C", "activity": "Activity 3" }
      ]
    }
  ]
}
Keep all descriptions short. Do not return any explanation or extra text, only the JSON.`

type PlanServiceInterface interface {
	// GeneratePlan turns a travel request into exactly one itinerary. It never
	// fails: any transport, parse or shape problem degrades to the
	// deterministic fallback plan.
	GeneratePlan(ctx context.Context, req request_models.TravelRequest) *response_models.TravelPlan

	// Probe checks that the chat endpoint is reachable. Observational only.
	Probe(ctx context.Context) bool
}

type PlanService struct {
	chatClient utils.ChatClientInterface
}

func NewPlanService(chatClient utils.ChatClientInterface) PlanServiceInterface {
	return &PlanService{
		chatClient: chatClient,
	}
}

func (p *PlanService) GeneratePlan(ctx context.Context, req request_models.TravelRequest) *response_models.TravelPlan {
	log.Printf("Generating travel plan: %d day(s), %s to %s", req.Days, req.StartLocation, req.EndLocation)

	content, err := p.chatClient.Complete(ctx, planSystemPrompt, buildUserPrompt(req))
	if err != nil {
		log.Printf("Chat completion failed, using fallback plan: %v", err)
		return FallbackPlan(req)
	}
	if strings.TrimSpace(content) == "" {
		log.Println("Chat completion returned empty content, using fallback plan")
		return FallbackPlan(req)
	}

	var plan response_models.TravelPlan
	if err := json.Unmarshal([]byte(cleanModelResponse(content)), &plan); err != nil {
		log.Printf("Failed to parse model output, using fallback plan: %v", err)
		return FallbackPlan(req)
	}

	if plan.Title == "" || len(plan.Days) == 0 {
		log.Printf("Model output failed shape validation (title=%q, days=%d), using fallback plan", plan.Title, len(plan.Days))
		return FallbackPlan(req)
	}

	log.Printf("Travel plan generated: %q with %d day(s)", plan.Title, len(plan.Days))
	return &plan
}

func (p *PlanService) Probe(ctx context.Context) bool {
	if err := p.chatClient.Ping(ctx); err != nil {
		log.Printf("Connectivity probe failed: %v", err)
		return false
	}
	log.Println("Connectivity probe succeeded")
	return true
}

// buildUserPrompt serializes the request as labeled plain-text lines. Custom
// interests extend the interests line rather than getting their own label.
func buildUserPrompt(req request_models.TravelRequest) string {
	interests := strings.Join(req.Interests, ", ")
	if req.CustomInterests != "" {
		if interests != "" {
			interests += ", " + req.CustomInterests
		} else {
			interests = req.CustomInterests
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Number of days: %d\n", req.Days)
	fmt.Fprintf(&b, "Starting location: %s\n", req.StartLocation)
	fmt.Fprintf(&b, "Ending location: %s\n", req.EndLocation)
	fmt.Fprintf(&b, "Mode of travel: %s\n", strings.Join(req.TravelModes, ", "))
	fmt.Fprintf(&b, "Interests: %s\n", interests)
	if req.UserDescription != "" {
		fmt.Fprintf(&b, "Trip description: %s\n", req.UserDescription)
	}
	b.WriteString("\nPlease create a detailed travel itinerary.")

	return b.String()
}

// cleanModelResponse strips markdown code fences the model may wrap around the
// JSON. Anything else that is not valid JSON stays a parse failure.
func cleanModelResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	return strings.TrimSpace(response)
}

// FallbackPlan builds the deterministic itinerary substituted when the model
// path fails. It uses only data already present in the request and cannot
// itself fail. For a one-day trip the first-day branch wins, so the single
// day is anchored at the start location.
func FallbackPlan(req request_models.TravelRequest) *response_models.TravelPlan {
	days := make([]response_models.TravelDay, 0, req.Days)
	for i := 0; i < req.Days; i++ {
		place := fmt.Sprintf("Stop %d", i)
		switch {
		case i == 0:
			place = req.StartLocation
		case i == req.Days-1:
			place = req.EndLocation
		}

		days = append(days, response_models.TravelDay{
			Day: fmt.Sprintf("Day %d", i+1),
			Nodes: []response_models.TravelNode{
				{
					Time:     "9:00 AM",
					Place:    place,
					Activity: fmt.Sprintf("Explore %s attractions", interestAt(req.Interests, 0, "local")),
				},
				{
					Time:     "2:00 PM",
					Place:    "Local Area",
					Activity: fmt.Sprintf("Visit %s sites", interestAt(req.Interests, 1, "cultural")),
				},
				{
					Time:     "6:00 PM",
					Place:    "City Center",
					Activity: "Dinner and evening exploration",
				},
			},
		})
	}

	return &response_models.TravelPlan{
		Title: fmt.Sprintf("%d-Day Journey: %s to %s", req.Days, req.StartLocation, req.EndLocation),
		Days:  days,
	}
}

func interestAt(interests []string, index int, fallback string) string {
	if index < len(interests) && interests[index] != "" {
		return interests[index]
	}
	return fallback
}
