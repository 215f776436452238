package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmap/internal/models/response_models"
	"tripmap/pkg/utils"
)

func samplePlan() response_models.TravelPlan {
	return response_models.TravelPlan{
		Title: "3-Day Journey: Hanoi to Hue",
		Overview: &response_models.PlanOverview{
			Summary:       "A relaxed route down the coast",
			EstimatedCost: "USD 400",
			Tips:          []string{"Carry cash for markets"},
		},
		Days: []response_models.TravelDay{
			{
				Day: "Day 1",
				Nodes: []response_models.TravelNode{
					{
						Time:        "9:00 AM",
						Place:       "Hoan Kiem Lake",
						Activity:    "Morning walk",
						Description: "Loop the lake before the heat",
						Details: &response_models.NodeDetails{
							Address:      "Hang Trong, Hoan Kiem",
							OpeningHours: "Open 24h",
							Duration:     "1h",
						},
					},
					{Time: "6:00 PM", Place: "Old Quarter", Activity: "Street food dinner"},
				},
			},
			{
				Day:   "Day 2",
				Nodes: []response_models.TravelNode{{Time: "8:00 AM", Place: "Train Station", Activity: "Board the Reunification Express"}},
			},
		},
	}
}

func TestRenderPDF_ProducesDocument(t *testing.T) {
	svc := NewExportService()

	pdfBytes, err := svc.RenderPDF(samplePlan())

	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestRenderPDF_EmptyPlanRejected(t *testing.T) {
	svc := NewExportService()

	_, err := svc.RenderPDF(response_models.TravelPlan{Title: "Empty"})

	assert.ErrorIs(t, err, utils.ErrEmptyPlan)
}

func TestRenderPDF_MinimalPlan(t *testing.T) {
	svc := NewExportService()

	pdfBytes, err := svc.RenderPDF(response_models.TravelPlan{
		Title: "1-Day Journey: Kyoto to Kyoto",
		Days: []response_models.TravelDay{
			{Day: "Day 1", Nodes: []response_models.TravelNode{{Time: "9:00 AM", Place: "Kyoto", Activity: "Explore local attractions"}}},
		},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
