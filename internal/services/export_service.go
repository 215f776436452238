package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"tripmap/internal/models/response_models"
	"tripmap/pkg/utils"
)

type ExportServiceInterface interface {
	// RenderPDF renders an itinerary to a printable PDF. The plan comes from
	// the client; nothing is persisted.
	RenderPDF(plan response_models.TravelPlan) ([]byte, error)
}

type ExportService struct{}

func NewExportService() ExportServiceInterface {
	return &ExportService{}
}

func (e *ExportService) RenderPDF(plan response_models.TravelPlan) ([]byte, error) {
	if len(plan.Days) == 0 {
		return nil, utils.ErrEmptyPlan
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(30, 41, 59)
	pdf.Rect(0, 0, 210, 26, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 7)
	pdf.CellFormat(170, 10, "TripMap", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 16)
	pdf.CellFormat(170, 6, "AI-Powered Travel Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(34)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(170, 8, plan.Title, "", "L", false)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(170, 6, "Generated "+time.Now().Format("02 Jan 2006, 15:04 MST"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if plan.Overview != nil {
		e.writeOverview(pdf, plan.Overview)
	}

	sectionHeader := func(title string) {
		pdf.SetFillColor(30, 41, 59)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	for _, day := range plan.Days {
		sectionHeader(day.Day)
		for _, node := range day.Nodes {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(100, 100, 100)
			pdf.CellFormat(30, 7, node.Time, "", 0, "L", false, 0, "")
			pdf.SetTextColor(20, 20, 20)
			pdf.CellFormat(60, 7, node.Place, "", 0, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(80, 7, node.Activity, "", "L", false)
			if node.Description != "" {
				pdf.SetFont("Helvetica", "I", 9)
				pdf.SetTextColor(100, 100, 100)
				pdf.SetX(50)
				pdf.MultiCell(140, 5, node.Description, "", "L", false)
				pdf.SetTextColor(0, 0, 0)
			}
			if node.Details != nil {
				e.writeNodeDetails(pdf, node.Details)
			}
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPDFGeneration, err)
	}
	return buf.Bytes(), nil
}

func (e *ExportService) writeOverview(pdf *gofpdf.Fpdf, overview *response_models.PlanOverview) {
	pdf.SetFillColor(248, 250, 252)
	pdf.SetFont("Helvetica", "", 10)

	if overview.Summary != "" {
		pdf.MultiCell(170, 6, overview.Summary, "", "L", false)
		pdf.Ln(1)
	}
	row := func(label, value string) {
		if value == "" {
			return
		}
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(40, 6, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(130, 6, value, "", 1, "L", false, 0, "")
	}
	row("Estimated cost", overview.EstimatedCost)
	row("Best time to visit", overview.BestTimeToVisit)
	for i, tip := range overview.Tips {
		row(fmt.Sprintf("Tip %d", i+1), tip)
	}
	pdf.Ln(2)
}

func (e *ExportService) writeNodeDetails(pdf *gofpdf.Fpdf, details *response_models.NodeDetails) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(130, 130, 130)

	line := func(label, value string) {
		if value == "" {
			return
		}
		pdf.SetX(50)
		pdf.CellFormat(140, 4, label+": "+value, "", 1, "L", false, 0, "")
	}
	line("Address", details.Address)
	line("Hours", details.OpeningHours)
	line("Cost", details.Cost)
	line("Duration", details.Duration)
	pdf.SetTextColor(0, 0, 0)
}
