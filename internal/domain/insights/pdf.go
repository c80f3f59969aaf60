package insights

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF writes report as a one-page A4 document.
func RenderPDF(w io.Writer, report Report, generatedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Business Insights")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.UTC().Format(time.RFC3339)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Overall Employee Statistics")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total Number of Employees: %d", report.TotalEmployees))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Average Number of Goals per Employee: %.2f", report.AvgGoalsPerEmployee))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Task Approval Rates")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("MIN: %.2f", report.MinTaskApprovalRate))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("MAX: %.2f", report.MaxTaskApprovalRate))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("AVG: %.2f", report.AvgTaskApprovalRate))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Goals by Status")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	if len(report.GoalsByStatus) == 0 {
		pdf.Cell(0, 8, "No goals recorded.")
		pdf.Ln(7)
	}
	for _, sc := range report.GoalsByStatus {
		pdf.CellFormat(60, 8, sc.Status, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", sc.Count), "1", 1, "R", false, 0, "")
	}

	return pdf.Output(w)
}
