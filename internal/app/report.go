package app

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"crudkit/internal/domain"
	"crudkit/internal/models"
	"crudkit/internal/repositories"
)

// TaskReportProcessor renders every task into a tabular PDF summary.
type TaskReportProcessor struct {
	Tasks repositories.Repository[*models.Task]
}

func (p *TaskReportProcessor) Process(ctx context.Context) (domain.Result[[]byte], error) {
	page, err := p.Tasks.ReadAll(ctx, domain.All())
	if err != nil {
		return domain.Result[[]byte]{}, fmt.Errorf("load tasks: %w", err)
	}

	report, err := buildTaskReportPDF(page.Items)
	if err != nil {
		return domain.Result[[]byte]{}, fmt.Errorf("render report: %w", err)
	}
	return domain.Ok(report), nil
}

func buildTaskReportPDF(tasks []*models.Task) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Task Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TASK REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total tasks: %d", len(tasks)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 7, "Title", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Status", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Due", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, task := range tasks {
		status := "open"
		if task.Done {
			status = "done"
		}
		due := "-"
		if task.DueDate != nil {
			due = task.DueDate.Format("2006-01-02")
		}
		pdf.CellFormat(90, 7, task.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, status, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, due, "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
