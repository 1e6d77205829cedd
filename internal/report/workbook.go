package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexanderramin/quoteforge/internal/domain"
)

const (
	projectsSheet  = "Projects"
	breakdownSheet = "Breakdown"
)

var projectHeaders = []any{
	"ID", "Name", "Client", "Status", "Idea type", "Features", "Price",
	"Range min", "Range max", "Internal cost", "Margin %", "Health", "Weeks", "Config version", "Created",
}

var breakdownHeaders = []any{"Project ID", "Project", "Category", "Percentage", "Amount"}

// WriteWorkbook writes projects as an xlsx workbook with one row per
// project and one row per breakdown category.
func WriteWorkbook(w io.Writer, projects []*domain.Project) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", projectsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(breakdownSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	if err := setRow(f, projectsSheet, 1, projectHeaders); err != nil {
		return err
	}
	if err := setRow(f, breakdownSheet, 1, breakdownHeaders); err != nil {
		return err
	}

	bdRow := 2
	for i, p := range projects {
		est := p.Estimate
		row := []any{
			p.ID, p.Name, p.ClientName, string(p.Status), string(est.Inputs.IdeaType),
			strings.Join(est.Inputs.SelectedFeatures, ", "),
			est.ClientPrice.TotalPrice, est.ClientPrice.PriceRange.Min, est.ClientPrice.PriceRange.Max,
			est.Profit.InternalCost, est.Profit.ProfitMargin, string(est.Profit.HealthStatus),
			est.Timeline.TotalWeeks, p.ConfigVersion, p.CreatedAt.UTC().Format("2006-01-02"),
		}
		if err := setRow(f, projectsSheet, i+2, row); err != nil {
			return err
		}
		for _, bd := range est.Breakdown {
			if err := setRow(f, breakdownSheet, bdRow, []any{p.ID, p.Name, bd.Category, bd.Percentage, bd.Amount}); err != nil {
				return err
			}
			bdRow++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("%s row %d: %w", sheet, row, err)
	}
	return nil
}
