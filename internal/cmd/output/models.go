// Package output provides common output formatting utilities for CLI commands.
package output

import (
	"os"
	"strconv"

	"github.com/modelpareto/pareto/pkg/dataset"
)

// FormatModels renders a model listing in the requested format. Table
// output gets hand-shaped columns; other formats serialize the summaries
// as-is.
func FormatModels(summaries []dataset.ModelSummary, format Format) error {
	formatter := NewFormatter(format)

	var outputData any
	switch format {
	case FormatTable, "":
		outputData = modelsToTableData(summaries)
	default:
		outputData = summaries
	}

	return formatter.Format(os.Stdout, outputData)
}

// FormatAny renders any data type in the requested format.
func FormatAny(data any, format Format) error {
	formatter := NewFormatter(format)
	return formatter.Format(os.Stdout, data)
}

func modelsToTableData(summaries []dataset.ModelSummary) Data {
	data := Data{
		Headers: []string{"ID", "Name", "Provider", "Family", "Params (B)", "File"},
	}
	for _, s := range summaries {
		data.Rows = append(data.Rows, []string{
			s.ID,
			s.Name,
			s.Provider,
			s.Family,
			paramsCell(s.ParametersBillions, s.ActiveParametersBillions),
			s.File,
		})
	}
	return data
}

// paramsCell shows "total" or "total (active)" for MoE models.
func paramsCell(total, active *float64) string {
	if total == nil {
		return "-"
	}
	cell := strconv.FormatFloat(*total, 'f', -1, 64)
	if active != nil {
		cell += " (" + strconv.FormatFloat(*active, 'f', -1, 64) + " active)"
	}
	return cell
}
