// Package fiscalyear implements the command listing who completed trainings in a fiscal year.
package fiscalyear

import (
	"fmt"
	"io"

	"fjacquet/training-report/cmd/common"
	"fjacquet/training-report/cmd/root"
	"fjacquet/training-report/internal/container"
	"fjacquet/training-report/internal/logging"
	"fjacquet/training-report/internal/query"
	"fjacquet/training-report/internal/report"

	"github.com/spf13/cobra"
)

var (
	trainingsFlag string
	yearFlag      string
)

// Cmd represents the fiscal-year command
var Cmd = &cobra.Command{
	Use:   "fiscal-year [training...]",
	Short: "List people who completed trainings in a fiscal year",
	Long: `List all people that completed the given trainings within a fiscal year.
Fiscal year Y runs from July 1 of Y-1 through June 30 of Y.

The result is printed and saved to task_2_output.<format> in the output directory.

Example:
  training-report fiscal-year --trainings '"Electrical Safety for Labs", "X-Ray Safety"' --year 2024
  training-report fiscal-year "X-Ray Safety" --year 2024 -f csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		trainings := args
		if trainingsFlag != "" {
			trainings = append(query.ParseTrainingList(trainingsFlag), args...)
		}
		return Run(root.GetContainer(), cmd.OutOrStdout(), trainings, yearFlag)
	},
}

func init() {
	Cmd.Flags().StringVarP(&trainingsFlag, "trainings", "t", "", `Comma separated training names, e.g. '"Training 1", "Training 2"'`)
	Cmd.Flags().StringVarP(&yearFlag, "year", "y", "", "Fiscal year, e.g. 2024")
	_ = Cmd.MarkFlagRequired("year")
}

// Run computes the fiscal year report for trainings, saves it and echoes it.
func Run(c *container.Container, out io.Writer, trainings []string, year string) error {
	if c == nil {
		return fmt.Errorf("container not initialized")
	}
	logger := c.GetLogger().WithField(logging.FieldOperation, "fiscal-year")

	if len(trainings) == 0 {
		return fmt.Errorf("at least one training name is required")
	}

	fiscalYear, err := query.ParseFiscalYear(year)
	if err != nil {
		return common.Fail(logger, "fiscal-year", "please provide a valid fiscal year as an integer", err)
	}

	records := common.LoadRecords(c)
	result, err := query.FilterByFiscalYear(records, trainings, fiscalYear)
	if err != nil {
		return common.Fail(logger, "fiscal-year", "fiscal year report aborted", err)
	}
	logger.Info("Filtered completions by fiscal year",
		logging.F(logging.FieldFiscalYear, fiscalYear),
		logging.F(logging.FieldTrainings, len(trainings)))

	render := func(format report.Format) ([]byte, error) {
		return c.GetReportGenerator().GenerateFiscalYearReport(result, format)
	}

	path, err := common.Save(c, c.GetConfig().Output.FiscalYearFile, render)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Results saved to '%s':\n", path); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}
	if err := common.Echo(out, c.GetFormat(), render); err != nil {
		return common.Fail(logger, "fiscal-year", "failed to render fiscal year report", err)
	}
	return nil
}
