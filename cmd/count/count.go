// Package count implements the command reporting completions per training.
package count

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

var save bool

// Cmd represents the count command
var Cmd = &cobra.Command{
	Use:   "count",
	Short: "Count completions per training",
	Long: `List each completed training with the number of completions recorded for it.

Example:
  training-report count -i trainings.txt
  training-report count --save -f csv -o reports/`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(root.GetContainer(), cmd.OutOrStdout(), save)
	},
}

func init() {
	Cmd.Flags().BoolVar(&save, "save", false, "Also write the report to task_1_output.<format>")
}

// Run prints the completion counts and optionally saves them.
func Run(c *container.Container, out io.Writer, save bool) error {
	if c == nil {
		return fmt.Errorf("container not initialized")
	}
	logger := c.GetLogger().WithField(logging.FieldOperation, "count")

	records := common.LoadRecords(c)
	counts := query.CountCompletions(records)
	logger.Info("Counted completions",
		logging.F(logging.FieldTrainings, len(counts)),
		logging.F(logging.FieldCount, counts.Total()))

	render := func(format report.Format) ([]byte, error) {
		return c.GetReportGenerator().GenerateCountReport(counts, format)
	}

	if err := common.Echo(out, c.GetFormat(), render); err != nil {
		return common.Fail(logger, "count", "failed to render completion counts", err)
	}
	if save {
		if _, err := common.Save(c, common.CountReportFile, render); err != nil {
			return err
		}
	}
	return nil
}
