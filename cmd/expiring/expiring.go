// Package expiring implements the command listing expired and soon-to-expire trainings.
package expiring

import (
	"fmt"
	"io"

	"fjacquet/training-report/cmd/common"
	"fjacquet/training-report/cmd/root"
	"fjacquet/training-report/internal/container"
	"fjacquet/training-report/internal/dateutils"
	"fjacquet/training-report/internal/logging"
	"fjacquet/training-report/internal/query"
	"fjacquet/training-report/internal/report"

	"github.com/spf13/cobra"
)

var (
	dateFlag string
	save     bool
)

// Cmd represents the expiring command
var Cmd = &cobra.Command{
	Use:   "expiring",
	Short: "List expired and soon-to-expire trainings",
	Long: `Find people whose completed trainings have expired before the reference date
or expire within 30 days after it.

Example:
  training-report expiring --date "Oct 1st, 2023"
  training-report expiring --date 10/01/2023 --save -f xlsx`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(root.GetContainer(), cmd.OutOrStdout(), dateFlag, save)
	},
}

func init() {
	Cmd.Flags().StringVarP(&dateFlag, "date", "d", "", `Reference date, e.g. "Oct 1st, 2023" or 10/01/2023`)
	Cmd.Flags().BoolVar(&save, "save", false, "Also write the report to task_3_output.<format>")
	_ = Cmd.MarkFlagRequired("date")
}

// Run classifies expirations relative to the reference date and prints them.
func Run(c *container.Container, out io.Writer, date string, save bool) error {
	if c == nil {
		return fmt.Errorf("container not initialized")
	}
	logger := c.GetLogger().WithField(logging.FieldOperation, "expiring")

	reference, err := dateutils.ParseReferenceDate(date)
	if err != nil {
		return common.Fail(logger, "expiring", "please provide a valid date in the expected format", err)
	}

	records := common.LoadRecords(c)
	results, err := query.ClassifyExpirations(records, reference)
	if err != nil {
		return common.Fail(logger, "expiring", "expiration report aborted", err)
	}
	logger.Info("Classified expirations",
		logging.F(logging.FieldReference, dateutils.FormatRecordDate(reference)),
		logging.F(logging.FieldPeople, len(results)))

	render := func(format report.Format) ([]byte, error) {
		return c.GetReportGenerator().GenerateExpirationReport(results, format)
	}

	if err := common.Echo(out, c.GetFormat(), render); err != nil {
		return common.Fail(logger, "expiring", "failed to render expiration report", err)
	}
	if save {
		if _, err := common.Save(c, common.ExpirationReportFile, render); err != nil {
			return err
		}
	}
	return nil
}
