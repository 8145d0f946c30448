// Package interactive implements the prompt driven command running all three reports in sequence.
package interactive

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"fjacquet/training-report/cmd/common"
	"fjacquet/training-report/cmd/root"
	"fjacquet/training-report/internal/container"
	"fjacquet/training-report/internal/dateutils"
	"fjacquet/training-report/internal/logging"
	"fjacquet/training-report/internal/query"
	"fjacquet/training-report/internal/report"

	"github.com/spf13/cobra"
)

// User-facing messages printed when a prompt answer cannot be used.
const (
	InvalidYearMessage = "Error: Please provide a valid fiscal year as an integer."
	InvalidDateMessage = "Error: Please provide a valid date in the expected format."
)

const (
	trainingsPrompt = `Enter the trainings in the format: '"Training 1", "Training 2"' (comma separated): `
	yearPrompt      = "Enter the fiscal year (e.g., 2024): "
	datePrompt      = "Enter the date in 'Oct 1st, 2023' format: "
)

// Cmd represents the interactive command
var Cmd = &cobra.Command{
	Use:   "interactive",
	Short: "Run all three reports, prompting for their parameters",
	Long: `Print the completion counts, then prompt for trainings and a fiscal year and
save the fiscal year report, then prompt for a reference date and print the
expired and soon-to-expire trainings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(root.GetContainer(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// session carries the prompt state of one interactive run.
type session struct {
	c       *container.Container
	logger  logging.Logger
	scanner *bufio.Scanner
	out     io.Writer
}

// Run executes the interactive flow reading answers from in.
// Unusable answers print a message and end the flow without an error.
func Run(c *container.Container, in io.Reader, out io.Writer) error {
	if c == nil {
		return fmt.Errorf("container not initialized")
	}
	s := &session{
		c:       c,
		logger:  c.GetLogger().WithField(logging.FieldOperation, "interactive"),
		scanner: bufio.NewScanner(in),
		out:     out,
	}

	records := common.LoadRecords(c)
	if len(records) == 0 {
		s.logger.Warn("No training records available, nothing to report",
			logging.F(logging.FieldInputFile, c.GetConfig().Data.InputFile))
		return nil
	}

	s.println("\n=== Task 1: Count of Completed Trainings ===")
	counts := query.CountCompletions(records)
	if err := s.echo(func(format report.Format) ([]byte, error) {
		return c.GetReportGenerator().GenerateCountReport(counts, format)
	}); err != nil {
		return err
	}

	s.println("\n=== Task 2: People Who Completed Specified Trainings ===")
	trainings := query.ParseTrainingList(s.ask(trainingsPrompt))
	fiscalYear, err := query.ParseFiscalYear(s.ask(yearPrompt))
	if err != nil {
		s.logger.WithError(err).Debug("Rejected fiscal year answer")
		s.println(InvalidYearMessage)
		return nil
	}
	fiscal, err := query.FilterByFiscalYear(records, trainings, fiscalYear)
	if err != nil {
		s.logger.WithError(err).Error("Fiscal year report aborted")
		s.println("Error: " + err.Error())
		return nil
	}
	renderFiscal := func(format report.Format) ([]byte, error) {
		return c.GetReportGenerator().GenerateFiscalYearReport(fiscal, format)
	}
	path, err := common.Save(c, c.GetConfig().Output.FiscalYearFile, renderFiscal)
	if err != nil {
		return err
	}
	s.println(fmt.Sprintf("Results saved to '%s':", path))
	if err := s.echo(renderFiscal); err != nil {
		return err
	}

	s.println("\n=== Task 3: People with Expired or Expiring Soon Trainings ===")
	reference, err := dateutils.ParseReferenceDate(s.ask(datePrompt))
	if err != nil {
		s.logger.WithError(err).Debug("Rejected reference date answer")
		s.println(InvalidDateMessage)
		return nil
	}
	expirations, err := query.ClassifyExpirations(records, reference)
	if err != nil {
		s.logger.WithError(err).Error("Expiration report aborted")
		s.println("Error: " + err.Error())
		return nil
	}
	return s.echo(func(format report.Format) ([]byte, error) {
		return c.GetReportGenerator().GenerateExpirationReport(expirations, format)
	})
}

// ask prints prompt and returns the next input line. Exhausted input yields "".
func (s *session) ask(prompt string) string {
	_, _ = fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		_, _ = fmt.Fprintln(s.out)
		return ""
	}
	return strings.TrimRight(s.scanner.Text(), "\r")
}

func (s *session) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}

func (s *session) echo(render common.Render) error {
	if err := common.Echo(s.out, s.c.GetFormat(), render); err != nil {
		return common.Fail(s.logger, "interactive", "failed to render report", err)
	}
	return nil
}
