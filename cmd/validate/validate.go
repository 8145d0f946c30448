// Package validate implements the command checking a training record file.
package validate

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/training-report/cmd/common"
	"fjacquet/training-report/cmd/root"
	"fjacquet/training-report/internal/container"
	"fjacquet/training-report/internal/logging"
	"fjacquet/training-report/internal/validation"

	"github.com/spf13/cobra"
)

// ErrInvalidRecords is returned when the record file contains issues.
var ErrInvalidRecords = errors.New("training records contain invalid entries")

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the training record file for blank names and bad dates",
	Long: `Read the training record file and list every blank name and every
timestamp or expiration date that is not in MM/DD/YYYY format.

Reports abort on such dates, so run this first on a new export.

Example:
  training-report validate -i trainings.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(root.GetContainer(), cmd.OutOrStdout())
	},
}

// Run validates the configured input file and prints one line per issue.
func Run(c *container.Container, out io.Writer) error {
	if c == nil {
		return fmt.Errorf("container not initialized")
	}
	logger := c.GetLogger().WithField(logging.FieldOperation, "validate")
	inputFile := c.GetConfig().Data.InputFile

	if err := validation.IsValidInputFile(inputFile); err != nil {
		return common.Fail(logger, "validate", "cannot validate input", err)
	}
	records, err := c.GetLoader().Read(inputFile)
	if err != nil {
		return common.Fail(logger, "validate", "cannot validate input", err)
	}

	issues := validation.ValidateRecords(records)
	for _, issue := range issues {
		if _, err := fmt.Fprintln(out, issue.String()); err != nil {
			return fmt.Errorf("failed to print issue: %w", err)
		}
	}

	logger.Info("Validated training records",
		logging.F(logging.FieldInputFile, inputFile),
		logging.F(logging.FieldPeople, len(records)),
		logging.F(logging.FieldCount, len(issues)))

	if len(issues) > 0 {
		return fmt.Errorf("%w: %d issue(s) in %s", ErrInvalidRecords, len(issues), inputFile)
	}
	_, err = fmt.Fprintf(out, "%s: %d people, %d completions, no issues\n",
		inputFile, len(records), records.CompletionCount())
	return err
}
