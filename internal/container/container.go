// Package container provides dependency injection for the training-report application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"io"

	"fjacquet/training-report/internal/config"
	"fjacquet/training-report/internal/fileutils"
	"fjacquet/training-report/internal/loader"
	"fjacquet/training-report/internal/logging"
	"fjacquet/training-report/internal/report"

	"github.com/google/uuid"
)

// Container holds all application dependencies and provides methods to access them.
// Container is immutable after creation.
type Container struct {
	runID     string
	logger    logging.Logger
	config    *config.Config
	format    report.Format
	loader    *loader.Loader
	generator *report.ReportGenerator
	writer    *fileutils.ReportWriter
}

// Option customizes container construction.
type Option func(*options)

type options struct {
	logOutput io.Writer
	logger    logging.Logger
}

// WithLogOutput sends log output to w.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// WithLogger uses logger instead of building one from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// NewContainer creates and wires all application dependencies.
// Every log line of the container's components carries the run ID.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return nil, err
	}

	base := o.logger
	if base == nil {
		base = logging.NewLogrusAdapterWithOutput(cfg.Log.Level, cfg.Log.Format, o.logOutput)
	}

	runID := uuid.New().String()
	logger := base.WithField(logging.FieldRunID, runID)

	c := &Container{
		runID:     runID,
		logger:    logger,
		config:    cfg,
		format:    format,
		loader:    loader.NewLoader(logger),
		generator: report.NewReportGenerator(logger),
		writer:    fileutils.NewReportWriter(cfg.Output.Directory, logger),
	}

	logger.Debug("Container initialized",
		logging.F(logging.FieldInputFile, cfg.Data.InputFile),
		logging.F(logging.FieldFormat, string(format)))

	return c, nil
}

// GetRunID returns the identifier attached to every log line of this run.
func (c *Container) GetRunID() string {
	return c.runID
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetFormat returns the configured report format.
func (c *Container) GetFormat() report.Format {
	return c.format
}

// GetLoader returns the record loader.
func (c *Container) GetLoader() *loader.Loader {
	return c.loader
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.generator
}

// GetReportWriter returns the writer for the configured output directory.
func (c *Container) GetReportWriter() *fileutils.ReportWriter {
	return c.writer
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
