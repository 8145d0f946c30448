package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldOperation  = "operation"
	FieldStatus     = "status"
	FieldError      = "error"
	FieldDuration   = "duration_ms"
	FieldCount      = "count"
	FieldFormat     = "format"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldRunID      = "run_id"
	FieldPeople     = "people"
	FieldTrainings  = "trainings"
	FieldFiscalYear = "fiscal_year"
	FieldReference  = "reference_date"
)
