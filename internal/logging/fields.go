// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldLHSPath    = "lhs_path"
	FieldRHSPath    = "rhs_path"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldLanguage = "language"
	FieldJobs     = "jobs"
	FieldDeadline = "deadline"

	// Statistics fields.
	FieldFilePairsDiscovered = "file_pairs_discovered"
	FieldFilePairsProcessed  = "file_pairs_processed"
	FieldNodesVisited        = "nodes_visited"
	FieldEditCost            = "edit_cost"
	FieldRowCount            = "row_count"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Parse fields.
	FieldAnomaly = "anomaly"
	FieldLine    = "line"
	FieldColumn  = "column"
)
