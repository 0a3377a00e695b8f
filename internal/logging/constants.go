package logging

// Standard field keys, so log lines stay greppable across packages.
const (
	FieldFile       = "file_path"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldBackend    = "backend"
	FieldFormat     = "format"
	FieldPage       = "page"
	FieldPages      = "pages"
	FieldCount      = "count"
	FieldFailed     = "failed"
	FieldDirectory  = "directory"
	FieldDuration   = "duration_ms"
)
