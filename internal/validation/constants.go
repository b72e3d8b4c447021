package validation

// Error Messages
const (
	ErrMsgReadDataFileFailed   = "failed to read data file %s: %w"
	ErrMsgLoadSchemaFailed     = "failed to load schema %s: %w"
	ErrMsgParseDataFailed      = "failed to parse JSON data: %w"
	ErrMsgReadSchemaFailed     = "failed to read schema file: %w"
	ErrMsgParseSchemaFailed    = "failed to parse schema JSON: %w"
	ErrMsgAddSchemaFailed      = "failed to add schema resource: %w"
	ErrMsgCompileSchemaFailed  = "failed to compile schema: %w"
	ErrMsgSchemaNotFound       = "schema file not found: %s"
	ErrMsgGetwdFailed          = "failed to get current directory: %w"
	ErrFmtValidationFailedList = "%w:\n%s"
)

const rootLocation = "(root)"
