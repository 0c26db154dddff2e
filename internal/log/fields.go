package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldSuccess     = "success"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldBaseURL     = "base_url"
	FieldBackend     = "backend"
	FieldExpenseID   = "expense_id"
	FieldExpenseDesc = "expense_description"
	FieldAmountCents = "amount_cents"
	FieldCategory    = "category"
	FieldFilter      = "filter"
	FieldCount       = "count"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentREST   = "rest"
	ComponentMemory = "memory"
	ComponentScreen = "screen"
	ComponentTerm   = "term"
)

// Operations defines standard operation names
const (
	OpList     = "list"
	OpCreate   = "create"
	OpDelete   = "delete"
	OpValidate = "validate"
	OpRender   = "render"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeNetwork       = "network_error"
	ErrorTypeStatus        = "status_error"
	ErrorTypeConfiguration = "configuration_error"
)
