package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldQuery       = "query"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldUserAgent   = "user_agent"
	FieldError       = "error"
	FieldYear        = "year"
	FieldCompareYear = "compare_year"
	FieldMonth       = "month"
	FieldExcluded    = "excluded"
	FieldPage        = "page"
	FieldPages       = "pages"
	FieldCount       = "transactions"
	FieldCacheKey    = "cache_key"
	FieldBackend     = "backend"
	FieldPrefKey     = "key"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentEngine  = "engine"
	ComponentFetch   = "fetch"
	ComponentPrefs   = "prefs"
	ComponentStorage = "storage"
	ComponentCache   = "cache"
	ComponentExport  = "export"
)
