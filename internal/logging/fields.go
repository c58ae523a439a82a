package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldPort       = "port"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldSport      = "sport"
	FieldMatchID    = "match_id"
	FieldUserID     = "user_id"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
