package model

// Diagnostics is the body of GET /test. Every failure is reported as a
// field value, never as an error.
type Diagnostics struct {
	Backend          string             `json:"backend"`
	Database         string             `json:"database"`
	DatabaseURL      string             `json:"database_url"`
	DatabaseName     string             `json:"database_name"`
	ConnectionStatus string             `json:"connection_status"`
	Collections      []string           `json:"collections"`
	DatabaseError    *DiagnosticsReason `json:"database_error,omitempty"`
}

// DiagnosticsReason says at which stage the store failed and why.
type DiagnosticsReason struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}
