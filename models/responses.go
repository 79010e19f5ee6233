package models

// ErrorResponse is the uniform error body returned by the HTTP layer.
type ErrorResponse struct {
	// Error is a human-readable message describing what went wrong.
	Error string `json:"error"`

	// Fields carries field-specific validation messages keyed by form
	// field name. Empty for non-validation failures.
	Fields map[string]string `json:"fields,omitempty"`
}

// Dashboard is the per-user history view: all records owned by the
// account, most recent first, plus a presentation flag for warning
// banners.
type Dashboard struct {
	// Records is the account's submitted readings, ordered most recent
	// first.
	Records []HealthRecord `json:"records"`

	// HasHighRisk is true iff at least one record has risk "High".
	HasHighRisk bool `json:"has_high_risk"`
}

// UserInfo is the non-sensitive account projection shown in the admin
// summary.
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RiskTotals is the aggregate count of health records per risk category.
type RiskTotals struct {
	Total  int64 `json:"total"`
	High   int64 `json:"high"`
	Medium int64 `json:"medium"`
	Low    int64 `json:"low"`
}

// AdminSummary is the administrative overview: every registered account
// and the aggregate record counts per risk category.
type AdminSummary struct {
	Users  []UserInfo `json:"users"`
	Totals RiskTotals `json:"totals"`
}

// ServiceInfo is the public landing payload served on the root route.
type ServiceInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// FormField describes one input of a browser form rendered by the client.
type FormField struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// FormDescriptor tells the client how to build and submit a form. Served on
// the GET counterpart of every form-accepting route.
type FormDescriptor struct {
	Action string      `json:"action"`
	Method string      `json:"method"`
	Fields []FormField `json:"fields"`
}
