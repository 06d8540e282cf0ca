package models

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ReportInfo describes one available report kind.
type ReportInfo struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// ReportResponse carries one report as JSON. Rows are objects keyed by
// column name; absent values are null.
type ReportResponse struct {
	Kind     string   `json:"kind"`
	Version  string   `json:"model_version,omitempty"`
	Building string   `json:"building,omitempty"`
	Columns  []string `json:"columns"`
	RowCount int      `json:"row_count"`
	Rows     any      `json:"rows"`
}
