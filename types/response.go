package types

type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Success bool        `json:"success,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError is a single field-level validation failure, keyed by the
// JSON name the client submitted.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
