package http

// APIResponse is the envelope every endpoint writes. Status mirrors the HTTP status.
type APIResponse struct {
	Status    int         `json:"status" example:"200"`
	Message   string      `json:"message" example:"OK"`
	RequestID string      `json:"request_id,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// ValidationError describes one rejected request field.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"price"`
	Message string                 `json:"message,omitempty" example:"price is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
