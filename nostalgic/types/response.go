package types

// Response is the success envelope shared by every endpoint.
type Response struct {
	StatusCode int    `json:"status_code"`
	Detail     string `json:"detail"`
	Data       any    `json:"data,omitempty"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
