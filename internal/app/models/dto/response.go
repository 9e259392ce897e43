package dto

import "time"

// APIResponse is the envelope every endpoint responds with
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-04-23T12:01:05.123Z"`
}

// NewSuccessResponse wraps data in a successful envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// PaginationInfo describes the page that was returned
type PaginationInfo struct {
	Current int   `json:"current" example:"1"`
	Pages   int   `json:"pages" example:"5"`
	Total   int64 `json:"total" example:"42"`
	Limit   int   `json:"limit" example:"10"`
}
