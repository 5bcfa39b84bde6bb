package dto

import "time"

// ErrorResponse is the JSON body returned for every failed API request.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid sort column"`
	ErrorDetails string    `json:"error_details,omitempty" example:"unknown column \"price\""`
	Timestamp    time.Time `json:"timestamp" example:"2026-01-02T15:04:05Z"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current UTC time.
// err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
