package utils

// Response is the envelope for failure payloads. Successful endpoints answer
// with their own DTOs; only errors and validation reports use this shape.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"` // validation details, null otherwise
}

// NewErrorResponse builds an error envelope with no data payload.
func NewErrorResponse(status int, message string) Response {
	return Response{
		Status:  status,
		Message: message,
		Data:    nil,
	}
}
