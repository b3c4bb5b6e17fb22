package response

type SuccessResponse struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
	Data    any     `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool    `json:"success"`
	Message *string `json:"message,omitempty"`
}

const unknownError = "Unknown Error"

// Success builds the success envelope. A string msg becomes the message and
// the optional data the payload; anything else is sent as the payload itself.
func Success(msg any, data ...any) *SuccessResponse {
	message, ok := msg.(string)
	if !ok {
		return &SuccessResponse{Success: true, Data: msg}
	}

	response := &SuccessResponse{Success: true, Message: &message}
	if len(data) > 0 {
		response.Data = data[0]
	}
	return response
}

func Error(msg any) *ErrorResponse {
	message, ok := msg.(string)
	if !ok {
		message = unknownError
	}
	return &ErrorResponse{Success: false, Message: &message}
}
