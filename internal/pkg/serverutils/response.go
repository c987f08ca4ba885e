package serverutils

// Response is the common JSON envelope for non-streaming endpoints.
type Response struct {
	Success bool        `json:"success"`
	Code    int         `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(data interface{}) Response {
	return Response{Success: true, Data: data}
}

func ErrorResponse(code int, message string) Response {
	return Response{Success: false, Code: code, Message: message}
}
