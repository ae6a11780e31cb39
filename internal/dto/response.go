package dto

// Response is the uniform envelope every operation's result is wrapped in
// before crossing the HTTP boundary. Exactly one of Data and Error is set.
type Response struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

// OK wraps a successful payload.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail wraps a failure message.
func Fail(message string) Response {
	return Response{Success: false, Error: &message}
}
