package models

// ServiceError represents an error from an upstream OpenStack call.
// It preserves the HTTP status code and response body for proper propagation.
type ServiceError struct {
	StatusCode   int
	ResponseBody string
	Message      string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// NewServiceError creates a new ServiceError with the given parameters
func NewServiceError(statusCode int, responseBody, message string) *ServiceError {
	return &ServiceError{
		StatusCode:   statusCode,
		ResponseBody: responseBody,
		Message:      message,
	}
}
