package helper

import "github.com/gofiber/fiber/v2"

// ServiceError is a business-rule rejection carrying the HTTP status the
// boundary should answer with. Anything else bubbling out of a helper is an
// unexpected failure and maps to a logged 500.
type ServiceError struct {
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func BadRequest(message string) *ServiceError {
	return &ServiceError{Status: fiber.StatusBadRequest, Message: message}
}

func NotFound(message string) *ServiceError {
	return &ServiceError{Status: fiber.StatusNotFound, Message: message}
}

// AsServiceError unwraps a business rejection, or nil for unexpected errors.
func AsServiceError(err error) *ServiceError {
	if serr, ok := err.(*ServiceError); ok {
		return serr
	}
	return nil
}
