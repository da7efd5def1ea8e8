package author

import "errors"

var (
	// Validation errors
	ErrInvalidName = errors.New("author name is invalid")

	// Business rule errors
	ErrAuthorNotFound = errors.New("author not found")

	// Database errors
	ErrDatabaseQuery = errors.New("database query error")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch err {
	case ErrAuthorNotFound:
		return "AUTHOR_NOT_FOUND"
	case ErrInvalidName:
		return "INVALID_NAME"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch err {
	case ErrAuthorNotFound:
		return 404
	case ErrInvalidName:
		return 400
	default:
		return 500
	}
}
