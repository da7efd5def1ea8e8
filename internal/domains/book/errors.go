package book

import "errors"

var (
	// Validation errors
	ErrInvalidOrdering = errors.New("unsupported ordering field")
	ErrAuthorNotFound  = errors.New("author does not exist")

	// Business rule errors
	ErrBookNotFound = errors.New("book not found")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch err {
	case ErrBookNotFound:
		return "BOOK_NOT_FOUND"
	case ErrAuthorNotFound:
		return "AUTHOR_NOT_FOUND"
	case ErrInvalidOrdering:
		return "INVALID_ORDERING"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch err {
	case ErrBookNotFound:
		return 404
	case ErrAuthorNotFound, ErrInvalidOrdering:
		return 400
	default:
		return 500
	}
}
