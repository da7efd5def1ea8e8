package post

import "errors"

var (
	// Validation errors
	ErrInvalidOrdering = errors.New("unsupported ordering field")

	// Business rule errors
	ErrPostNotFound = errors.New("post not found")
	ErrNotPostOwner = errors.New("you can only modify your own posts")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch err {
	case ErrPostNotFound:
		return "POST_NOT_FOUND"
	case ErrInvalidOrdering:
		return "INVALID_ORDERING"
	case ErrNotPostOwner:
		return "NOT_POST_OWNER"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch err {
	case ErrPostNotFound:
		return 404
	case ErrInvalidOrdering:
		return 400
	case ErrNotPostOwner:
		return 403
	default:
		return 500
	}
}
