package user

import "errors"

var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("account is deactivated")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// Business rule errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch err {
	case ErrUserNotFound:
		return "USER_NOT_FOUND"
	case ErrEmailAlreadyExists:
		return "EMAIL_ALREADY_EXISTS"
	case ErrInvalidCredentials:
		return "INVALID_CREDENTIALS"
	case ErrUserInactive:
		return "USER_INACTIVE"
	case ErrInvalidToken:
		return "INVALID_TOKEN"
	case ErrWrongPassword:
		return "WRONG_PASSWORD"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch err {
	case ErrUserNotFound:
		return 404
	case ErrEmailAlreadyExists:
		return 409
	case ErrInvalidCredentials, ErrInvalidToken:
		return 401
	case ErrUserInactive:
		return 403
	case ErrWrongPassword:
		return 400
	default:
		return 500
	}
}
