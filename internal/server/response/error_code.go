package response

// ErrCode identifies an API error.
type ErrCode string

const (
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrInvalidQuery   ErrCode = "INVALID_QUERY"

	ErrNotFound ErrCode = "NOT_FOUND"

	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrInvalidQuery:
		return "Invalid query parameter."
	case ErrNotFound:
		return "Resource not found."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "Internal server error."
	default:
		return "An unexpected error occurred."
	}
}
