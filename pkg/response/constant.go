package response

const (
	DateTimeFormat = "2006-01-02 15:04:05"

	// MsgSuccess is the message for successful responses.
	MsgSuccess = "Success"
	// MsgInternalError hides internal detail from callers on 5xx responses.
	MsgInternalError = "Internal server error"
	// MsgUnauthorized is returned on failed API key checks.
	MsgUnauthorized = "Unauthorized"
)
