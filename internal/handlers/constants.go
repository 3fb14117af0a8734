package handlers

const (
	SessionCookieName = "timeclash_session"
	CSRFFormField     = "csrf_token"
	CSRFHeader        = "X-CSRF-Token"

	ErrInvalidFormData     = "Invalid form data"
	ErrInternalServerError = "Internal server error"
	ErrInvalidCSRFToken    = "Invalid or missing CSRF token"
	ErrTooManyRequests     = "Too many requests"
	ErrNoSession           = "No active session"
	ErrNothingGraded       = "No answer was graded"
)
