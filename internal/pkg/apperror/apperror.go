package apperror

// AppError is a custom error type that carries an HTTP status and a machine-readable
// code used by the response envelope.
type AppError struct {
	Status  int    // HTTP Status Code (e.g., 400, 404)
	Code    string // Stable error code exposed in the envelope (e.g., "NOT_FOUND")
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status, code and message.
func New(status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
