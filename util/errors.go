package util

const (
	ERROR_BAD_CLONE_PATH       = 201
	ERROR_BAD_CLONE_GIT        = 202
	ERROR_BAD_OUTPUT_PATH      = 203
	ERROR_NO_REVISION          = 205
	ERROR_TREE_NOT_FOUND       = 208
	ERROR_UNKNOWN_LANGUAGE     = 210
	ERROR_BAD_DEFINITIONS      = 211
	ERROR_INCONSISTENT_TABLE   = 212
	ERROR_COLLIDING_DEFINITION = 213
)

type ErrorWithCode struct {
	StatusCode    int
	InternalError error
}

var _ error = &ErrorWithCode{}

func (e ErrorWithCode) Error() string {
	return e.InternalError.Error()
}

func (e ErrorWithCode) Unwrap() error {
	return e.InternalError
}

// WithCode attaches a process exit code to err. A nil err stays nil.
func WithCode(statusCode int, err error) error {
	if err == nil {
		return nil
	}
	return &ErrorWithCode{
		StatusCode:    statusCode,
		InternalError: err,
	}
}
