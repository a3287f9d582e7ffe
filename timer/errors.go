package timer

import "github.com/ayoisaiah/simmer/internal/apperr"

var (
	errWriteStatus = &apperr.Error{
		Message: "unable to write status file",
	}

	errReadStatus = &apperr.Error{
		Message: "unable to read status file",
	}

	errCookingDelete = &apperr.Error{
		Message: "cannot delete '%s' while it's cooking",
	}
)
