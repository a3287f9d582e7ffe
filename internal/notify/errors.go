package notify

import "github.com/ayoisaiah/simmer/internal/apperr"

var (
	errParseCmd = &apperr.Error{
		Message: "unable to parse notifications.cmd option",
	}

	errSpeaker = &apperr.Error{
		Message: "unable to initialise the speaker",
	}
)
