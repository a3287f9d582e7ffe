package config

import "github.com/ayoisaiah/simmer/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	errInvalidTickInterval = &apperr.Error{
		Message: "tick interval %v must be between %v and %v",
	}

	errInvalidStopCooldown = &apperr.Error{
		Message: "stop cooldown %v must be between 0s and %v",
	}

	errInvalidColor = &apperr.Error{
		Message: "accent color must be a valid hex color code (e.g. #FF0000), got %s",
	}
)
