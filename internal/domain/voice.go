package domain

import "fmt"

// VoiceErrorCategory is the fixed set of failures a recognizer reports.
type VoiceErrorCategory string

const (
	VoiceErrNoSpeech     VoiceErrorCategory = "no-speech"
	VoiceErrAudioCapture VoiceErrorCategory = "audio-capture"
	VoiceErrNotAllowed   VoiceErrorCategory = "not-allowed"
	VoiceErrNetwork      VoiceErrorCategory = "network"
	VoiceErrOther        VoiceErrorCategory = "other"
)

func (c VoiceErrorCategory) String() string { return string(c) }

// ParseVoiceErrorCategory maps recognizer error codes to a category.
// Unknown codes fall into VoiceErrOther.
func ParseVoiceErrorCategory(code string) VoiceErrorCategory {
	switch c := VoiceErrorCategory(code); c {
	case VoiceErrNoSpeech, VoiceErrAudioCapture, VoiceErrNotAllowed, VoiceErrNetwork:
		return c
	}
	return VoiceErrOther
}

// Hint is the message shown to the user after a recognition failure.
// Control always returns to manual typing.
func (c VoiceErrorCategory) Hint() string {
	switch c {
	case VoiceErrNoSpeech:
		return "No speech detected. Please type instead."
	case VoiceErrAudioCapture:
		return "Microphone not available. Please type."
	case VoiceErrNotAllowed:
		return "Microphone access denied. Please allow access in settings."
	case VoiceErrNetwork:
		return "Network error occurred. Please check your connection."
	default:
		return "Sorry, I didn't catch that. Please try typing."
	}
}

// VoiceError is returned by recognizers.
type VoiceError struct {
	Category VoiceErrorCategory
	Err      error
}

func (e *VoiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("voice: %s", e.Category)
	}
	return fmt.Sprintf("voice: %s: %v", e.Category, e.Err)
}

func (e *VoiceError) Unwrap() error { return e.Err }

// NewVoiceError creates a VoiceError for the given category.
func NewVoiceError(category VoiceErrorCategory, err error) *VoiceError {
	return &VoiceError{Category: category, Err: err}
}
