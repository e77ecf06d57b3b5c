package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/heartmarshall/tenantlookup/internal/domain"
)

// LineRecognizer stands in for a speech engine: the next input line is the
// transcript. A line of the form "!category" (for example "!network")
// simulates a recognition failure.
type LineRecognizer struct {
	in LineReader
}

// NewLineRecognizer creates a recognizer reading from in.
func NewLineRecognizer(in LineReader) *LineRecognizer {
	return &LineRecognizer{in: in}
}

func (r *LineRecognizer) Recognize(ctx context.Context, lang domain.Language) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.in.SetPrompt("(" + lang.String() + ") speak> ")
	line, err := r.in.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", domain.NewVoiceError(domain.VoiceErrNoSpeech, nil)
		}
		return "", domain.NewVoiceError(domain.VoiceErrAudioCapture, err)
	}

	if code, ok := strings.CutPrefix(strings.TrimSpace(line), "!"); ok {
		return "", domain.NewVoiceError(domain.ParseVoiceErrorCategory(code), nil)
	}
	return line, nil
}
