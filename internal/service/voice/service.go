// Package voice turns recognizer transcripts into search queries.
package voice

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/tenantlookup/internal/config"
	"github.com/heartmarshall/tenantlookup/internal/domain"
)

// Recognizer converts one utterance into text. Failures should be
// *domain.VoiceError; anything else is reported as VoiceErrOther.
type Recognizer interface {
	Recognize(ctx context.Context, lang domain.Language) (string, error)
}

type queryLogger interface {
	LogQuery(ctx context.Context, query string) error
}

// Outcome is the result of one recognition session. Exactly one of Query
// and Hint is set.
type Outcome struct {
	Transcript string
	Query      string
	Category   domain.VoiceErrorCategory
	Hint       string
}

// Failed reports whether recognition produced no usable query.
func (o Outcome) Failed() bool { return o.Hint != "" }

// Service runs recognition sessions one at a time.
type Service struct {
	recognizer Recognizer
	queries    queryLogger
	logQueries bool
	logTimeout time.Duration
	log        *slog.Logger

	mu      sync.Mutex
	active  bool
	pending sync.WaitGroup
}

// NewService creates a new Voice service. queries may be nil.
func NewService(log *slog.Logger, recognizer Recognizer, queries queryLogger, cfg config.VoiceConfig) *Service {
	timeout := cfg.LogTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{
		recognizer: recognizer,
		queries:    queries,
		logQueries: cfg.LogQueries && queries != nil,
		logTimeout: timeout,
		log:        log.With("service", "voice"),
	}
}

// Listen runs one recognition session in lang. It returns
// domain.ErrSessionActive without touching the recognizer while another
// session is running. Recognizer failures are not errors: they come back as
// an Outcome carrying a hint. Only context cancellation is returned as an
// error.
func (s *Service) Listen(ctx context.Context, lang domain.Language) (Outcome, error) {
	if !s.begin() {
		return Outcome{}, domain.ErrSessionActive
	}
	defer s.end()

	if !lang.IsValid() {
		lang = domain.LanguageEnglish
	}

	transcript, err := s.recognizer.Recognize(ctx, lang)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Outcome{}, ctxErr
		}
		category := domain.VoiceErrOther
		var verr *domain.VoiceError
		if errors.As(err, &verr) {
			category = verr.Category
		}
		s.log.InfoContext(ctx, "recognition failed",
			slog.String("category", category.String()),
			slog.String("error", err.Error()),
		)
		return Outcome{Category: category, Hint: category.Hint()}, nil
	}

	query := Process(transcript, lang)
	if query == "" {
		return Outcome{
			Transcript: transcript,
			Category:   domain.VoiceErrNoSpeech,
			Hint:       domain.VoiceErrNoSpeech.Hint(),
		}, nil
	}

	s.logQuery(ctx, query)
	return Outcome{Transcript: transcript, Query: query}, nil
}

// Active reports whether a session is running.
func (s *Service) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Wait blocks until detached query-log calls have finished.
func (s *Service) Wait() {
	s.pending.Wait()
}

// Process applies the transcript pipeline: trim, transliterate Ukrainian
// speech, strip punctuation, truncate.
func Process(transcript string, lang domain.Language) string {
	text := strings.TrimSpace(transcript)
	if lang == domain.LanguageUkrainian {
		text = domain.Transliterate(text)
	}
	return domain.Sanitize(domain.CleanTranscript(text))
}

func (s *Service) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return false
	}
	s.active = true
	return true
}

func (s *Service) end() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

// logQuery reports the query to the data source without blocking the caller.
func (s *Service) logQuery(ctx context.Context, query string) {
	if !s.logQueries {
		return
	}
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.logTimeout)
		defer cancel()
		if err := s.queries.LogQuery(logCtx, query); err != nil {
			s.log.DebugContext(logCtx, "query log failed", slog.String("error", err.Error()))
		}
	}()
}
