// Package cli is the interactive terminal front end.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/internal/service/dataset"
	"github.com/heartmarshall/tenantlookup/internal/service/lookup"
	"github.com/heartmarshall/tenantlookup/internal/service/voice"
)

type nearbyService interface {
	SearchNearby(ctx context.Context, lat, lng float64) ([]domain.GeoResult, error)
	Radius() int
}

type datasetService interface {
	Current() *dataset.Snapshot
	Refresh(ctx context.Context) (*dataset.Snapshot, error)
}

type voiceService interface {
	Listen(ctx context.Context, lang domain.Language) (voice.Outcome, error)
}

const helpText = `Type a query to search. Commands:
  :mode [general|name|address]  switch search mode (no argument cycles)
  :lang                         toggle voice language
  :near <lat> <lng>             tenants near a location
  :voice                        dictate a query on the next line
  :refresh                      reload the dataset from the source
  :dataset                      show dataset status
  :help                         this text
  :quit                         exit
`

// REPL reads queries and commands and renders results.
type REPL struct {
	session *lookup.Session
	lookup  *lookup.Service
	geo     nearbyService
	dataset datasetService
	voice   voiceService
	in      LineReader
	out     io.Writer
	log     *slog.Logger
}

// New creates a REPL. voice may be nil to disable :voice.
func New(
	log *slog.Logger,
	in LineReader,
	out io.Writer,
	session *lookup.Session,
	lookupSvc *lookup.Service,
	geo nearbyService,
	dataset datasetService,
	voice voiceService,
) *REPL {
	return &REPL{
		session: session,
		lookup:  lookupSvc,
		geo:     geo,
		dataset: dataset,
		voice:   voice,
		in:      in,
		out:     out,
		log:     log.With("handler", "cli"),
	}
}

// Run processes input until :quit, end of input or ctx cancellation.
func (r *REPL) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		state, _ := r.session.State()
		r.in.SetPrompt(prompt(state))

		line, err := r.in.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, ":"):
			if quit := r.command(ctx, line); quit {
				return nil
			}
		default:
			r.query(ctx, line)
		}
	}
}

func prompt(s lookup.State) string {
	return fmt.Sprintf("[%s %s]> ", s.Mode, s.Language)
}

func (r *REPL) command(ctx context.Context, line string) (quit bool) {
	fields := strings.Fields(line)
	name, args := strings.TrimPrefix(fields[0], ":"), fields[1:]

	switch name {
	case "q", "quit", "exit":
		return true
	case "h", "help":
		fmt.Fprint(r.out, helpText)
	case "mode":
		r.setMode(args)
	case "lang":
		st := r.session.ToggleLanguage()
		r.printf("Voice language: %s\n", st.Language)
	case "near":
		r.near(ctx, args)
	case "voice":
		r.listen(ctx)
	case "refresh":
		r.refresh(ctx)
	case "dataset":
		r.status()
	default:
		r.printf("Unknown command %q. Type :help.\n", name)
	}
	return false
}

func (r *REPL) setMode(args []string) {
	if len(args) == 0 {
		st := r.session.CycleMode()
		r.printf("Mode: %s\n", st.Mode)
		return
	}

	mode, err := domain.ParseSearchMode(args[0])
	if err == nil {
		var st lookup.State
		st, err = r.session.SetMode(mode)
		if err == nil {
			r.printf("Mode: %s\n", st.Mode)
			return
		}
	}
	r.printError(err)
}

func (r *REPL) query(ctx context.Context, raw string) {
	res, ok, err := r.session.Query(ctx, r.lookup, raw)
	if !ok {
		return
	}
	if err != nil {
		r.printError(err)
		return
	}
	r.renderResult(res)
}

func (r *REPL) near(ctx context.Context, args []string) {
	if len(args) != 2 {
		r.printf("Usage: :near <lat> <lng>\n")
		return
	}
	lat, errLat := strconv.ParseFloat(args[0], 64)
	lng, errLng := strconv.ParseFloat(args[1], 64)
	if errLat != nil || errLng != nil {
		r.printf("Coordinates must be numbers.\n")
		return
	}

	results, err := r.geo.SearchNearby(ctx, lat, lng)
	if err != nil {
		r.printError(err)
		return
	}
	r.renderNearby(r.lookup.Reconcile(results), r.geo.Radius())
}

func (r *REPL) listen(ctx context.Context) {
	if r.voice == nil {
		r.printf("Voice input is not available.\n")
		return
	}

	state, _ := r.session.State()
	out, err := r.voice.Listen(ctx, state.Language)
	if err != nil {
		r.printError(err)
		return
	}
	if out.Failed() {
		r.printf("%s\n", out.Hint)
		return
	}

	r.printf("Heard: %s\n", out.Query)
	r.query(ctx, out.Query)
}

func (r *REPL) refresh(ctx context.Context) {
	snap, err := r.dataset.Refresh(ctx)
	if err != nil {
		r.printError(err)
		return
	}
	r.printf("Loaded %d records (%s).\n", len(snap.Records), snap.Source)
}

func (r *REPL) status() {
	snap := r.dataset.Current()
	if snap == nil {
		r.printError(domain.ErrNoData)
		return
	}
	version := "unknown"
	if !snap.ServerVersion.IsZero() {
		version = snap.ServerVersion.Format("2006-01-02 15:04:05 MST")
	}
	r.printf("%d records from %s, source version %s, generation %d.\n",
		len(snap.Records), snap.Source, version, snap.Generation)
}

func (r *REPL) printError(err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		for _, fe := range ve.Errors {
			r.printf("Invalid %s: %s.\n", fe.Field, fe.Message)
		}
	case errors.Is(err, domain.ErrNoData):
		r.printf("No tenant data loaded. Try :refresh.\n")
	case errors.Is(err, domain.ErrSourceUnavailable):
		r.printf("Data source unavailable. Please try again.\n")
	case errors.Is(err, domain.ErrSessionActive):
		r.printf("Already listening.\n")
	case errors.Is(err, context.Canceled):
	default:
		r.log.Error("command failed", slog.String("error", err.Error()))
		r.printf("Error: %v\n", err)
	}
}

func (r *REPL) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
