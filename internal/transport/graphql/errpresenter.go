package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/pkg/ctxutil"
)

// NewErrorPresenter returns a gqlgen error presenter that maps domain errors
// to GraphQL error codes.
func NewErrorPresenter(log *slog.Logger) graphql.ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)

		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			gqlErr.Message = ve.Error()
			gqlErr.Extensions = map[string]interface{}{"code": "VALIDATION", "fields": ve.Errors}

		case errors.Is(err, domain.ErrValidation):
			gqlErr.Extensions = map[string]interface{}{"code": "VALIDATION"}

		case errors.Is(err, domain.ErrNoData):
			gqlErr.Message = "tenant data is not available yet"
			gqlErr.Extensions = map[string]interface{}{"code": "NO_DATA"}

		case errors.Is(err, domain.ErrSourceUnavailable):
			log.WarnContext(ctx, "data source unavailable",
				slog.String("error", err.Error()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			gqlErr.Message = "data source unavailable"
			gqlErr.Extensions = map[string]interface{}{"code": "SOURCE_UNAVAILABLE"}

		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			gqlErr.Message = "request cancelled"
			gqlErr.Extensions = map[string]interface{}{"code": "CANCELLED"}

		case gqlErr.Extensions["code"] != nil:
			// Parse and validation errors are already classified by gqlgen.

		default:
			requestID := ctxutil.RequestIDFromCtx(ctx)
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", err.Error()),
				slog.String("request_id", requestID),
			)
			gqlErr.Message = "internal error"
			gqlErr.Extensions = map[string]interface{}{"code": "INTERNAL"}
		}

		return gqlErr
	}
}
