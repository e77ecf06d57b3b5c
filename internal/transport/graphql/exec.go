package graphql

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"sync"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/tenantlookup/internal/domain"
	"github.com/heartmarshall/tenantlookup/internal/transport/graphql/model"
	"github.com/heartmarshall/tenantlookup/internal/transport/graphql/resolver"
)

//go:embed schema.graphqls
var schemaSDL string

var parsedSchema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: schemaSDL, BuiltIn: false})

func introspectionError() error {
	return &gqlerror.Error{
		Message:    "introspection is not supported, see schema.graphqls",
		Extensions: map[string]interface{}{"code": "INTROSPECTION_DISABLED"},
	}
}

// executableSchema resolves operations against schema.graphqls field by
// field. Complexity comes from the embedded nil interface and is never
// called: the server installs no complexity limit.
type executableSchema struct {
	graphql.ExecutableSchema
	resolver *resolver.Resolver
}

// NewExecutableSchema creates the executable schema served by the handler.
func NewExecutableSchema(r *resolver.Resolver) graphql.ExecutableSchema {
	return &executableSchema{resolver: r}
}

func (e *executableSchema) Schema() *ast.Schema {
	return parsedSchema
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)

	var root func(context.Context, ast.SelectionSet) graphql.Marshaler
	switch opCtx.Operation.Operation {
	case ast.Query:
		root = e._Query
	case ast.Mutation:
		root = e._Mutation
	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}

	first := true
	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false

		var buf bytes.Buffer
		root(ctx, opCtx.Operation.SelectionSet).MarshalGQL(&buf)
		return &graphql.Response{Data: buf.Bytes()}
	}
}

// ---------------------------------------------------------------------------
// Root types
// ---------------------------------------------------------------------------

var queryImplementors = []string{"Query"}

func (e *executableSchema) _Query(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	opCtx := graphql.GetOperationContext(ctx)
	fields := graphql.CollectFields(opCtx, sel, queryImplementors)
	out := newObject(len(fields))

	for _, field := range fields {
		args := field.ArgumentMap(opCtx.Variables)
		ctx := graphql.WithFieldContext(ctx, &graphql.FieldContext{
			Object:     "Query",
			Field:      field,
			Args:       args,
			IsMethod:   true,
			IsResolver: true,
		})

		switch field.Name {
		case "__typename":
			out.add(field.Alias, graphql.MarshalString("Query"))
		case "__schema", "__type":
			out.add(field.Alias, fail(ctx, introspectionError()))
		case "search":
			out.add(field.Alias, resolve(ctx, func(ctx context.Context) (graphql.Marshaler, error) {
				res, err := e.resolver.Search(ctx, stringArg(args, "query"), modeArg(args, "mode"))
				if err != nil {
					return nil, err
				}
				return e._SearchResult(ctx, field.Selections, res), nil
			}))
		case "suggest":
			out.add(field.Alias, resolve(ctx, func(ctx context.Context) (graphql.Marshaler, error) {
				limit, err := intArg(args, "limit")
				if err != nil {
					return nil, err
				}
				res, err := e.resolver.Suggest(ctx, stringArg(args, "query"), modeArg(args, "mode"), limit)
				if err != nil {
					return nil, err
				}
				return marshalStrings(res), nil
			}))
		case "nearby":
			out.add(field.Alias, resolve(ctx, func(ctx context.Context) (graphql.Marshaler, error) {
				lat, latErr := floatArg(args, "latitude")
				lng, lngErr := floatArg(args, "longitude")
				if err := errors.Join(latErr, lngErr); err != nil {
					return nil, err
				}
				res, err := e.resolver.Nearby(ctx, lat, lng)
				if err != nil {
					return nil, err
				}
				return e._NearbyResult(ctx, field.Selections, res), nil
			}))
		case "dataset":
			out.add(field.Alias, resolve(ctx, func(ctx context.Context) (graphql.Marshaler, error) {
				res, err := e.resolver.Dataset(ctx)
				if err != nil {
					return nil, err
				}
				return e._Dataset(ctx, field.Selections, res), nil
			}))
		default:
			out.add(field.Alias, fail(ctx, fmt.Errorf("unknown field Query.%s", field.Name)))
		}
	}
	return out
}

var mutationImplementors = []string{"Mutation"}

func (e *executableSchema) _Mutation(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	fields := graphql.CollectFields(graphql.GetOperationContext(ctx), sel, mutationImplementors)
	out := newObject(len(fields))

	for _, field := range fields {
		ctx := graphql.WithFieldContext(ctx, &graphql.FieldContext{
			Object:     "Mutation",
			Field:      field,
			IsMethod:   true,
			IsResolver: true,
		})

		switch field.Name {
		case "__typename":
			out.add(field.Alias, graphql.MarshalString("Mutation"))
		case "refresh":
			out.add(field.Alias, resolve(ctx, func(ctx context.Context) (graphql.Marshaler, error) {
				res, err := e.resolver.Refresh(ctx)
				if err != nil {
					return nil, err
				}
				return e._Dataset(ctx, field.Selections, res), nil
			}))
		default:
			out.add(field.Alias, fail(ctx, fmt.Errorf("unknown field Mutation.%s", field.Name)))
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Object types
// ---------------------------------------------------------------------------

var searchResultImplementors = []string{"SearchResult"}

func (e *executableSchema) _SearchResult(ctx context.Context, sel ast.SelectionSet, obj *model.SearchResult) graphql.Marshaler {
	fields := graphql.CollectFields(graphql.GetOperationContext(ctx), sel, searchResultImplementors)
	out := newObject(len(fields))

	for _, field := range fields {
		switch field.Name {
		case "__typename":
			out.add(field.Alias, graphql.MarshalString("SearchResult"))
		case "query":
			out.add(field.Alias, graphql.MarshalString(obj.Query))
		case "mode":
			out.add(field.Alias, graphql.MarshalString(string(obj.Mode)))
		case "count":
			out.add(field.Alias, graphql.MarshalInt(len(obj.Tenants)))
		case "tenants":
			ctx := graphql.WithFieldContext(ctx, &graphql.FieldContext{Object: "SearchResult", Field: field})
			out.add(field.Alias, e.marshalTenants(ctx, field.Selections, obj.Tenants))
		case "suggestions":
			out.add(field.Alias, marshalStrings(obj.Suggestions))
		case "dataset":
			out.add(field.Alias, graphql.MarshalInt(obj.Dataset))
		default:
			out.add(field.Alias, graphql.Null)
		}
	}
	return out
}

var tenantImplementors = []string{"Tenant"}

func (e *executableSchema) _Tenant(ctx context.Context, sel ast.SelectionSet, obj *model.Tenant) graphql.Marshaler {
	fields := graphql.CollectFields(graphql.GetOperationContext(ctx), sel, tenantImplementors)
	out := newObject(len(fields))

	for _, field := range fields {
		switch field.Name {
		case "__typename":
			out.add(field.Alias, graphql.MarshalString("Tenant"))
		case "position":
			out.add(field.Alias, graphql.MarshalInt(obj.Position))
		case "initials":
			out.add(field.Alias, graphql.MarshalString(obj.Initials))
		case "name":
			out.add(field.Alias, graphql.MarshalString(obj.Name))
		case "location":
			out.add(field.Alias, graphql.MarshalString(obj.Location))
		case "address":
			out.add(field.Alias, graphql.MarshalString(obj.Address))
		case "eircode":
			out.add(field.Alias, graphql.MarshalString(obj.Eircode))
		case "phone":
			out.add(field.Alias, graphql.MarshalString(obj.Phone))
		case "ppsn":
			out.add(field.Alias, graphql.MarshalString(obj.PPSN))
		case "utilityAccount":
			out.add(field.Alias, graphql.MarshalString(obj.UtilityAccount))
		case "accountHolder":
			out.add(field.Alias, graphql.MarshalString(obj.AccountHolder))
		case "synonyms":
			out.add(field.Alias, marshalStrings(obj.Synonyms))
		case "latitude":
			out.add(field.Alias, marshalOptionalFloat(obj.Latitude))
		case "longitude":
			out.add(field.Alias, marshalOptionalFloat(obj.Longitude))
		default:
			out.add(field.Alias, graphql.Null)
		}
	}
	return out
}

var nearbyResultImplementors = []string{"NearbyResult"}

func (e *executableSchema) _NearbyResult(ctx context.Context, sel ast.SelectionSet, obj *model.NearbyResult) graphql.Marshaler {
	fields := graphql.CollectFields(graphql.GetOperationContext(ctx), sel, nearbyResultImplementors)
	out := newObject(len(fields))

	for _, field := range fields {
		switch field.Name {
		case "__typename":
			out.add(field.Alias, graphql.MarshalString("NearbyResult"))
		case "latitude":
			out.add(field.Alias, graphql.MarshalFloat(obj.Latitude))
		case "longitude":
			out.add(field.Alias, graphql.MarshalFloat(obj.Longitude))
		case "radiusMeters":
			out.add(field.Alias, graphql.MarshalInt(obj.RadiusMeters))
		case "results":
			ctx := graphql.WithFieldContext(ctx, &graphql.FieldContext{Object: "NearbyResult", Field: field})
			out.add(field.Alias, e.marshalNearbyMatches(ctx, field.Selections, obj.Results))
		default:
			out.add(field.Alias, graphql.Null)
		}
	}
	return out
}

var nearbyMatchImplementors = []string{"NearbyMatch"}

func (e *executableSchema) _NearbyMatch(ctx context.Context, sel ast.SelectionSet, obj *model.NearbyMatch) graphql.Marshaler {
	fields := graphql.CollectFields(graphql.GetOperationContext(ctx), sel, nearbyMatchImplementors)
	out := newObject(len(fields))

	for _, field := range fields {
		switch field.Name {
		case "__typename":
			out.add(field.Alias, graphql.MarshalString("NearbyMatch"))
		case "eircode":
			out.add(field.Alias, graphql.MarshalString(obj.Eircode))
		case "address":
			out.add(field.Alias, graphql.MarshalString(obj.Address))
		case "latitude":
			out.add(field.Alias, graphql.MarshalFloat(obj.Latitude))
		case "longitude":
			out.add(field.Alias, graphql.MarshalFloat(obj.Longitude))
		case "distanceKm":
			out.add(field.Alias, graphql.MarshalFloat(obj.DistanceKm))
		case "tenants":
			ctx := graphql.WithFieldContext(ctx, &graphql.FieldContext{
				Object:     "NearbyMatch",
				Field:      field,
				IsMethod:   true,
				IsResolver: true,
			})
			out.add(field.Alias, resolve(ctx, func(ctx context.Context) (graphql.Marshaler, error) {
				res, err := e.resolver.NearbyTenants(ctx, obj)
				if err != nil {
					return nil, err
				}
				return e.marshalTenants(ctx, field.Selections, res), nil
			}))
		default:
			out.add(field.Alias, graphql.Null)
		}
	}
	return out
}

var datasetImplementors = []string{"Dataset"}

func (e *executableSchema) _Dataset(ctx context.Context, sel ast.SelectionSet, obj *model.Dataset) graphql.Marshaler {
	fields := graphql.CollectFields(graphql.GetOperationContext(ctx), sel, datasetImplementors)
	out := newObject(len(fields))

	for _, field := range fields {
		switch field.Name {
		case "__typename":
			out.add(field.Alias, graphql.MarshalString("Dataset"))
		case "generation":
			out.add(field.Alias, graphql.MarshalInt(obj.Generation))
		case "source":
			out.add(field.Alias, graphql.MarshalString(obj.Source))
		case "records":
			out.add(field.Alias, graphql.MarshalInt(obj.Records))
		case "serverVersion":
			if obj.ServerVersion == nil {
				out.add(field.Alias, graphql.Null)
			} else {
				out.add(field.Alias, model.MarshalDateTime(*obj.ServerVersion))
			}
		case "loadedAt":
			out.add(field.Alias, model.MarshalDateTime(obj.LoadedAt))
		default:
			out.add(field.Alias, graphql.Null)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Lists
// ---------------------------------------------------------------------------

func (e *executableSchema) marshalTenants(ctx context.Context, sel ast.SelectionSet, v []*model.Tenant) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	for i := range v {
		ctx := graphql.WithFieldContext(ctx, &graphql.FieldContext{Index: &i, Result: v[i]})
		ret[i] = e._Tenant(ctx, sel, v[i])
	}
	return ret
}

// marshalNearbyMatches resolves elements concurrently so their tenant loads
// land in one dataloader batch.
func (e *executableSchema) marshalNearbyMatches(ctx context.Context, sel ast.SelectionSet, v []*model.NearbyMatch) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	var wg sync.WaitGroup
	for i := range v {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx := graphql.WithFieldContext(ctx, &graphql.FieldContext{Index: &i, Result: v[i]})
			ret[i] = e._NearbyMatch(ctx, sel, v[i])
		}(i)
	}
	wg.Wait()
	return ret
}

func marshalStrings(v []string) graphql.Marshaler {
	ret := make(graphql.Array, len(v))
	for i, s := range v {
		ret[i] = graphql.MarshalString(s)
	}
	return ret
}

func marshalOptionalFloat(v *float64) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return graphql.MarshalFloat(*v)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// object writes fields in selection order.
type object struct {
	keys   []string
	values []graphql.Marshaler
}

func newObject(n int) *object {
	return &object{keys: make([]string, 0, n), values: make([]graphql.Marshaler, 0, n)}
}

func (o *object) add(key string, v graphql.Marshaler) {
	o.keys = append(o.keys, key)
	o.values = append(o.values, v)
}

func (o *object) MarshalGQL(w io.Writer) {
	io.WriteString(w, "{") //nolint:errcheck
	for i, key := range o.keys {
		if i > 0 {
			io.WriteString(w, ",") //nolint:errcheck
		}
		io.WriteString(w, strconv.Quote(key)+":") //nolint:errcheck
		o.values[i].MarshalGQL(w)
	}
	io.WriteString(w, "}") //nolint:errcheck
}

// resolve runs a field resolver. Errors and panics are reported on the
// field's path and the field becomes null.
func resolve(ctx context.Context, fn func(context.Context) (graphql.Marshaler, error)) (ret graphql.Marshaler) {
	defer func() {
		if r := recover(); r != nil {
			ret = fail(ctx, fmt.Errorf("resolver panic: %v", r))
		}
	}()

	m, err := fn(ctx)
	if err != nil {
		return fail(ctx, err)
	}
	return m
}

func fail(ctx context.Context, err error) graphql.Marshaler {
	graphql.AddError(ctx, err)
	return graphql.Null
}

func stringArg(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

func modeArg(args map[string]any, name string) model.SearchMode {
	s, _ := args[name].(string)
	return model.SearchMode(s)
}

func floatArg(args map[string]any, name string) (float64, error) {
	switch v := args[name].(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f, nil
		}
	}
	return 0, domain.NewValidationError(name, "must be a number")
}

func intArg(args map[string]any, name string) (*int, error) {
	var n int
	switch v := args[name].(type) {
	case nil:
		return nil, nil
	case int:
		n = v
	case int64:
		n = int(v)
	case float64:
		if v != math.Trunc(v) {
			return nil, domain.NewValidationError(name, "must be an integer")
		}
		n = int(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return nil, domain.NewValidationError(name, "must be an integer")
		}
		n = int(i)
	default:
		return nil, domain.NewValidationError(name, "must be an integer")
	}
	return &n, nil
}
