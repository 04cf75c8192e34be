package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/guard"
	"github.com/graphql-go/graphql"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (noopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (noopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (noopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (l noopLogger) With(args ...any) logging.Logger                  { return l }

// echoSchema exposes the staged bearer token so tests can observe what the
// middleware put into the request context.
func echoSchema(t *testing.T) graphql.Schema {
	t.Helper()

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"bearer": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					token, ok := guard.BearerFromContext(p.Context)
					if !ok {
						return nil, nil
					}
					return token, nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: query})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return schema
}

func queryBearer(t *testing.T, router http.Handler, authorization string) interface{} {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"query":"{ bearer }"}`))
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return body.Data["bearer"]
}

func TestHTTPServer_Healthz(t *testing.T) {
	t.Parallel()

	s := NewHTTPServer(":0", noopLogger{}, echoSchema(t))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestHTTPServer_StageBearer(t *testing.T) {
	t.Parallel()

	s := NewHTTPServer(":0", noopLogger{}, echoSchema(t))
	router := s.Router()

	tests := []struct {
		name          string
		authorization string
		want          interface{}
	}{
		{"valid bearer", "Bearer token123", "token123"},
		{"no header", "", nil},
		{"wrong schema", "Basic dXNlcg==", nil},
		{"schema only", "Bearer", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := queryBearer(t, router, tt.authorization); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestHTTPServer_RequestID(t *testing.T) {
	t.Parallel()

	s := NewHTTPServer(":0", noopLogger{}, echoSchema(t))
	router := s.Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get(requestIDHeader) == "" {
		t.Errorf("expected a generated request id")
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-42")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get(requestIDHeader); got != "req-42" {
		t.Errorf("expected caller request id to be kept, got %q", got)
	}
}
