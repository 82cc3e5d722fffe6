package server

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"

	"github.com/ece-devops/userapi/internal/apidocs"
)

func newSpecRouter(t *testing.T) routers.Router {
	t.Helper()

	doc, err := apidocs.Load(context.Background())
	if err != nil {
		t.Fatalf("failed to load OpenAPI document: %v", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		t.Fatalf("failed to create router from spec: %v", err)
	}
	return router
}

// TestContract_Responses drives the router and validates every response
// against the OpenAPI document.
func TestContract_Responses(t *testing.T) {
	specRouter := newSpecRouter(t)
	app := newTestRouter(t)

	steps := []struct {
		name         string
		method       string
		path         string
		body         string
		wantStatus   int
		wantBody     string
		validateBody bool
	}{
		{"greeting", http.MethodGet, "/", "", http.StatusOK, "Hello World!", false},
		{"liveness", http.MethodGet, "/healthz", "", http.StatusOK, `"status":"ok"`, false},
		{"readiness", http.MethodGet, "/readyz", "", http.StatusOK, `"redis":"not configured"`, false},
		{"create user", http.MethodPost, "/user", `{"username":"sergkudinov","firstname":"Sergei","lastname":"Kudinov"}`,
			http.StatusCreated, `{"status":"success","msg":"OK"}`, true},
		{"get user", http.MethodGet, "/user/sergkudinov", "",
			http.StatusOK, `{"status":"success","user":{"username":"sergkudinov","firstname":"Sergei","lastname":"Kudinov"}}`, true},
		{"create user with reserved characters", http.MethodPost, "/user", `{"username":"john@doe","firstname":"John","lastname":"Doe"}`,
			http.StatusCreated, `{"status":"success","msg":"OK"}`, true},
		{"get user by escaped username", http.MethodGet, "/user/john%40doe", "",
			http.StatusOK, `{"username":"john@doe","firstname":"John","lastname":"Doe"}`, false},
		{"create without username", http.MethodPost, "/user", `{}`,
			http.StatusBadRequest, `{"status":"error","msg":"Wrong user parameters"}`, false},
		{"get unknown user", http.MethodGet, "/user/nobody", "",
			http.StatusNotFound, `{"status":"error","msg":"User not found"}`, true},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			var body io.Reader
			if step.body != "" {
				body = strings.NewReader(step.body)
			}
			req := httptest.NewRequest(step.method, step.path, body)
			if step.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}

			route, pathParams, err := specRouter.FindRoute(req)
			if err != nil {
				t.Fatalf("could not find route in spec: %v", err)
			}

			reqInput := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if step.validateBody {
				if err := openapi3filter.ValidateRequest(context.Background(), reqInput); err != nil {
					t.Fatalf("request validation failed: %v", err)
				}
			}

			rec := httptest.NewRecorder()
			app.ServeHTTP(rec, req)

			if rec.Code != step.wantStatus {
				t.Fatalf("expected status %d, got %d (%s)", step.wantStatus, rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), step.wantBody) {
				t.Errorf("expected body to contain %s, got %s", step.wantBody, rec.Body.String())
			}

			respInput := &openapi3filter.ResponseValidationInput{
				RequestValidationInput: reqInput,
				Status:                 rec.Code,
				Header:                 rec.Header(),
				Body:                   io.NopCloser(bytes.NewReader(rec.Body.Bytes())),
			}
			if err := openapi3filter.ValidateResponse(context.Background(), respInput); err != nil {
				t.Errorf("response validation failed: %v", err)
			}
		})
	}
}
