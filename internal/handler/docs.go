package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ece-devops/userapi/internal/apidocs"
)

// swaggerUIPage renders Swagger UI against the served OpenAPI document.
const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>%[1]s</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({ url: %[2]q, dom_id: "#swagger-ui" });
  </script>
</body>
</html>
`

// DocsHandler serves the API documentation.
type DocsHandler struct {
	spec []byte
	yaml []byte
	page []byte
}

// NewDocsHandler creates a DocsHandler for doc. specURL is where UI fetches
// the JSON document from.
func NewDocsHandler(doc *openapi3.T, specURL string) (*DocsHandler, error) {
	spec, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OpenAPI document: %w", err)
	}

	title := "API documentation"
	if doc.Info != nil && doc.Info.Title != "" {
		title = doc.Info.Title
	}

	return &DocsHandler{
		spec: spec,
		yaml: apidocs.YAML(),
		page: []byte(fmt.Sprintf(swaggerUIPage, title, specURL)),
	}, nil
}

// UI serves the interactive documentation page.
// GET /api-docs
func (h *DocsHandler) UI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.page)
}

// Spec serves the OpenAPI document as JSON.
// GET /api-docs/openapi.json
func (h *DocsHandler) Spec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.spec)
}

// SpecYAML serves the embedded OpenAPI document as written.
// GET /api-docs/openapi.yaml
func (h *DocsHandler) SpecYAML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.yaml)
}
