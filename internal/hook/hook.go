// Package hook implements the process-boundary surface: reading a query
// from the environment or stdin for the CLI entrypoint, and serving the
// same routing pipeline over HTTP for long-running deployments.
package hook

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/klauern/skillrouter/internal/assemble"
	"github.com/klauern/skillrouter/internal/content"
	"github.com/klauern/skillrouter/internal/model"
	"github.com/klauern/skillrouter/internal/router"
)

// ReadQuery reads the query from the PROMPT environment variable if set
// and non-empty, else from r (typically os.Stdin). An empty result is not
// an error — the caller emits nothing and exits 0.
func ReadQuery(r io.Reader) (string, error) {
	if v := os.Getenv("PROMPT"); strings.TrimSpace(v) != "" {
		return v, nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var b strings.Builder
	for scanner.Scan() {
		b.WriteString(scanner.Text())
		b.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// routeResponse is the wire shape from spec.md §6.
type routeResponse struct {
	RouteType      string   `json:"route_type"`
	Matched        string   `json:"matched"`
	Skills         []string `json:"skills"`
	ExecutionOrder []string `json:"execution_order"`
	Tier           int      `json:"tier"`
	Confidence     float64  `json:"confidence"`
	Context        string   `json:"context"`
}

func toWire(result model.RouteResult, ctx string) routeResponse {
	return routeResponse{
		RouteType:      string(result.Type),
		Matched:        result.Matched,
		Skills:         result.Skills,
		ExecutionOrder: result.ExecutionOrder,
		Tier:           result.Tier,
		Confidence:     result.Confidence,
		Context:        ctx,
	}
}

// requestBody is the expected POST payload: {"query": "..."}.
type requestBody struct {
	Query string `json:"query"`
}

// Handler serves a single-route JSON endpoint: POST a query, get back the
// route-result wire shape plus the assembled context block. No framework —
// one route does not justify one.
func Handler(r *router.Router, loader *content.Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var body requestBody
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		result := r.Route(req.Context(), body.Query)
		block := assemble.Assemble(result, r.Catalog(), loader)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(toWire(result, block))
	}
}

// RunCLI reads a query (PROMPT env or stdin), routes it, assembles the
// context block, and writes it to out. An empty query or an Error route
// writes nothing. The returned error is non-nil only for a hard failure
// reading the query itself — routing failures degrade to Error, not an
// error return, per spec.md §7.
func RunCLI(ctx context.Context, r *router.Router, loader *content.Loader, stdin io.Reader, out io.Writer) error {
	query, err := ReadQuery(stdin)
	if err != nil {
		return err
	}
	if strings.TrimSpace(query) == "" {
		return nil
	}

	result := r.Route(ctx, query)
	block := assemble.Assemble(result, r.Catalog(), loader)
	if block == "" {
		return nil
	}

	_, err = io.WriteString(out, block)
	return err
}
