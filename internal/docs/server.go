package docs

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/typograph-lang/typograph/foundations"
)

// elementSummary is the JSON shape served for one kind.
type elementSummary struct {
	Name     string                  `json:"name"`
	Title    string                  `json:"title"`
	Docs     string                  `json:"docs"`
	Keywords []string                `json:"keywords,omitempty"`
	Params   []foundations.ParamInfo `json:"params,omitempty"`
	Scope    map[string]any          `json:"scope,omitempty"`
}

// NewRouter builds the read-only documentation router.
//
//	GET /               service description
//	GET /elements       all kinds, sorted by name
//	GET /elements/{name} one kind in full
func NewRouter(projectName string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"project":  projectName,
			"elements": len(foundations.All()),
		})
	})

	r.Get("/elements", func(w http.ResponseWriter, req *http.Request) {
		out := make([]elementSummary, 0)
		for _, elem := range foundations.All() {
			out = append(out, summarize(elem, false))
		}
		writeJSON(w, http.StatusOK, out)
	})

	r.Get("/elements/{name}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		elem, ok := foundations.ByName(name)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error": fmt.Sprintf("unknown element: %s", name),
			})
			return
		}
		writeJSON(w, http.StatusOK, summarize(elem, true))
	})

	return r
}

func summarize(elem foundations.Element, full bool) elementSummary {
	out := elementSummary{
		Name:     elem.Name(),
		Title:    elem.Title(),
		Docs:     elem.Docs(),
		Keywords: elem.Keywords(),
	}
	if full {
		out.Params = elem.Params()
		if scope := elem.Scope(); scope.Len() > 0 {
			out.Scope = make(map[string]any, scope.Len())
			for _, name := range scope.Names() {
				value, _ := scope.Get(name)
				out.Scope[name] = value
			}
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
