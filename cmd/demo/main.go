package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"slices"
	"strings"

	weetools "github.com/dracory/weetools"
)

// Note is the demo model: a UUID-keyed row with a JSONB metadata column.
type Note struct {
	weetools.Model
	Title string `json:"title"`
	Meta  string `gorm:"type:jsonb" json:"meta"`
}

func main() {
	cfg, err := weetools.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	if len(cfg.Drivers) > 0 && !slices.Contains(cfg.Drivers, cfg.Driver) {
		log.Fatalf("driver %s is not in DB_DRIVERS (%v)", cfg.Driver, cfg.Drivers)
	}

	db, err := weetools.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Fatalf("open %s: %v", cfg.Driver, err)
	}
	if err := db.AutoMigrate(&Note{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	notes := weetools.NewRepo[Note](db)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /notes", func(w http.ResponseWriter, r *http.Request) {
		filters, mode := filtersFromQuery(r)
		if len(filters) == 0 {
			list, err := notes.List(r.Context(), 50, 0)
			if err != nil {
				weetools.WriteError(w, r, err.Error())
				return
			}
			weetools.WriteSuccessWithData(w, r, "ok", map[string]any{"notes": list})
			return
		}
		list, err := notes.FilterJSONB(r.Context(), "meta", filters, mode)
		if err != nil {
			weetools.WriteError(w, r, err.Error())
			return
		}
		weetools.WriteSuccessWithData(w, r, "ok", map[string]any{"notes": list})
	})
	mux.HandleFunc("POST /notes", func(w http.ResponseWriter, r *http.Request) {
		body, err := weetools.ParseBody(r)
		if err != nil {
			weetools.WriteError(w, r, "failed to parse body: "+err.Error())
			return
		}
		body = weetools.SnakeKeys(body)
		n := Note{}
		if t, ok := body["title"].(string); ok {
			n.Title = t
		}
		if m, ok := body["meta"].(string); ok {
			n.Meta = m
		}
		if n.Title == "" {
			weetools.WriteError(w, r, "title is required")
			return
		}
		if err := notes.Insert(r.Context(), &n); err != nil {
			weetools.WriteError(w, r, err.Error())
			return
		}
		weetools.WriteSuccessWithData(w, r, "created", map[string]any{"note": n})
	})
	mux.HandleFunc("GET /notes/{id}", func(w http.ResponseWriter, r *http.Request) {
		n, err := notes.Get(r.Context(), r.PathValue("id"))
		if errors.Is(err, weetools.ErrNotFound) {
			weetools.Status(w, http.StatusNotFound)
			return
		}
		if err != nil {
			weetools.WriteError(w, r, err.Error())
			return
		}
		weetools.JSON(w, http.StatusOK, n)
	})
	mux.HandleFunc("DELETE /notes/{id}", func(w http.ResponseWriter, r *http.Request) {
		n, err := notes.Get(r.Context(), r.PathValue("id"))
		if errors.Is(err, weetools.ErrNotFound) {
			weetools.Status(w, http.StatusNotFound)
			return
		}
		if err != nil {
			weetools.WriteError(w, r, err.Error())
			return
		}
		if err := notes.Delete(r.Context(), n); err != nil {
			weetools.WriteError(w, r, err.Error())
			return
		}
		weetools.WriteSuccess(w, r, http.StatusOK, "deleted")
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		weetools.Text(w, http.StatusOK, "ok")
	})

	// Mount as a subtree so /notes/{id} routes under the base path.
	base := cfg.BasePath
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	handler := weetools.NewRouter(base, http.StripPrefix(strings.TrimSuffix(base, "/"), mux))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	log.Printf("weetools demo listening on %s (mount %s, driver %s)", addr, cfg.BasePath, cfg.Driver)
	log.Fatal(http.ListenAndServe(addr, handler))
}

// filtersFromQuery turns repeated filter=key:value params into filter terms.
// mode=or switches the clause mode; anything else stays AND.
func filtersFromQuery(r *http.Request) ([]weetools.Filter, weetools.ClauseMode) {
	var filters []weetools.Filter
	for _, f := range r.URL.Query()["filter"] {
		k, v, ok := strings.Cut(f, ":")
		if !ok || k == "" {
			continue
		}
		filters = append(filters, weetools.F(k, v))
	}
	mode := weetools.ClauseAnd
	if strings.EqualFold(r.URL.Query().Get("mode"), "or") {
		mode = weetools.ClauseOr
	}
	return filters, mode
}
