package app

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stagedoor/theatre-reservation-system/internal/jsonutil"
)

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	return jsonutil.WriteJSON(w, status, data, headers)
}

func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return jsonutil.ReadJSON(w, r, dst)
}

// readIDParam extracts a positive integer {id} URL parameter.
func readIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id parameter")
	}

	return id, nil
}

// readCSVInts parses a comma-separated list of integer IDs from a query
// parameter, e.g. ?play=1,2,3.
func readCSVInts(r *http.Request, key string) ([]int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}

	parts := strings.Split(value, ",")
	ids := make([]int, 0, len(parts))

	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%s must be a comma-separated list of integer IDs", key)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// readDate parses a YYYY-MM-DD query parameter. The zero time means absent.
func readDate(r *http.Request, key string) (time.Time, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return time.Time{}, nil
	}

	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in YYYY-MM-DD format", key)
	}

	return date, nil
}

// background runs fn in a goroutine with panic recovery, logging through the
// request-scoped logger so traces survive the async boundary.
func (app *Application) background(r *http.Request, action string, fn func() error) {
	logger := app.contextGetLogger(r)

	go func() {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic occurred during "+action, "panic", err)
			}
		}()

		if err := fn(); err != nil {
			logger.Error("failed "+action, "error", err)
		}
	}()
}

func readIntParam(r *http.Request, key string) (*int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}

	return &n, nil
}
