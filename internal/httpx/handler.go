// Package httpx lets handlers return errors and turns them into JSON error
// responses at the boundary.
package httpx

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-json-experiment/json"
)

// Error is a convenience function for returning an error with an associated HTTP status code.
func Error(code int, err error) error {
	return &StatusError{code, err}
}

// StatusError represents an error with an associated HTTP status code.
type StatusError struct {
	Code int
	Err  error
}

func (se *StatusError) Error() string {
	return se.Err.Error()
}

func (se *StatusError) Unwrap() error {
	return se.Err
}

// Status returns the HTTP status code.
func (se *StatusError) Status() int {
	return se.Code
}

// HandlerFunc is an http.Handler that may fail. A *StatusError is written with
// its own code and message; any other error becomes a 500.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

func (fn HandlerFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := fn(w, r)
	if err == nil {
		return
	}
	if se := new(StatusError); errors.As(err, &se) {
		log.Printf("HTTP: method: %s, path: %s, status: %d, error: %s", r.Method, r.URL.Path, se.Status(), err)
		_ = JSON(w, se.Status(), map[string]any{"detail": se.Error()})
		return
	}
	log.Printf("HTTP: method: %s, path: %s, status: %d, error: %s", r.Method, r.URL.Path, http.StatusInternalServerError, err)
	_ = JSON(w, http.StatusInternalServerError, map[string]any{"detail": http.StatusText(http.StatusInternalServerError)})
}

// JSON writes obj as the response body with the given status.
// A nil slice is written as an empty array and a nil map as an empty object.
func JSON(w http.ResponseWriter, code int, obj any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	return json.MarshalFull(w, obj)
}
