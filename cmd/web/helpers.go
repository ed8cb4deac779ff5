package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
)

func (app *application) serverError(w http.ResponseWriter, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	app.errorLog.Output(2, trace)
	app.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": http.StatusText(http.StatusInternalServerError),
	})
}

func (app *application) clientError(w http.ResponseWriter, status int, message string) {
	if message == "" {
		message = http.StatusText(status)
	}
	app.writeJSON(w, status, map[string]string{"error": message})
}

func (app *application) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.errorLog.Println("write response:", err)
	}
}

func (app *application) readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		app.clientError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// visitorID returns the session's state-container token, minting one on
// the first request of a session.
func (app *application) visitorID(r *http.Request) string {
	vid := app.session.GetString(r.Context(), "visitorID")
	if vid == "" {
		vid = uuid.NewString()
		app.session.Put(r.Context(), "visitorID", vid)
	}
	return vid
}
