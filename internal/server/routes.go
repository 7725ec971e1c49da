package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/docnav/internal/sidebar"
	"github.com/ziadkadry99/docnav/internal/site"
)

// sessionResponse is returned when a session is opened.
type sessionResponse struct {
	ID     string         `json:"id"`
	Locale sidebar.Locale `json:"locale"`
}

// currentResponse is the sidebar of a single page.
type currentResponse struct {
	Pathname string          `json:"pathname"`
	Groups   []sidebar.Group `json:"groups"`
}

// localesResponse lists the configured locales.
type localesResponse struct {
	Default string           `json:"default"`
	Locales []sidebar.Locale `json:"locales"`
}

// RegisterRoutes mounts the sidebar API on the given router.
func RegisterRoutes(r chi.Router, data *site.Data, sessions *SessionStore) {
	r.Get("/api/locales", handleLocales(data))

	r.Route("/api/sidebar", func(r chi.Router) {
		r.Get("/", handleOneShotFull(data))
		r.Get("/current", handleOneShotCurrent(data))
	})

	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", handleOpenSession(sessions))
		r.Route("/{id}", func(r chi.Router) {
			r.Delete("/", handleCloseSession(sessions))
			r.Get("/sidebar", handleSessionFull(sessions))
			r.Get("/sidebar/current", handleSessionCurrent(sessions))
		})
	})
}

func handleLocales(data *site.Data) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, localesResponse{Default: data.DefaultLocale, Locales: data.Locales})
	}
}

// handleOneShotFull builds the sidebar in a session that lives for one
// request.
func handleOneShotFull(data *site.Data) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := data.NewSession(r.URL.Query().Get("locale"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, sess.FullSidebar())
	}
}

func handleOneShotCurrent(data *site.Data) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		sess, err := data.NewSession(q.Get("locale"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeCurrent(w, sess, q.Get("pathname"))
	}
}

func handleOpenSession(sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, sess, err := sessions.Open(r.URL.Query().Get("locale"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusCreated, sessionResponse{ID: id, Locale: sess.Locale()})
	}
}

func handleCloseSession(sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !sessions.Close(chi.URLParam(r, "id")) {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleSessionFull(sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeJSON(w, http.StatusOK, sess.FullSidebar())
	}
}

func handleSessionCurrent(sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessions.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		writeCurrent(w, sess, r.URL.Query().Get("pathname"))
	}
}

func writeCurrent(w http.ResponseWriter, sess *sidebar.Session, pathname string) {
	if pathname == "" {
		pathname = "/"
	}
	writeJSON(w, http.StatusOK, currentResponse{Pathname: pathname, Groups: sess.CurrentSidebar(pathname)})
}

// writeJSON encodes v before committing the status, so a value that cannot be
// encoded turns into a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(map[string]string{"error": "encoding response: " + err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
