// Package httpapi exposes the REST surface: routing, the response envelope
// and the request middleware chain.
package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"crud-service/internal/app"
	"crud-service/internal/apperr"
	"crud-service/internal/metrics"
	"crud-service/pkg/logger"
)

// handler bundles the HTTP endpoints over the application services.
type handler struct {
	appName string
	app     *app.Application
}

// New returns the fully wired HTTP handler: router plus metrics,
// correlation, logging and panic-recovery middleware.
func New(application *app.Application, appName string, log *logger.Logger) http.Handler {
	if log == nil {
		log = logger.NewDefault("httpapi")
	}
	h := &handler{appName: appName, app: application}

	r := mux.NewRouter()
	r.HandleFunc("/", h.index).Methods(http.MethodGet)
	r.HandleFunc("/api/healthcheck", h.healthcheck).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/api/items", h.listItems).Methods(http.MethodGet)
	r.HandleFunc("/api/items", h.createItem).Methods(http.MethodPost)
	r.HandleFunc("/api/items/{id}", h.getItem).Methods(http.MethodGet)
	r.HandleFunc("/api/items/{id}", h.updateItem).Methods(http.MethodPut)
	r.HandleFunc("/api/items/{id}", h.deleteItem).Methods(http.MethodDelete)

	r.HandleFunc("/api/users", h.listUsers).Methods(http.MethodGet)
	r.HandleFunc("/api/users", h.createUser).Methods(http.MethodPost)
	r.HandleFunc("/api/users/{id}", h.getUser).Methods(http.MethodGet)
	r.HandleFunc("/api/users/{id}", h.updateUser).Methods(http.MethodPut)
	r.HandleFunc("/api/users/{id}", h.deleteUser).Methods(http.MethodDelete)

	var wrapped http.Handler = r
	wrapped = Recover(wrapped, log)
	wrapped = Logging(wrapped, log)
	wrapped = Correlation(wrapped)
	wrapped = metrics.Instrument(wrapped)
	return wrapped
}

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, r, http.StatusOK, fmt.Sprintf("Welcome to %s!", h.appName), nil)
}

func (h *handler) healthcheck(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, r, http.StatusOK, "ok", nil)
}

// Item endpoints --------------------------------------------------------------

func (h *handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.app.Items.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "ok", items)
}

func (h *handler) createItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, r, apperr.InvalidInput("invalid request body"))
		return
	}

	created, err := h.app.Items.Create(r.Context(), payload.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusCreated, fmt.Sprintf("Created item '%s'", created.Name), created)
}

func (h *handler) getItem(w http.ResponseWriter, r *http.Request) {
	it, err := h.app.Items.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "ok", it)
}

func (h *handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, r, apperr.InvalidInput("invalid request body"))
		return
	}

	updated, err := h.app.Items.Update(r.Context(), mux.Vars(r)["id"], payload.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK,
		fmt.Sprintf("Updated item '%s' with id %s", updated.Name, updated.ID), updated)
}

func (h *handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.app.Items.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, fmt.Sprintf("Deleted item with id %s", id), nil)
}

// User endpoints --------------------------------------------------------------

func (h *handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.app.Users.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "Users fetched successfully", users)
}

func (h *handler) createUser(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, r, apperr.InvalidInput("invalid request body"))
		return
	}

	created, err := h.app.Users.Create(r.Context(), payload.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusCreated, "User created successfully", created)
}

func (h *handler) getUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.app.Users.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "User fetched successfully", u)
}

func (h *handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, r, apperr.InvalidInput("invalid request body"))
		return
	}

	updated, err := h.app.Users.Update(r.Context(), mux.Vars(r)["id"], payload.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "User updated successfully", updated)
}

func (h *handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Users.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	writeSuccess(w, r, http.StatusOK, "User deleted successfully", nil)
}

// Helpers ---------------------------------------------------------------------

func decodeJSON(body io.ReadCloser, dst any) error {
	defer body.Close()
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	writeEnvelope(w, status, Envelope{
		CorrelationID: logger.CorrelationIDFromContext(r.Context()),
		Message:       message,
		Error:         "",
		Data:          data,
	})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperr.From(err, "operation failed")
	writeEnvelope(w, appErr.HTTPStatus(), Envelope{
		CorrelationID: logger.CorrelationIDFromContext(r.Context()),
		Message:       appErr.Error(),
		Error:         appErr.Detail(),
		Data:          nil,
	})
}

func writeEnvelope(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
