package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"carrental-backend/internal/logger"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
)

// errorBody is the error envelope the client renders verbatim.
type errorBody struct {
	Detail any `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, errorBody{Detail: detail})
}

// writeError translates service failures into the API error taxonomy.
// Internal errors are logged with the request id and never leaked to the
// client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *service.NotFoundError
	var validation *service.ValidationError
	var conflict *service.ConflictError

	switch {
	case errors.As(err, &notFound):
		writeDetail(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &validation):
		writeDetail(w, http.StatusBadRequest, validation.Error())
	case errors.As(err, &conflict):
		writeDetail(w, http.StatusConflict, conflict.Error())
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrNotEnoughPermissions):
		writeDetail(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("Internal error",
			"request_id", requestIDFromContext(r.Context()),
			"error", err,
		)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &service.ValidationError{Message: "invalid request body: " + err.Error()}
	}
	return nil
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, &service.ValidationError{Message: "invalid id"}
	}
	return int32(id), nil
}

// emptyAsList turns a nil slice into an empty one so list endpoints always
// marshal a JSON array.
func emptyAsList[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
