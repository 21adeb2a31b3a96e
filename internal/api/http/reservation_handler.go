package http

import (
	"net/http"

	"carrental-backend/internal/domain"
)

// handleListReservations returns the active (NEW) reservations, which is
// what the admin front end lists.
func (a *API) handleListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := a.reservations.ListActiveReservations(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsList(reservations))
}

func (a *API) handleGetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	reservation, err := a.reservations.GetReservation(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (a *API) handleCreateReservation(w http.ResponseWriter, r *http.Request) {
	var reservation domain.Reservation
	if err := decodeJSON(r, &reservation); err != nil {
		writeError(w, r, err)
		return
	}
	created, err := a.reservations.CreateReservation(r.Context(), &reservation)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (a *API) handleUpdateReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var update domain.ReservationUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	updated, err := a.reservations.UpdateReservation(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (a *API) handleDeleteReservation(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := a.reservations.DeleteReservation(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}
