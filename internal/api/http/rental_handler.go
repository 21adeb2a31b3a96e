package http

import (
	"net/http"

	"carrental-backend/internal/domain"
)

func (a *API) handleListRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := a.rentals.ListRentals(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsList(rentals))
}

// handleOvertimeRentals returns rentals still in progress past their end
// date. The classification is recomputed per request, never stored.
func (a *API) handleOvertimeRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := a.rentals.ListOvertimeRentals(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsList(rentals))
}

func (a *API) handleGetRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rental, err := a.rentals.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (a *API) handleCreateRental(w http.ResponseWriter, r *http.Request) {
	var rental domain.Rental
	if err := decodeJSON(r, &rental); err != nil {
		writeError(w, r, err)
		return
	}
	created, err := a.rentals.CreateRental(r.Context(), &rental)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (a *API) handleUpdateRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var update domain.RentalUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	updated, err := a.rentals.UpdateRental(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (a *API) handleDeleteRental(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := a.rentals.DeleteRental(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}
