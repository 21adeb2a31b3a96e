package http

import (
	"net/http"

	"carrental-backend/internal/domain"
)

func (a *API) handleListCars(w http.ResponseWriter, r *http.Request) {
	cars, err := a.cars.ListCars(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsList(cars))
}

func (a *API) handleGetCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	car, err := a.cars.GetCar(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (a *API) handleCreateCar(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r); err != nil {
		writeError(w, r, err)
		return
	}
	var car domain.Car
	if err := decodeJSON(r, &car); err != nil {
		writeError(w, r, err)
		return
	}
	created, err := a.cars.CreateCar(r.Context(), &car)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (a *API) handleUpdateCar(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var car domain.Car
	if err := decodeJSON(r, &car); err != nil {
		writeError(w, r, err)
		return
	}
	updated, err := a.cars.UpdateCar(r.Context(), id, &car)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (a *API) handleDeleteCar(w http.ResponseWriter, r *http.Request) {
	if err := requireAdmin(r); err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := a.cars.DeleteCar(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (a *API) handleSearchCars(w http.ResponseWriter, r *http.Request) {
	var query domain.CarSearchQuery
	if err := decodeJSON(r, &query); err != nil {
		writeError(w, r, err)
		return
	}
	cars, err := a.cars.SearchCars(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyAsList(cars))
}
