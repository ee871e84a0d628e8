package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"smoothbux-be/internal/menu"
	"smoothbux-be/internal/utils"
)

type MenuHandler struct {
	menus menu.Service
}

func NewMenuHandler(menus menu.Service) *MenuHandler {
	return &MenuHandler{menus: menus}
}

func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.menus.ListItems(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var input menu.CreateItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.menus.CreateItem(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, item)
}

func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.menus.DeleteItem(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type availabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}

func (h *MenuHandler) SetItemAvailability(w http.ResponseWriter, r *http.Request) {
	var req availabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	if err := h.menus.SetItemAvailability(r.Context(), id, req.IsAvailable); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MenuHandler) ListOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.menus.ListOptions(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, opts)
}

func (h *MenuHandler) CreateOption(w http.ResponseWriter, r *http.Request) {
	var input menu.CreateOptionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	opt, err := h.menus.CreateOption(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, opt)
}

func (h *MenuHandler) DeleteOption(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.menus.DeleteOption(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
