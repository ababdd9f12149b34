package api

import (
	"net/http"

	"github.com/floravend/bloom-api/internal/api/shared"
	"github.com/floravend/bloom-api/internal/domain"
	"github.com/floravend/bloom-api/internal/store"
)

// FlowerHandler handles catalog requests.
type FlowerHandler struct {
	flowerStore store.FlowerStore
}

// NewFlowerHandler creates a new FlowerHandler with the given dependencies.
func NewFlowerHandler(flowerStore store.FlowerStore) *FlowerHandler {
	return &FlowerHandler{
		flowerStore: flowerStore,
	}
}

// ListFlowers handles the GET /flowers endpoint.
// Returns every flower in insertion order; no filtering or pagination.
func (h *FlowerHandler) ListFlowers(w http.ResponseWriter, r *http.Request) {
	flowers, err := h.flowerStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list flowers", err)
		return
	}

	resp := make([]FlowerResponse, 0, len(flowers))
	for _, flower := range flowers {
		resp = append(resp, NewFlowerResponse(flower))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// CreateFlower handles the POST /flowers endpoint.
// The catalog performs no duplicate-name check and no price validation.
func (h *FlowerHandler) CreateFlower(w http.ResponseWriter, r *http.Request) {
	var req CreateFlowerRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	flower, err := domain.NewFlower(req.Name, req.Price)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	if err := h.flowerStore.Create(r.Context(), flower); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewFlowerResponse(flower))
}
