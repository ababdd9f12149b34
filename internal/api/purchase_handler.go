package api

import (
	"log/slog"
	"net/http"

	"github.com/floravend/bloom-api/internal/api/middleware"
	"github.com/floravend/bloom-api/internal/api/shared"
	"github.com/floravend/bloom-api/internal/service"
	"github.com/floravend/bloom-api/internal/store"
)

// PurchaseHandler handles checkout and purchase history requests.
type PurchaseHandler struct {
	checkoutService service.CheckoutService
	purchaseStore   store.PurchaseStore
}

// NewPurchaseHandler creates a new PurchaseHandler with the given dependencies.
func NewPurchaseHandler(
	checkoutService service.CheckoutService,
	purchaseStore store.PurchaseStore,
) *PurchaseHandler {
	return &PurchaseHandler{
		checkoutService: checkoutService,
		purchaseStore:   purchaseStore,
	}
}

// Purchase handles the POST /purchased endpoint.
// Converts the cart cookie into purchase rows for the authenticated user
// (one transaction for the whole cart) and clears the cookie. An empty cart
// only clears the cookie.
func (h *PurchaseHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	cart := readCart(r)

	count, err := h.checkoutService.Checkout(r.Context(), user.ID, cart)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	slog.Info("checkout handled",
		"user_id", user.ID,
		"cart_size", len(cart.IDs()),
		"purchases", count)

	clearCart(w)
	w.WriteHeader(http.StatusOK)
}

// ListPurchased handles the GET /purchased endpoint.
// Returns one {name, price} entry per purchase row in insertion order;
// repeated purchases of the same flower are not aggregated.
func (h *PurchaseHandler) ListPurchased(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	items, err := h.purchaseStore.ListByUser(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list purchases", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, items)
}
