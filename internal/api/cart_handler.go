package api

import (
	"net/http"

	"github.com/floravend/bloom-api/internal/api/shared"
	"github.com/floravend/bloom-api/internal/service"
)

// CartHandler handles cart requests. Cart state lives entirely in the client
// cookie; these handlers transform the cookie value and resolve it against
// the catalog on demand.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new CartHandler with the given dependencies.
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// AddItem handles the POST /cart/items endpoint.
// Reads the flower_id form field and the cart cookie, appends the ID if not
// already present, and writes the cookie back. The ID is not checked against
// the catalog here; resolution happens on read and at checkout.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	flowerID := r.PostFormValue("flower_id")
	if flowerID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "flower_id is required")
		return
	}

	cart := readCart(r)
	cart.Add(flowerID)
	writeCart(w, cart)

	w.WriteHeader(http.StatusOK)
}

// GetItems handles the GET /cart/items endpoint.
// The response shape is identical for empty and non-empty carts: a list of
// resolved flowers plus the price total.
func (h *CartHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	cart := readCart(r)

	flowers, total, err := h.cartService.Items(r.Context(), cart)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to read cart", err)
		return
	}

	items := make([]FlowerResponse, 0, len(flowers))
	for _, flower := range flowers {
		items = append(items, NewFlowerResponse(flower))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CartResponse{
		Items:      items,
		TotalPrice: total,
	})
}
