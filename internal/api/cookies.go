package api

import (
	"net/http"

	"github.com/floravend/bloom-api/internal/domain"
)

// cartCookieName is the cookie carrying the client-held cart state.
const cartCookieName = "cart"

// readCart decodes the cart cookie from the request.
// A missing cookie yields an empty cart.
func readCart(r *http.Request) domain.Cart {
	cookie, err := r.Cookie(cartCookieName)
	if err != nil {
		return domain.ParseCart("")
	}
	return domain.ParseCart(cookie.Value)
}

// writeCart serializes the cart back into the response cookie.
func writeCart(w http.ResponseWriter, cart domain.Cart) {
	http.SetCookie(w, &http.Cookie{
		Name:  cartCookieName,
		Value: cart.String(),
		Path:  "/",
	})
}

// clearCart instructs the client to drop its cart cookie.
func clearCart(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:   cartCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}
