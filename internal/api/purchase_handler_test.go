package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floravend/bloom-api/internal/api/shared"
	"github.com/floravend/bloom-api/internal/domain"
)

func authedRequest(t *testing.T, method, target string, user *domain.User) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), shared.UserContextKey, user)
	return req.WithContext(ctx)
}

func TestPurchase(t *testing.T) {
	t.Parallel()

	newUser := func(t *testing.T) *domain.User {
		t.Helper()
		user, err := domain.NewUser("rosa", "secret123")
		require.NoError(t, err)
		return user
	}

	t.Run("checks out the cart and clears the cookie", func(t *testing.T) {
		t.Parallel()

		user := newUser(t)
		checkout := &mockCheckoutService{count: 2}
		handler := NewPurchaseHandler(checkout, &mockPurchaseStore{})

		req := authedRequest(t, http.MethodPost, "/purchased", user)
		req.AddCookie(&http.Cookie{Name: cartCookieName, Value: "id-1,id-2"})
		rr := httptest.NewRecorder()

		handler.Purchase(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, checkout.calls)
		assert.Equal(t, user.ID, checkout.userID)
		assert.Equal(t, []string{"id-1", "id-2"}, checkout.cart.IDs())

		// The cookie is expired on the response.
		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, cartCookieName, cookies[0].Name)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("empty cart still clears the cookie", func(t *testing.T) {
		t.Parallel()

		checkout := &mockCheckoutService{}
		handler := NewPurchaseHandler(checkout, &mockPurchaseStore{})

		rr := httptest.NewRecorder()
		handler.Purchase(rr, authedRequest(t, http.MethodPost, "/purchased", newUser(t)))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, checkout.cart.IsEmpty())

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("checkout failure returns 500 and keeps the cookie", func(t *testing.T) {
		t.Parallel()

		checkout := &mockCheckoutService{err: errors.New("database gone")}
		handler := NewPurchaseHandler(checkout, &mockPurchaseStore{})

		req := authedRequest(t, http.MethodPost, "/purchased", newUser(t))
		req.AddCookie(&http.Cookie{Name: cartCookieName, Value: "id-1"})
		rr := httptest.NewRecorder()

		handler.Purchase(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Empty(t, rr.Result().Cookies())
	})

	t.Run("missing user returns 401", func(t *testing.T) {
		t.Parallel()

		checkout := &mockCheckoutService{}
		handler := NewPurchaseHandler(checkout, &mockPurchaseStore{})

		rr := httptest.NewRecorder()
		handler.Purchase(rr, httptest.NewRequest(http.MethodPost, "/purchased", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Zero(t, checkout.calls)
	})
}

func TestListPurchased(t *testing.T) {
	t.Parallel()

	t.Run("returns purchases with duplicates preserved", func(t *testing.T) {
		t.Parallel()

		user, err := domain.NewUser("rosa", "secret123")
		require.NoError(t, err)

		purchases := &mockPurchaseStore{
			items: map[uuid.UUID][]domain.PurchasedItem{
				user.ID: {
					{Name: "Rose", Price: 5.0},
					{Name: "Rose", Price: 5.0},
					{Name: "Tulip", Price: 3.5},
				},
			},
		}
		handler := NewPurchaseHandler(&mockCheckoutService{}, purchases)

		rr := httptest.NewRecorder()
		handler.ListPurchased(rr, authedRequest(t, http.MethodGet, "/purchased", user))

		require.Equal(t, http.StatusOK, rr.Code)

		var resp []domain.PurchasedItem
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp, 3)
		assert.Equal(t, "Rose", resp[0].Name)
		assert.Equal(t, "Rose", resp[1].Name)
		assert.Equal(t, "Tulip", resp[2].Name)
	})

	t.Run("no purchases yields an empty list", func(t *testing.T) {
		t.Parallel()

		user, err := domain.NewUser("rosa", "secret123")
		require.NoError(t, err)
		handler := NewPurchaseHandler(&mockCheckoutService{}, &mockPurchaseStore{})

		rr := httptest.NewRecorder()
		handler.ListPurchased(rr, authedRequest(t, http.MethodGet, "/purchased", user))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}
