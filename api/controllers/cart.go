package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lynnadornets/adornets-backend/api/middleware"
	"github.com/lynnadornets/adornets-backend/api/responses"
	"github.com/lynnadornets/adornets-backend/api/validators"
	"github.com/lynnadornets/adornets-backend/internal/cart"
	"github.com/lynnadornets/adornets-backend/internal/catalog"
	pkgerrors "github.com/lynnadornets/adornets-backend/pkg/errors"
	"github.com/lynnadornets/adornets-backend/pkg/logger"
	"github.com/lynnadornets/adornets-backend/pkg/metrics"
)

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type setQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type cartLineView struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal int             `json:"subtotal"`
}

type cartView struct {
	Lines      []cartLineView `json:"lines"`
	TotalPrice int            `json:"total_price"`
	TotalItems int            `json:"total_items"`
}

func newCartView(c *cart.Cart) cartView {
	lines := c.Lines()
	view := cartView{Lines: make([]cartLineView, 0, len(lines))}
	for _, line := range lines {
		view.Lines = append(view.Lines, cartLineView{
			Product:  line.Product,
			Quantity: line.Quantity,
			Subtotal: line.Subtotal(),
		})
		view.TotalPrice += line.Subtotal()
		view.TotalItems += line.Quantity
	}
	return view
}

func sessionCart(r *http.Request, carts *cart.Sessions) (*cart.Cart, error) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return carts.Get(sessionID), nil
}

// CartFetch serves the session's current cart.
func CartFetch(carts *cart.Sessions, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := sessionCart(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(c))
	}
}

// CartAddItem adds a product to the session's cart, merging with any existing
// line. Quantity defaults to one.
func CartAddItem(carts *cart.Sessions, feed *catalog.Feed, logg *logger.Logger, m *metrics.StorefrontMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, ok := feed.ByID(req.ProductID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		c, err := sessionCart(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quantity := req.Quantity
		if quantity == 0 {
			quantity = 1
		}
		c.AddItem(product, quantity)
		m.IncCartMutation("add")
		responses.WriteSuccess(w, newCartView(c))
	}
}

// CartSetQuantity replaces a line's quantity. Zero removes the line.
func CartSetQuantity(carts *cart.Sessions, logg *logger.Logger, m *metrics.StorefrontMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setQuantityRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c, err := sessionCart(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c.SetQuantity(chi.URLParam(r, "productId"), *req.Quantity)
		m.IncCartMutation("set_quantity")
		responses.WriteSuccess(w, newCartView(c))
	}
}

// CartRemoveItem drops the product's line from the session's cart.
func CartRemoveItem(carts *cart.Sessions, logg *logger.Logger, m *metrics.StorefrontMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := sessionCart(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c.RemoveItem(chi.URLParam(r, "productId"))
		m.IncCartMutation("remove")
		responses.WriteSuccess(w, newCartView(c))
	}
}

// CartClear empties the session's cart.
func CartClear(carts *cart.Sessions, logg *logger.Logger, m *metrics.StorefrontMetrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := sessionCart(r, carts)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		c.Clear()
		m.IncCartMutation("clear")
		responses.WriteSuccess(w, newCartView(c))
	}
}
