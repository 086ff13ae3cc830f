package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/lynnadornets/adornets-backend/api/responses"
	"github.com/lynnadornets/adornets-backend/internal/catalog"
	"github.com/lynnadornets/adornets-backend/pkg/enums"
	pkgerrors "github.com/lynnadornets/adornets-backend/pkg/errors"
	"github.com/lynnadornets/adornets-backend/pkg/logger"
)

// CatalogList serves the product feed, optionally filtered by category or
// the featured flag.
func CatalogList(feed *catalog.Feed, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		if raw := strings.TrimSpace(query.Get("category")); raw != "" {
			category, err := enums.ParseCategory(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category"))
				return
			}
			responses.WriteSuccess(w, feed.ByCategory(category))
			return
		}

		if query.Get("featured") == "true" {
			responses.WriteSuccess(w, feed.Featured())
			return
		}

		responses.WriteSuccess(w, feed.All())
	}
}

// CatalogDetail serves a single product by identifier.
func CatalogDetail(feed *catalog.Feed, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "productId")
		product, ok := feed.ByID(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}
