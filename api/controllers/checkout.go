package controllers

import (
	"net/http"
	"regexp"

	"github.com/lynnadornets/adornets-backend/api/middleware"
	"github.com/lynnadornets/adornets-backend/api/responses"
	"github.com/lynnadornets/adornets-backend/api/validators"
	"github.com/lynnadornets/adornets-backend/internal/checkout"
	"github.com/lynnadornets/adornets-backend/pkg/enums"
	pkgerrors "github.com/lynnadornets/adornets-backend/pkg/errors"
	"github.com/lynnadornets/adornets-backend/pkg/logger"
)

var mobileUserAgent = regexp.MustCompile(`(?i)android|iphone|ipad|ipod`)

type submitCheckoutRequest struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	Country       string `json:"country"`
	DeliveryType  string `json:"delivery_type" validate:"omitempty,oneof=local international"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash mpesa-delivery mpesa-now"`
	Notes         string `json:"notes"`
}

type checkoutStateView struct {
	State enums.CheckoutState `json:"state"`
}

func requestSessionID(r *http.Request) (string, error) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return sessionID, nil
}

// CheckoutState reports where the session is in the checkout flow.
func CheckoutState(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := requestSessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, checkoutStateView{State: svc.State(sessionID)})
	}
}

// CheckoutBegin opens the checkout form for a non-empty cart.
func CheckoutBegin(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := requestSessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := svc.Begin(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, checkoutStateView{State: state})
	}
}

// CheckoutSubmit validates the form and hands the order off. The hand-off
// channel preference follows the caller's user agent.
func CheckoutSubmit(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := requestSessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req submitCheckoutRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		details := checkout.CustomerDetails{
			Name:          req.Name,
			Phone:         req.Phone,
			Email:         req.Email,
			Address:       req.Address,
			City:          req.City,
			Country:       req.Country,
			DeliveryType:  enums.DeliveryType(req.DeliveryType),
			PaymentMethod: enums.PaymentMethod(req.PaymentMethod),
			Notes:         req.Notes,
		}

		mobile := mobileUserAgent.MatchString(r.UserAgent())
		receipt, err := svc.Submit(r.Context(), sessionID, details, mobile)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, receipt)
	}
}

// CheckoutCancel returns from the form to browsing without touching the cart.
func CheckoutCancel(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := requestSessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Cancel(r.Context(), sessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, checkoutStateView{State: enums.CheckoutStateBrowsing})
	}
}

// CheckoutClose resets the checkout flow from any state.
func CheckoutClose(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := requestSessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Close(r.Context(), sessionID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, checkoutStateView{State: enums.CheckoutStateBrowsing})
	}
}
