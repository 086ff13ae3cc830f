package checkout

import (
	"context"
	"fmt"
	"sync"

	"github.com/lynnadornets/adornets-backend/internal/cart"
	"github.com/lynnadornets/adornets-backend/internal/whatsapp"
	"github.com/lynnadornets/adornets-backend/pkg/enums"
	pkgerrors "github.com/lynnadornets/adornets-backend/pkg/errors"
	"github.com/lynnadornets/adornets-backend/pkg/logger"
	"github.com/lynnadornets/adornets-backend/pkg/metrics"
)

type dispatcher interface {
	Dispatch(ctx context.Context, payload string, mobile bool) (whatsapp.Result, error)
}

// Service drives the per-session checkout flow:
// Browsing -> CheckoutForm -> Submitting -> {Success | CheckoutForm}.
type Service interface {
	State(sessionID string) enums.CheckoutState
	Begin(ctx context.Context, sessionID string) (enums.CheckoutState, error)
	Cancel(ctx context.Context, sessionID string) error
	Close(ctx context.Context, sessionID string) error
	Submit(ctx context.Context, sessionID string, details CustomerDetails, mobile bool) (*Receipt, error)
}

// Receipt describes a successfully handed-off order.
type Receipt struct {
	Total      int                 `json:"total"`
	ItemCount  int                 `json:"item_count"`
	Channel    whatsapp.Channel    `json:"channel"`
	HandoffURL string              `json:"handoff_url"`
	State      enums.CheckoutState `json:"state"`
}

type service struct {
	carts        *cart.Sessions
	dispatch     dispatcher
	instructions PaymentInstructions
	logg         *logger.Logger
	metrics      *metrics.StorefrontMetrics

	mu     sync.Mutex
	states map[string]enums.CheckoutState
}

// NewService builds the checkout service.
func NewService(carts *cart.Sessions, dispatch dispatcher, instructions PaymentInstructions, logg *logger.Logger, m *metrics.StorefrontMetrics) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart sessions required")
	}
	if dispatch == nil {
		return nil, fmt.Errorf("dispatcher required")
	}
	return &service{
		carts:        carts,
		dispatch:     dispatch,
		instructions: instructions,
		logg:         logg,
		metrics:      m,
		states:       make(map[string]enums.CheckoutState),
	}, nil
}

// State reports the session's current checkout state.
func (s *service) State(sessionID string) enums.CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked(sessionID)
}

// Begin opens the checkout form. The cart must be non-empty; a submission in
// flight blocks the transition.
func (s *service) Begin(ctx context.Context, sessionID string) (enums.CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stateLocked(sessionID) == enums.CheckoutStateSubmitting {
		return "", pkgerrors.New(pkgerrors.CodeStateConflict, "submission in progress")
	}
	if s.carts.Get(sessionID).Len() == 0 {
		return "", pkgerrors.New(pkgerrors.CodeStateConflict, "cannot checkout an empty cart")
	}

	s.setStateLocked(sessionID, enums.CheckoutStateForm)
	return enums.CheckoutStateForm, nil
}

// Cancel returns from the checkout form to browsing; the cart is untouched.
func (s *service) Cancel(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stateLocked(sessionID) == enums.CheckoutStateSubmitting {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "submission in progress")
	}
	s.setStateLocked(sessionID, enums.CheckoutStateBrowsing)
	return nil
}

// Close resets the session to browsing from any state, discarding checkout
// progress but never the cart.
func (s *service) Close(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setStateLocked(sessionID, enums.CheckoutStateBrowsing)
	return nil
}

// Submit validates the form, formats the order payload, and attempts the
// hand-off. Success clears the cart; any failure leaves cart and state
// intact for a retry.
func (s *service) Submit(ctx context.Context, sessionID string, details CustomerDetails, mobile bool) (*Receipt, error) {
	s.mu.Lock()
	switch s.stateLocked(sessionID) {
	case enums.CheckoutStateSubmitting:
		s.mu.Unlock()
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "submission already in progress")
	case enums.CheckoutStateForm:
		// proceed
	default:
		s.mu.Unlock()
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "checkout has not been started")
	}
	s.setStateLocked(sessionID, enums.CheckoutStateSubmitting)
	s.mu.Unlock()

	receipt, err := s.submit(ctx, sessionID, details, mobile)

	s.mu.Lock()
	defer s.mu.Unlock()
	// The drawer may have been closed mid-flight; only record the outcome if
	// the session is still submitting.
	if s.stateLocked(sessionID) == enums.CheckoutStateSubmitting {
		if err != nil {
			s.setStateLocked(sessionID, enums.CheckoutStateForm)
		} else {
			s.setStateLocked(sessionID, enums.CheckoutStateSuccess)
		}
	}
	if err != nil {
		return nil, err
	}
	receipt.State = enums.CheckoutStateSuccess
	return receipt, nil
}

func (s *service) submit(ctx context.Context, sessionID string, details CustomerDetails, mobile bool) (*Receipt, error) {
	details.Normalize()
	if err := details.Validate(); err != nil {
		return nil, err
	}

	sessionCart := s.carts.Get(sessionID)
	lines := sessionCart.Lines()
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cannot checkout an empty cart")
	}

	total := sessionCart.TotalPrice()
	items := sessionCart.TotalItems()
	payload := FormatOrder(details, lines, total, s.instructions)

	result, err := s.dispatch.Dispatch(ctx, payload, mobile)
	if err != nil {
		s.metrics.IncDispatchFailure()
		if s.logg != nil {
			s.logg.Error(s.logg.WithSessionID(ctx, sessionID), "order hand-off failed", err)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "order hand-off failed")
	}

	sessionCart.Clear()
	s.metrics.IncDispatchAttempt(string(result.Channel))
	s.metrics.ObserveOrderPlaced(total)
	if s.logg != nil {
		lctx := s.logg.WithFields(ctx, map[string]any{
			"session_id": sessionID,
			"channel":    string(result.Channel),
			"total_ksh":  total,
		})
		s.logg.Info(lctx, "order handed off")
	}

	return &Receipt{
		Total:      total,
		ItemCount:  items,
		Channel:    result.Channel,
		HandoffURL: result.Link,
	}, nil
}

func (s *service) stateLocked(sessionID string) enums.CheckoutState {
	if state, ok := s.states[sessionID]; ok {
		return state
	}
	return enums.CheckoutStateBrowsing
}

func (s *service) setStateLocked(sessionID string, state enums.CheckoutState) {
	if state == enums.CheckoutStateBrowsing {
		delete(s.states, sessionID)
		return
	}
	s.states[sessionID] = state
}
