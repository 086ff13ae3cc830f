package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/lynnadornets/adornets-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

// Session resolves the browsing session for cart and checkout routes. The
// identifier comes from the X-Session-Id header or the session cookie; a new
// one is minted when the client carries neither, so a first request always
// gets a usable session.
func Session(cookieName string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(sessionIDHeader)
			if sessionID == "" {
				if cookie, err := r.Cookie(cookieName); err == nil {
					sessionID = cookie.Value
				}
			}
			if _, err := uuid.Parse(sessionID); err != nil {
				sessionID = uuid.NewString()
			}

			w.Header().Set(sessionIDHeader, sessionID)
			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
