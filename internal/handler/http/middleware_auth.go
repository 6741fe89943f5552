package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/trademark-relay/internal/logger"
	"github.com/MKhiriev/trademark-relay/internal/utils"
	"github.com/MKhiriev/trademark-relay/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication on the
// relay routes. It is only installed when a sign key is configured.
//
// The bearer token must be HS256-signed with the configured key, carry the
// configured issuer and a subject, and not be expired. On success the
// subject is stored in the request context under [utils.CallerCtxKey] and
// added to the request logger as "caller".
//
// Rejections are answered with 401 and a JSON {"error": ...} body:
//   - no "Authorization" header ([ErrEmptyAuthorizationHeader]);
//   - a header that is not "Bearer <token>" ([ErrInvalidAuthorizationHeader]);
//   - a token that fails validation ([ErrInvalidToken]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			unauthorized(w, ErrInvalidAuthorizationHeader)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.cfg.AuthSignKey, h.cfg.AuthIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			unauthorized(w, ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), utils.CallerCtxKey, token.Caller)
		callerLog := log.With().Str("caller", token.Caller).Logger()
		ctx = callerLog.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusUnauthorized)
}
