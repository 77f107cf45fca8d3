package middleware

import (
	"net/http"
	"strings"

	"bookkeeper/internal/auth"
	"bookkeeper/internal/httputil"
)

// AuthMiddleware validates Bearer session tokens and stores the user ID in the
// request context. Requests matching one of publicRoutes ("METHOD /path")
// and CORS preflights pass through unauthenticated.
func AuthMiddleware(verifier auth.TokenVerifier, publicRoutes ...string) func(http.Handler) http.Handler {
	public := make(map[string]bool, len(publicRoutes))
	for _, route := range publicRoutes {
		public[route] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || public[r.Method+" "+r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			// Verifiers reject tokens whose subject is not a UUID
			userID, err := claims.GetUserID()
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, httputil.WithUserID(r, userID))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
