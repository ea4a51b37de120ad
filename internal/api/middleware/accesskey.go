package middleware

import (
	"crypto/subtle"
	"net/http"
	"user_api/internal/common"
)

// AccessTokenHeader carries the static shared secret on protected routes.
const AccessTokenHeader = "X-ACCESS-TOKEN"

// AccessKey rejects requests whose access-token header does not match the
// configured secret. The comparison is constant-time.
func AccessKey(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(AccessTokenHeader)
			if subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
				common.RespondWithError(w, http.StatusUnauthorized, common.ErrInvalidCredentials.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
