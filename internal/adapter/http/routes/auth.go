package routes

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"dischley_intake/internal/domain/auth"
	"dischley_intake/pkg"

	"github.com/gin-gonic/gin"
)

// authRequired gates routes behind the single shared staff credential.
// On success the request context carries an operator for downstream
// logging; there is no per-user identity.
func authRequired(token string) gin.HandlerFunc {
	unauthorized := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)

	return func(c *gin.Context) {
		// An unset credential locks the API rather than opening it.
		if token == "" || !constantTimeEqual(extractBearerToken(c.Request), token) {
			c.AbortWithStatusJSON(unauthorized.HTTPStatus, unauthorized.ToHTTPError())
			return
		}

		ctx := auth.NewContext(c.Request.Context(), auth.Operator{Name: "staff"})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearerToken(r *http.Request) string {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
