package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/danceinaction/booking-api/internal/pkg/jwthelper"
)

// CtxKeyUserID is where VerifyJWT stores the authenticated account id.
const CtxKeyUserID = "user_id"

// Authenticator validates bearer tokens issued by the auth provider.
// The API only consumes the opaque subject; account management lives
// elsewhere.
type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{signingKey: []byte(signingKey)}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := a.parse(ctx)
		if !ok {
			return
		}

		ctx.Set(CtxKeyUserID, claims.Subject)
		ctx.Next()
	}
}

// VerifyAdmin only passes tokens carrying the admin role, i.e. the
// short-lived sessions issued by the PIN login.
func (a *Authenticator) VerifyAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := a.parse(ctx)
		if !ok {
			return
		}
		if claims.Role != "admin" {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin session required"})
			return
		}

		ctx.Next()
	}
}

func (a *Authenticator) parse(ctx *gin.Context) (*jwthelper.Claims, bool) {
	header := ctx.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return nil, false
	}

	claims, err := jwthelper.ParseToken(a.signingKey, token)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return nil, false
	}
	return claims, true
}

// UserID extracts the authenticated account id set by VerifyJWT.
func UserID(ctx *gin.Context) string {
	return ctx.GetString(CtxKeyUserID)
}
