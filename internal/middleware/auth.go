package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/marcusnog/playground-backend/internal/apierror"
	"github.com/marcusnog/playground-backend/internal/permission"
	"github.com/marcusnog/playground-backend/internal/repository"
	"github.com/marcusnog/playground-backend/internal/service"
)

const ClaimsKey = "claims"

// JWTAuth validates the Bearer token on every protected route.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Unauthorized("autenticação necessária"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &service.JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Unauthorized("token inválido ou expirado"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequirePermission rejects requests whose token snapshot lacks the
// capability. The checked key is named in the response so the frontend can
// point at the missing flag.
func RequirePermission(key permission.Key) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || !claims.Permissoes.Has(key) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				apierror.Forbidden("permissão necessária: "+string(key)))
			return
		}
		c.Next()
	}
}

// BlockedGuard re-checks the bloqueado flag against the database on each
// request. Tokens carry a snapshot, so without this a user blocked after
// login would keep working until the token expires.
func BlockedGuard(repo repository.UsuarioRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Unauthorized("autenticação necessária"))
			return
		}

		id, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Unauthorized("token inválido"))
			return
		}

		user, err := repo.FindByID(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Unauthorized("usuário não encontrado"))
			return
		}
		if user.Bloqueado {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.Forbidden("usuário bloqueado"))
			return
		}
		c.Next()
	}
}

// GetClaims retrieves the typed claims from the Gin context.
func GetClaims(c *gin.Context) *service.JWTClaims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*service.JWTClaims)
	return claims
}
