package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/agenda-scheduler/internal/config"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// GenerateToken assina um JWT HS256 com sub e role.
func GenerateToken(cfg *config.Config, userID uint, role identity.Role) (string, error) {
	now := time.Now()
	ttl := cfg.JWTTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(userID), 10),
		"role": string(role),
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Token não informado.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho Authorization inválido.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Token inválido ou expirado.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Token inválido.")
			c.Abort()
			return
		}

		sub, _ := claims.GetSubject()
		roleStr, _ := claims["role"].(string)
		role, okRole := identity.ParseRole(roleStr)
		id, err := strconv.ParseUint(sub, 10, 64)
		if err != nil || id == 0 || !okRole {
			httperr.Unauthorized(c, "invalid_token_payload", "Token inválido.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, uint(id))
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

// ActorFrom lê o ator gravado pelo AuthMiddleware.
func ActorFrom(c *gin.Context) (identity.Actor, bool) {
	id, ok1 := c.Get(ContextUserID)
	role, ok2 := c.Get(ContextUserRole)
	if !ok1 || !ok2 {
		return identity.Actor{}, false
	}

	uid, ok1 := id.(uint)
	r, ok2 := role.(identity.Role)
	if !ok1 || !ok2 {
		return identity.Actor{}, false
	}

	return identity.Actor{ID: uid, Role: r}, true
}

// RequireRole barra quem não tem um dos papéis.
func RequireRole(roles ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			httperr.Unauthorized(c, "user_not_in_context", "Não autenticado.")
			c.Abort()
			return
		}

		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}

		httperr.Forbidden(c, "forbidden", "Você não tem permissão para esta operação.")
		c.Abort()
	}
}

