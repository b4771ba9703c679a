package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"hireflow/internal/models"
	"hireflow/internal/storage"
	"hireflow/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "currentUser" // Key to store the authenticated user in context
)

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(http.StatusUnauthorized, message, c.Request.URL.Path))
}

// JWTAuthMiddleware creates a Gin middleware for JWT authentication. The
// token subject is the user's email; the principal is resolved once here
// and carried through the context, never fetched implicitly mid-call.
func JWTAuthMiddleware(jwtSecret string, userRepo storage.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			log.Println("Auth middleware: Authorization header missing")
			abortUnauthorized(c, "Authorization header required")
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			log.Println("Auth middleware: Invalid Authorization header format")
			abortUnauthorized(c, "Invalid Authorization header format")
			return
		}

		tokenString := headerParts[1]

		// Parse and validate the token
		token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			// Validate the alg is what you expect:
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortUnauthorized(c, "Token has expired")
			} else {
				abortUnauthorized(c, "Invalid token")
			}
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok || !token.Valid || claims.Subject == "" {
			log.Println("Auth middleware: Invalid token claims or token is not valid")
			abortUnauthorized(c, "Invalid token")
			return
		}

		// Resolve the subject email to the user record once per request.
		user, err := userRepo.GetByEmail(c.Request.Context(), &dto.GetUserByEmailRequest{Email: claims.Subject})
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Printf("Auth middleware: token subject '%s' has no user record", claims.Subject)
				abortUnauthorized(c, "Invalid token")
				return
			}
			log.Printf("Auth middleware: Error resolving user '%s': %v", claims.Subject, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse(http.StatusInternalServerError, "An unexpected error occurred. Please try again.", c.Request.URL.Path))
			return
		}

		c.Set(userCtx, user)
		c.Next()
	}
}

// GetCurrentUser returns the authenticated principal stored by
// JWTAuthMiddleware.
func GetCurrentUser(c *gin.Context) (*models.User, error) {
	userAny, exists := c.Get(userCtx)
	if !exists {
		return nil, errors.New("authenticated user not found in context")
	}

	user, ok := userAny.(*models.User)
	if !ok {
		return nil, errors.New("authenticated user in context is of invalid type")
	}

	return user, nil
}

// SetCurrentUser stores the principal in the context. Exposed for tests
// exercising handlers without the full middleware chain.
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(userCtx, user)
}
