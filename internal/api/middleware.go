package api

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goelshashank/Kitchen-Inventory2/pkg/utils"
)

const (
	headerAPIKey    = "X-API-Key"
	headerRequestID = "X-Request-ID"
	ctxRequestID    = "request_id"
	tokenSubject    = "kitchen-api"
)

// AuthConfig - credentials accepted by AuthMiddleware. With both fields
// empty the API is open.
type AuthConfig struct {
	APIKey    string
	JWTSecret string
	TokenTTL  time.Duration
	// Now is the clock tokens are issued and checked against; nil means time.Now.
	Now func() time.Time
}

func (a AuthConfig) clock() func() time.Time {
	if a.Now == nil {
		return time.Now
	}
	return a.Now
}

func (a AuthConfig) enabled() bool {
	return a.APIKey != "" || a.JWTSecret != ""
}

// AuthMiddleware accepts either the static API key in X-API-Key or an HS256
// bearer token signed with JWTSecret. Websocket clients, which cannot set
// headers from a browser, may pass the token as ?token=.
func AuthMiddleware(auth AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.enabled() {
			c.Next()
			return
		}

		if auth.APIKey != "" && validAPIKey(auth.APIKey, c.GetHeader(headerAPIKey)) {
			c.Next()
			return
		}

		if token := bearerToken(c); auth.JWTSecret != "" && token != "" {
			err := verifyToken(auth.JWTSecret, token, auth.clock())
			if err == nil {
				c.Next()
				return
			}
			utils.Log.Debug("Rejected token", zap.Error(err), zap.String(ctxRequestID, requestID(c)))
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
	}
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return c.Query("token")
}

func validAPIKey(want, got string) bool {
	return got != "" && subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}

// IssueToken signs a token valid for ttl.
func IssueToken(secret string, ttl time.Duration, now time.Time) (string, time.Time, error) {
	expires := now.Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   tokenSubject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

func verifyToken(secret, raw string, now func() time.Time) error {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return err
	}
	if !token.Valid || claims.Subject != tokenSubject {
		return errors.New("invalid token")
	}
	return nil
}

// RequestID tags every request with an id, reusing the caller's X-Request-ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(ctxRequestID)
}

// AccessLog writes one line per request.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String(ctxRequestID, requestID(c)),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			utils.Log.Warn("request", fields...)
			return
		}
		utils.Log.Info("request", fields...)
	}
}
