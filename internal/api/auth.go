package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IssueTokenHandler trades a valid API key for a bearer token. Only
// available when both an API key and a JWT secret are configured.
func (h *Handler) IssueTokenHandler(auth AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.APIKey == "" || auth.JWTSecret == "" {
			c.JSON(http.StatusNotImplemented, gin.H{"message": "Token issuing is not enabled"})
			return
		}
		if !validAPIKey(auth.APIKey, c.GetHeader(headerAPIKey)) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		token, expires, err := IssueToken(auth.JWTSecret, auth.TokenTTL, auth.clock()())
		if err != nil {
			respondError(c, err, "", "Failed to issue token")
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "expiresAt": expires})
	}
}
