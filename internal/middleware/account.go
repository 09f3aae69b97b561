package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "invoicer/internal/errors"
)

// AccountIDKey is the context key holding the resolved account id.
const AccountIDKey = "accountID"

// AccountScope resolves the :user path parameter against the configured
// accounts and stores it under AccountIDKey. Unknown accounts are rejected
// with UNKNOWN_ACCOUNT.
func AccountScope(accounts []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		allowed[strings.ToLower(a)] = true
	}

	return func(c *gin.Context) {
		id := strings.ToLower(c.Param("user"))
		if !allowed[id] {
			abortWithError(c, apperrors.ErrUnknownAccount)
			return
		}
		c.Set(AccountIDKey, id)
		c.Next()
	}
}
