package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/reqflow-io/reqflow/pkg/types"
)

var GetUserIDFromContext = func(c *gin.Context) (uuid.UUID, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return uuid.Nil, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return uuid.Nil, errors.New("invalid user claims type")
	}

	return claims.UserID, nil
}
