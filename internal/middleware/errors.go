package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"taskapi/internal/apperrors"
)

// ErrorHandler is the single place errors become HTTP responses. Handlers
// attach typed errors via c.Error and abort; every taxonomy member maps
// to exactly one status and code here, so the error envelope is uniform
// across all routes.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var vErr *apperrors.ValidationError
		if errors.As(err, &vErr) {
			body := gin.H{"message": vErr.Message, "code": vErr.Code}
			if len(vErr.Fields) > 0 {
				body["details"] = vErr.Fields
			}
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": body})
			return
		}

		if errors.Is(err, apperrors.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   gin.H{"message": "Task not found", "code": apperrors.CodeTaskNotFound},
			})
			return
		}

		// Storage and unknown failures: full detail stays server-side.
		var sErr *apperrors.StorageError
		if errors.As(err, &sErr) {
			log.WithFields(log.Fields{
				"request_id": GetRequestID(c),
				"op":         sErr.Op,
			}).Errorf("storage failure: %+v", sErr.Err)
		} else {
			log.WithField("request_id", GetRequestID(c)).Errorf("unhandled error: %v", err)
		}
		c.JSON(http.StatusInternalServerError, internalErrorBody())
	}
}

// Recovery turns panics into the same opaque 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithField("request_id", GetRequestID(c)).Errorf("panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, internalErrorBody())
	})
}

func internalErrorBody() gin.H {
	return gin.H{
		"success": false,
		"error":   gin.H{"message": "Internal Server Error", "code": apperrors.CodeInternal},
	}
}
