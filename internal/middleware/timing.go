package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ResponseTimeHeader reports request processing time in milliseconds.
const ResponseTimeHeader = "X-Response-Time"

// timedWriter injects the duration header just before the status line is
// written; after the first byte it is too late to add headers.
type timedWriter struct {
	gin.ResponseWriter
	start   time.Time
	stamped bool
}

func (w *timedWriter) stamp() {
	if w.stamped {
		return
	}
	w.stamped = true
	ms := time.Since(w.start).Milliseconds()
	w.Header().Set(ResponseTimeHeader, strconv.FormatInt(ms, 10)+"ms")
}

func (w *timedWriter) WriteHeader(code int) {
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *timedWriter) Write(b []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(b)
}

func (w *timedWriter) WriteString(s string) (int, error) {
	w.stamp()
	return w.ResponseWriter.WriteString(s)
}

// Timing measures request processing time, emits it as a response header
// and writes one access-log line per request.
func Timing() gin.HandlerFunc {
	return func(c *gin.Context) {
		tw := &timedWriter{ResponseWriter: c.Writer, start: time.Now()}
		c.Writer = tw

		c.Next()

		log.WithFields(log.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(tw.start).String(),
			"request_id": GetRequestID(c),
		}).Info("request completed")
	}
}
