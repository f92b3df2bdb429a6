package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"opsdesk/cmd/api/trace"
	"opsdesk/cmd/internal/logger"
)

const HeaderRequestID = "X-Request-Id"

// RequestTrace는 모든 inbound HTTP 요청에 Request ID를 보장하고,
// 컨텍스트/응답 헤더에 저장한 뒤 완료 시점에 요청 로그를 남긴다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}
		c.Request = req.WithContext(trace.WithRequestID(req.Context(), requestID))
		c.Writer.Header().Set(HeaderRequestID, requestID)

		// query_params 는 멀티 값 쿼리도 모두 보존하기 위해 map[string][]string 으로 기록한다.
		queryParams := map[string][]string{}
		for key, values := range req.URL.Query() {
			if len(values) > 0 {
				queryParams[key] = values
			}
		}

		c.Next()

		fields := logger.Fields{
			"method":       req.Method,
			"path":         req.URL.Path,
			"query_params": queryParams,
			"status":       c.Writer.Status(),
			"duration":     time.Since(start).String(),
			"request_id":   requestID,
		}
		if userID, ok := c.Get(ContextKeyUserID); ok {
			fields["user_id"] = userID
		}
		logger.InfoWithFields("completed request", fields)
	}
}
