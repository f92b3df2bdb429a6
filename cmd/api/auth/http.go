package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"opsdesk/cmd/api/dto"
)

const (
	HeaderAuthorization = "Authorization"
	bearerScheme        = "bearer"
	messageForbidden    = "forbidden_insufficient_permissions"
)

var (
	ErrMissingHeader = errors.New("missing_authorization_header")
	ErrInvalidFormat = errors.New("invalid_authorization_header")
	ErrEmptyToken    = errors.New("empty_token")
)

// ParseBearer returns the token part of an Authorization header value.
// The scheme is matched case-insensitively.
func ParseBearer(header string) (string, error) {
	if header == "" {
		return "", ErrMissingHeader
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidFormat
	}

	if token = strings.TrimSpace(token); token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}

func ExtractBearerToken(c *gin.Context) (string, error) {
	return ParseBearer(c.GetHeader(HeaderAuthorization))
}

// AbortWithUnauthorized 는 401 과 함께 실패 envelope 을 내려준다. message 는 err 의 코드 문자열이다.
func AbortWithUnauthorized(c *gin.Context, err error) {
	abortWithEnvelope(c, http.StatusUnauthorized, err.Error())
}

func AbortWithForbidden(c *gin.Context) {
	abortWithEnvelope(c, http.StatusForbidden, messageForbidden)
}

func abortWithEnvelope(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.Envelope{Success: false, Message: message})
}
