package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

type stubTokenService struct {
	acceptToken string
	userID      uuid.UUID
}

func (s *stubTokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if token != s.acceptToken {
		return nil, errors.New("invalid token")
	}
	return &adapter.TokenClaims{
		UserID:    s.userID,
		Email:     "user@example.com",
		ExpiresAt: time.Now().Add(time.Minute),
	}, nil
}

func (s *stubTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	return nil
}

func (s *stubTokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return false, nil
}

func newAuthTestRouter(userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	authMiddleware := NewAuthMiddleware(&stubTokenService{acceptToken: "good-token", userID: userID})

	engine.GET("/protected", authMiddleware.Authenticate(), func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	})
	return engine
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	engine := newAuthTestRouter(userID)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"accepts a valid bearer token", "Bearer good-token", http.StatusOK},
		{"rejects a missing header", "", http.StatusUnauthorized},
		{"rejects a non-bearer header", "Basic abc123", http.StatusUnauthorized},
		{"rejects an empty bearer token", "Bearer ", http.StatusUnauthorized},
		{"rejects an invalid token", "Bearer bad-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d (body: %s)", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}
