package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, "session-1", time.Hour, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.SessionID != "session-1" || token.UserID != userID {
		t.Errorf("unexpected cached ids: %d %q", token.UserID, token.SessionID)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", claims.Subject)
	}
	if claims.ID != "session-1" {
		t.Errorf("expected jti 'session-1', got %s", claims.ID)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		sessionID string
		duration  time.Duration
		key       string
	}{
		{"empty issuer", "", "s", time.Hour, "key"},
		{"empty session", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "s", 0, "key"},
		{"empty key", "iss", "s", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.sessionID, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	genToken, _ := GenerateJWTToken(issuer, 456, "session-456", 5*time.Minute, key)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != 456 {
		t.Errorf("expected userID 456, got %d", parsedToken.UserID)
	}
	if parsedToken.SessionID != "session-456" {
		t.Errorf("expected session-456, got %q", parsedToken.SessionID)
	}
	if got, _ := parsedToken.GetSessionID(); got != "session-456" {
		t.Errorf("expected GetSessionID to read jti, got %q", got)
	}
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	key := "key"
	valid, _ := GenerateJWTToken("real-issuer", 1, "s", time.Hour, key)
	expired, _ := GenerateJWTToken("real-issuer", 1, "s", -time.Second, key)

	noSession := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:  "real-issuer",
		Subject: "1",
	})
	noSessionString, _ := noSession.SignedString([]byte(key))

	tests := []struct {
		name  string
		token string
		key   string
		iss   string
	}{
		{"wrong key", valid.SignedString, "wrong-key", "real-issuer"},
		{"wrong issuer", valid.SignedString, key, "fake-issuer"},
		{"expired", expired.SignedString, key, "real-issuer"},
		{"malformed", "not.a.token", key, "real-issuer"},
		{"missing jti", noSessionString, key, "real-issuer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.iss); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken("Bearer abc.def.ghi")
	if err != nil || tok != "abc.def.ghi" {
		t.Fatalf("expected token, got %q %v", tok, err)
	}

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		if _, err := ParseBearerToken(header); err == nil {
			t.Errorf("expected error for %q", header)
		}
	}
}
