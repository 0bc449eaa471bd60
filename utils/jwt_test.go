package utils

import "testing"

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISS", "wedding-gift-list")

	tokenStr, err := GenerateJWT(42, "admin@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	_, claims, err := ValidateAccessToken(tokenStr)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}

	if id, _ := claims["id"].(float64); int64(id) != 42 {
		t.Errorf("id claim = %v, want 42", claims["id"])
	}
	if email, _ := claims["email"].(string); email != "admin@example.com" {
		t.Errorf("email claim = %v", claims["email"])
	}
	if role, _ := claims["role"].(string); role != "admin" {
		t.Errorf("role claim = %v", claims["role"])
	}
}

func TestValidateAccessTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISS", "")

	tokenStr, err := GenerateJWT(1, "admin@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	t.Setenv("JWT_SECRET", "another-secret")
	if _, _, err := ValidateAccessToken(tokenStr); err == nil {
		t.Fatal("expected validation failure with wrong secret")
	}
}

func TestValidateAccessTokenRejectsWrongIssuer(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISS", "issuer-a")

	tokenStr, err := GenerateJWT(1, "admin@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	t.Setenv("JWT_ISS", "issuer-b")
	if _, _, err := ValidateAccessToken(tokenStr); err == nil {
		t.Fatal("expected validation failure for issuer mismatch")
	}
}

func TestValidateAccessTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	if _, _, err := ValidateAccessToken("not-a-token"); err == nil {
		t.Fatal("expected validation failure for malformed token")
	}
}
