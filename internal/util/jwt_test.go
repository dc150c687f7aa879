package util

import (
	"testing"
	"time"
)

// TestGenerateAndParseToken 签发后能解析出同样的用户 ID 和签发者
func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("test-secret", "personal-budget-tracker", 42, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Issuer != "personal-budget-tracker" {
		t.Errorf("Issuer = %q, want personal-budget-tracker", claims.Issuer)
	}
}

// TestParseToken_WrongSecret 密钥不对时解析失败
func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("test-secret", "personal-budget-tracker", 1, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken("another-secret", token); err == nil {
		t.Error("ParseToken 未返回错误")
	}
}

// TestParseToken_Garbage 非 JWT 字符串解析失败
func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("test-secret", "not.a.token"); err == nil {
		t.Error("ParseToken 未返回错误")
	}
}
