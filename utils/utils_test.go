package utils

import (
	"strings"
	"testing"

	"github.com/Jordo960/VibePulse/models"
)

func TestNewIDFormat(t *testing.T) {
	id := NewID()
	if len(id) != 26 {
		t.Fatalf("expected 26-character id, got %d", len(id))
	}
	for _, r := range id {
		if (r < 'a' || r > 'z') && (r < '2' || r > '7') {
			t.Fatalf("unexpected character %q in id", r)
		}
	}
	if NewID() == id {
		t.Fatal("expected distinct ids")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateJWT(secret, "user-123", "alex.j@example.com")
	if err != nil {
		t.Fatalf("generate jwt: %v", err)
	}
	userID, email, err := ParseJWT(secret, token)
	if err != nil {
		t.Fatalf("parse jwt: %v", err)
	}
	if userID != "user-123" || email != "alex.j@example.com" {
		t.Fatalf("unexpected claims %q %q", userID, email)
	}
	if _, _, err := ParseJWT([]byte("other"), token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	if _, err := GenerateJWT(nil, "u", "e"); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestValidateStructGoals(t *testing.T) {
	goals := models.DefaultGoals
	if err := ValidateStruct(goals); err != nil {
		t.Fatalf("expected default goals to validate, got %v", err)
	}
	goals.Calories = 0
	err := ValidateStruct(goals)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "calories must be greater than 0") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestSprintfGroupsThousands(t *testing.T) {
	if got := Sprintf("%d kcal", 2140); got != "2,140 kcal" {
		t.Fatalf("expected grouped number, got %q", got)
	}
}
