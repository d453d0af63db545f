package scope_test

import (
	"testing"
	"time"

	"tasktrack/pkg/scope"
)

func TestManager(t *testing.T) {
	t.Run("Issue And Verify Round Trip", func(t *testing.T) {
		m := scope.NewManager("test-secret", 30*time.Minute)

		token, err := m.Issue(42)
		if err != nil {
			t.Fatalf("unexpected issue error: %v", err)
		}

		userID, err := m.Verify(token)
		if err != nil {
			t.Fatalf("unexpected verify error: %v", err)
		}
		if userID != 42 {
			t.Errorf("expected user 42, got %d", userID)
		}
	})

	t.Run("Wrong Secret Rejected", func(t *testing.T) {
		issuer := scope.NewManager("secret-a", 30*time.Minute)
		verifier := scope.NewManager("secret-b", 30*time.Minute)

		token, _ := issuer.Issue(1)
		if _, err := verifier.Verify(token); err == nil {
			t.Errorf("expected verification failure with wrong secret")
		}
	})

	t.Run("Expired Token Rejected", func(t *testing.T) {
		m := scope.NewManager("test-secret", -time.Minute)

		token, _ := m.Issue(7)
		if _, err := m.Verify(token); err == nil {
			t.Errorf("expected verification failure for expired token")
		}
	})

	t.Run("Garbage Token Rejected", func(t *testing.T) {
		m := scope.NewManager("test-secret", 30*time.Minute)
		if _, err := m.Verify("not-a-token"); err == nil {
			t.Errorf("expected verification failure for garbage input")
		}
	})
}
