package auth

import (
	"testing"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := NewService("test-secret")
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestAuthenticate(t *testing.T) {
	s := newTestService(t)

	user, err := s.Authenticate("admin", "adminpassword")
	if err != nil {
		t.Fatal(err)
	}
	if user.Role != "admin" {
		t.Fatalf("role = %q, want admin", user.Role)
	}

	if _, err := s.Authenticate("admin", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
	if _, err := s.Authenticate("nobody", "x"); err != ErrInvalidCredentials {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	s := newTestService(t)

	token, err := s.CreateAccessToken(User{Username: "user", Role: "user"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.VerifyToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if got.Username != "user" || got.Role != "user" {
		t.Fatalf("got %+v", got)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	s := newTestService(t)

	for _, tok := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		if _, err := s.VerifyToken(tok); err == nil {
			t.Fatalf("token %q accepted", tok)
		}
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	s := newTestService(t)
	other, err := NewService("different-secret")
	if err != nil {
		t.Fatal(err)
	}

	token, err := other.CreateAccessToken(User{Username: "user", Role: "user"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.VerifyToken(token); err == nil {
		t.Fatal("token signed with another secret accepted")
	}
}
