package ratelimit

import (
	"testing"
	"time"
)

func TestCheckCountsDown(t *testing.T) {
	l := NewLimiter(10, time.Hour)

	for i := 0; i < 10; i++ {
		ok, remaining := l.Check("user-1")
		if !ok {
			t.Fatalf("call %d: denied, want allowed", i+1)
		}
		if want := 10 - (i + 1); remaining != want {
			t.Errorf("call %d: remaining = %d, want %d", i+1, remaining, want)
		}
	}

	ok, remaining := l.Check("user-1")
	if ok {
		t.Error("11th call: allowed, want denied")
	}
	if remaining != 0 {
		t.Errorf("11th call: remaining = %d, want 0", remaining)
	}
}

func TestCheckWindowExpiryResets(t *testing.T) {
	current := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	l := NewLimiter(10, time.Hour)
	l.now = func() time.Time { return current }

	for i := 0; i < 10; i++ {
		l.Check("user-1")
	}
	if ok, _ := l.Check("user-1"); ok {
		t.Fatal("expected denial at limit")
	}

	current = current.Add(time.Hour + time.Second)
	ok, remaining := l.Check("user-1")
	if !ok {
		t.Error("call after window expiry: denied, want allowed")
	}
	if remaining != 9 {
		t.Errorf("call after window expiry: remaining = %d, want 9", remaining)
	}
}

func TestCheckUsersAreIndependent(t *testing.T) {
	l := NewLimiter(2, time.Hour)

	l.Check("user-1")
	l.Check("user-1")
	if ok, _ := l.Check("user-1"); ok {
		t.Error("user-1 should be limited")
	}

	ok, remaining := l.Check("user-2")
	if !ok || remaining != 1 {
		t.Errorf("user-2 first call = (%v, %d), want (true, 1)", ok, remaining)
	}
}
