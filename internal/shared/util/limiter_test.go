package util

import (
	"testing"
	"time"
)

func TestLimiter_Burst(t *testing.T) {
	// 10 tokens per second, burst of 2
	l := NewLimiter(10, 2)

	if d := l.Delay(); d != 0 {
		t.Errorf("expected first token immediately, got %v", d)
	}
	if d := l.Delay(); d != 0 {
		t.Errorf("expected second token immediately (burst), got %v", d)
	}
	d := l.Delay()
	if d <= 0 || d > 150*time.Millisecond {
		t.Errorf("expected third token to wait about 100ms, got %v", d)
	}
}

func TestLimiter_Unlimited(t *testing.T) {
	l := NewLimiter(0, 0)
	for i := 0; i < 100; i++ {
		if d := l.Delay(); d != 0 {
			t.Fatalf("expected no delay for event %d, got %v", i, d)
		}
	}
}

func TestLimiter_Refill(t *testing.T) {
	l := NewLimiter(20, 1)
	l.Delay()
	time.Sleep(100 * time.Millisecond)
	if d := l.Delay(); d != 0 {
		t.Fatalf("expected token to be refilled, got %v", d)
	}
}
