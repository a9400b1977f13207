package services

import (
	"testing"
	"time"
)

func TestTypingFresh(t *testing.T) {
	now := time.Now()

	if !typingFresh(now.Add(-time.Second), now) {
		t.Fatal("heartbeat 1s old should read as typing")
	}
	if !typingFresh(now.Add(-typingLivenessThreshold+time.Millisecond), now) {
		t.Fatal("heartbeat just inside the threshold should read as typing")
	}
	if typingFresh(now.Add(-typingLivenessThreshold), now) {
		t.Fatal("heartbeat at the threshold should not read as typing")
	}
	if typingFresh(now.Add(-time.Minute), now) {
		t.Fatal("stale heartbeat should not read as typing")
	}
}

func TestTypingKey(t *testing.T) {
	if got := typingKey(42, "customer"); got != "typing:42:customer" {
		t.Fatalf("typingKey = %q", got)
	}
}
