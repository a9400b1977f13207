package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// typingQuietWindow is how long a sender may stay silent before the
	// heartbeat is cleared.
	typingQuietWindow = 3 * time.Second
	// typingLivenessThreshold is the reader-side age limit: heartbeats older
	// than this never render as "typing". Slightly wider than the quiet
	// window so a missed delete self-heals instead of sticking forever.
	typingLivenessThreshold = 4 * time.Second
	// typingKeyTTL lets Redis age out heartbeats from crashed clients.
	typingKeyTTL = 10 * time.Second
)

// PresenceService keeps the typing heartbeats in Redis. Best effort only:
// nothing correctness-relevant may ever depend on it.
type PresenceService struct {
	RDB *redis.Client

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func typingKey(chatID int, role string) string {
	return fmt.Sprintf("typing:%d:%s", chatID, role)
}

// SetTyping upserts the sender's heartbeat with the current timestamp and
// re-arms the quiet-window timer. Called on each keystroke burst.
func (s *PresenceService) SetTyping(ctx context.Context, chatID int, role string) error {
	now := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if err := s.RDB.Set(ctx, typingKey(chatID, role), now, typingKeyTTL).Err(); err != nil {
		return err
	}
	s.armQuietTimer(chatID, role)
	return nil
}

// ClearTyping removes the heartbeat and cancels the pending timer.
func (s *PresenceService) ClearTyping(ctx context.Context, chatID int, role string) error {
	s.mu.Lock()
	key := typingKey(chatID, role)
	if t, ok := s.timers[key]; ok {
		t.Stop()
		delete(s.timers, key)
	}
	s.mu.Unlock()

	return s.RDB.Del(ctx, key).Err()
}

// IsTyping reports whether the peer's heartbeat is fresh enough to show the
// indicator.
func (s *PresenceService) IsTyping(ctx context.Context, chatID int, role string) (bool, error) {
	val, err := s.RDB.Get(ctx, typingKey(chatID, role)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	millis, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, nil
	}
	return typingFresh(time.UnixMilli(millis), time.Now()), nil
}

// armQuietTimer schedules the heartbeat delete after the quiet window,
// replacing any previous timer for the same key.
func (s *PresenceService) armQuietTimer(chatID int, role string) {
	key := typingKey(chatID, role)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timers == nil {
		s.timers = make(map[string]*time.Timer)
	}
	if t, ok := s.timers[key]; ok {
		t.Stop()
	}
	s.timers[key] = time.AfterFunc(typingQuietWindow, func() {
		s.mu.Lock()
		delete(s.timers, key)
		s.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.RDB.Del(ctx, key).Err()
	})
}

func typingFresh(last, now time.Time) bool {
	return now.Sub(last) < typingLivenessThreshold
}
