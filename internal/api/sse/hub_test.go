package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordmove/internal/model"
	"github.com/mcoot/wordmove/internal/testutil"
)

func TestFormatEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    string
		data     string
		expected string
	}{
		{
			name:     "single line data",
			event:    "move-accepted",
			data:     `{"score":9}`,
			expected: "event: move-accepted\ndata: {\"score\":9}\n\n",
		},
		{
			name:     "multi-line data",
			event:    "test",
			data:     "line1\nline2",
			expected: "event: test\ndata: line1\ndata: line2\n\n",
		},
		{
			name:     "empty data",
			event:    "ping",
			data:     "",
			expected: "event: ping\ndata: \n\n",
		},
		{
			name:     "carriage returns and trailing newline",
			event:    "test",
			data:     "line1\r\nline2\n",
			expected: "event: test\ndata: line1\ndata: line2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(formatEvent(tt.event, []byte(tt.data))))
		})
	}
}

func receive(t *testing.T, sub *Subscriber) string {
	t.Helper()
	select {
	case msg, ok := <-sub.Messages():
		require.True(t, ok, "subscriber channel closed")
		return string(msg)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return ""
	}
}

func requireClosed(t *testing.T, sub *Subscriber) {
	t.Helper()
	select {
	case _, ok := <-sub.Messages():
		require.False(t, ok, "expected subscriber channel to be closed")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for subscriber to be closed")
	}
}

func newRunningHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(model.GameID("game-1"), testutil.NopLogger())
	go hub.Run()
	t.Cleanup(hub.Close)
	return hub
}

func TestHubPublishesToAllSubscribers(t *testing.T) {
	hub := newRunningHub(t)
	first := NewSubscriber("a")
	second := NewSubscriber("b")
	require.True(t, hub.Register(first))
	require.True(t, hub.Register(second))

	hub.Publish("move-accepted", []byte(`{}`))

	assert.Equal(t, "event: move-accepted\ndata: {}\n\n", receive(t, first))
	assert.Equal(t, "event: move-accepted\ndata: {}\n\n", receive(t, second))
}

func TestHubUnregisterClosesSubscriber(t *testing.T) {
	hub := newRunningHub(t)
	sub := NewSubscriber("a")
	require.True(t, hub.Register(sub))
	assert.Eventually(t, func() bool { return hub.SubscriberCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Unregister(sub)

	requireClosed(t, sub)
	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestHubCloseDeliversPendingEvents(t *testing.T) {
	hub := newRunningHub(t)
	sub := NewSubscriber("a")
	require.True(t, hub.Register(sub))

	hub.Publish("game-deleted", []byte(`{"id":"game-1"}`))
	hub.Close()

	assert.Contains(t, receive(t, sub), "event: game-deleted")
	requireClosed(t, sub)
}

func TestHubClosedRejectsRegistration(t *testing.T) {
	hub := newRunningHub(t)
	hub.Close()

	assert.False(t, hub.Register(NewSubscriber("late")))
	// Must not block
	hub.Unregister(NewSubscriber("late"))
	hub.Publish("ignored", nil)
	hub.Close()
}

func hubFor(m *HubManager, gameID model.GameID) *Hub {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hubLocked(gameID)
}

func TestHubManager(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())
	t.Cleanup(m.Close)

	assert.Nil(t, m.Lookup("game-1"))

	hub := hubFor(m, "game-1")
	assert.Same(t, hub, hubFor(m, "game-1"))
	assert.Same(t, hub, m.Lookup("game-1"))

	m.Remove("game-1")
	assert.Nil(t, m.Lookup("game-1"))
	assert.False(t, hub.Register(NewSubscriber("late")))
}

func TestHubManagerCleanupEmpty(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())
	t.Cleanup(m.Close)

	busy := hubFor(m, "busy")
	hubFor(m, "idle")
	require.True(t, busy.Register(NewSubscriber("a")))
	require.Eventually(t, func() bool { return busy.SubscriberCount() == 1 }, time.Second, 10*time.Millisecond)

	assert.Equal(t, 1, m.CleanupEmpty())
	assert.NotNil(t, m.Lookup("busy"))
	assert.Nil(t, m.Lookup("idle"))
}

func TestHubRegisterCountsImmediately(t *testing.T) {
	hub := newRunningHub(t)
	require.True(t, hub.Register(NewSubscriber("a")))
	assert.Equal(t, 1, hub.SubscriberCount())
}

func TestHubManagerSubscribeSurvivesCleanup(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())
	t.Cleanup(m.Close)

	sub := NewSubscriber("a")
	hub := m.Subscribe("game-1", sub)

	assert.Equal(t, 0, m.CleanupEmpty())
	assert.Same(t, hub, m.Lookup("game-1"))

	hub.Publish("move-accepted", []byte(`{}`))
	assert.Equal(t, "event: move-accepted\ndata: {}\n\n", receive(t, sub))
}

func TestHubManagerSubscribeReplacesClosedHub(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())
	t.Cleanup(m.Close)

	stale := hubFor(m, "game-1")
	stale.Close()

	sub := NewSubscriber("a")
	hub := m.Subscribe("game-1", sub)

	assert.NotSame(t, stale, hub)
	assert.Same(t, hub, m.Lookup("game-1"))
	assert.Equal(t, 1, hub.SubscriberCount())
}

func TestHubManagerSubscribeRacingCleanup(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())
	t.Cleanup(m.Close)

	stop := make(chan struct{})
	cleaned := make(chan struct{})
	go func() {
		defer close(cleaned)
		for {
			select {
			case <-stop:
				return
			default:
				m.CleanupEmpty()
			}
		}
	}()

	subs := make([]*Subscriber, 50)
	for i := range subs {
		subs[i] = NewSubscriber("a")
		m.Subscribe("game-1", subs[i])
	}
	close(stop)
	<-cleaned

	hub := m.Lookup("game-1")
	require.NotNil(t, hub)
	assert.Equal(t, len(subs), hub.SubscriberCount())
}
