package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"kodevidecamp/internal/catalog"
	"kodevidecamp/internal/models"
	"kodevidecamp/internal/seed"
	"kodevidecamp/internal/store"
)

type fakeConn struct {
	msgs     chan []byte
	writeErr error

	mu     sync.Mutex
	closed bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{msgs: make(chan []byte, 8)}
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.msgs <- data
	return nil
}

func (f *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func startHub(t *testing.T, onCount func(int)) (*Hub, context.CancelFunc, chan struct{}) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil, onCount)
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	return hub, cancel, stopped
}

func receive(t *testing.T, c *fakeConn) Event {
	t.Helper()
	select {
	case raw := <-c.msgs:
		var ev Event
		require.NoError(t, json.Unmarshal(raw, &ev))
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
		return Event{}
	}
}

func TestHubBroadcastsToAllClients(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub, cancel, stopped := startHub(t, nil)
	a, b := newFakeConn(), newFakeConn()
	assert.NotEmpty(t, hub.Register(a))
	hub.Register(b)

	hub.Publish("faq.changed")

	assert.Equal(t, "faq.changed", receive(t, a).Type)
	assert.Equal(t, "faq.changed", receive(t, b).Type)

	cancel()
	<-stopped
	assert.True(t, a.isClosed())
	assert.True(t, b.isClosed())
}

func TestHubUnregister(t *testing.T) {
	defer goleak.VerifyNone(t)

	var mu sync.Mutex
	var counts []int
	hub, cancel, stopped := startHub(t, func(n int) {
		mu.Lock()
		counts = append(counts, n)
		mu.Unlock()
	})

	a, b := newFakeConn(), newFakeConn()
	hub.Register(a)
	hub.Register(b)
	hub.Unregister(a)

	hub.Publish("notice.changed")
	assert.Equal(t, "notice.changed", receive(t, b).Type)
	assert.True(t, a.isClosed())
	assert.Empty(t, a.msgs)

	cancel()
	<-stopped

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2, 1, 0}, counts)
}

func TestHubDropsFailingClient(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub, cancel, stopped := startHub(t, nil)
	bad := newFakeConn()
	bad.writeErr = errors.New("broken pipe")
	good := newFakeConn()
	hub.Register(bad)
	hub.Register(good)

	hub.Publish("faq.changed")
	receive(t, good)

	assert.Eventually(t, bad.isClosed, 2*time.Second, 10*time.Millisecond)

	hub.Publish("faq.changed")
	receive(t, good)

	cancel()
	<-stopped
}

func TestHubCallsAfterStopDoNotBlock(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub, cancel, stopped := startHub(t, nil)
	cancel()
	<-stopped

	c := newFakeConn()
	hub.Register(c)
	hub.Unregister(c)
	hub.Publish("faq.changed")
	assert.True(t, c.isClosed())
}

// stuckConn never finishes a write until it is closed, like a peer that
// stopped reading and ignores deadlines.
type stuckConn struct {
	once   sync.Once
	closed chan struct{}
}

func newStuckConn() *stuckConn {
	return &stuckConn{closed: make(chan struct{})}
}

func (s *stuckConn) WriteMessage(int, []byte) error {
	<-s.closed
	return errors.New("use of closed connection")
}

func (s *stuckConn) SetWriteDeadline(time.Time) error { return nil }

func (s *stuckConn) Close() error {
	s.once.Do(func() { close(s.closed) })
	return nil
}

func (s *stuckConn) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

func TestHubStuckClientDoesNotBlockWrites(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub, cancel, stopped := startHub(t, nil)
	stuck := newStuckConn()
	hub.Register(stuck)

	doc := store.NewDocument[models.FAQ](store.NewMemory(), "kodevidecamp_faqs", seed.Builtin().FAQs)
	faqs := catalog.NewFAQService(doc, catalog.WithPublisher(hub))

	done := make(chan error, 1)
	go func() {
		for i := 0; i < 40; i++ {
			if _, _, err := faqs.MarkFeedback(context.Background(), 1, true); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("feedback writes stalled behind a stuck websocket client")
	}

	faq, err := faqs.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, faq.Helpful.Yes, 40)

	// the stuck client is dropped once its queue overflows
	assert.Eventually(t, func() bool {
		hub.Publish(catalog.TopicFAQChanged)
		return stuck.isClosed()
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	<-stopped
}

func TestPublishDoesNotBlockWhenQueueIsFull(t *testing.T) {
	hub := NewHub(nil, nil)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish("notice.changed")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked without a running hub")
	}
}
