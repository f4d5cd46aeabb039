package toast

import (
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"churchadmin/config"
	"churchadmin/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualTimer struct {
	clock   *manualClock
	when    time.Time
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	active := !t.stopped && !t.fired
	t.stopped = true

	return active
}

type manualClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*manualTimer
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2026, 1, 4, 9, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &manualTimer{clock: c, when: c.now.Add(d), seq: c.seq, f: f}
	c.timers = append(c.timers, t)

	return t
}

// Advance moves time forward, firing due timers in order outside the lock.
func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var due []*manualTimer
		for _, t := range c.timers {
			if !t.stopped && !t.fired && !t.when.After(target) {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			c.now = target
			c.mu.Unlock()

			return
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].when.Equal(due[j].when) {
				return due[i].seq < due[j].seq
			}

			return due[i].when.Before(due[j].when)
		})
		next := due[0]
		next.fired = true
		c.now = next.when
		c.mu.Unlock()

		next.f()
	}
}

type notifierFixtures struct {
	clock    *manualClock
	notifier *Notifier
}

func setupNotifierTest(maxQueue int) *notifierFixtures {
	clock := newManualClock()
	cfg := &config.ToastConfig{
		VisibleFor: 3000 * time.Millisecond,
		ExitDelay:  300 * time.Millisecond,
		MaxQueue:   maxQueue,
	}

	return &notifierFixtures{
		clock:    clock,
		notifier: New(cfg, clock, slog.New(slog.DiscardHandler)),
	}
}

func drain(ch <-chan service.ToastEvent) []service.ToastEvent {
	var events []service.ToastEvent
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return events
			}
			events = append(events, ev)
		default:
			return events
		}
	}
}

func TestNotifier_Lifecycle(t *testing.T) {
	tf := setupNotifierTest(50)
	events, cancel := tf.notifier.Subscribe()
	defer cancel()

	shown := tf.notifier.Show("Distrito guardado", service.ToastSuccess)
	assert.True(t, shown.Visible)
	assert.Equal(t, int64(1), shown.ID)

	tf.clock.Advance(2999 * time.Millisecond)
	require.Len(t, tf.notifier.List(), 1)
	assert.True(t, tf.notifier.List()[0].Visible)

	tf.clock.Advance(time.Millisecond)
	require.Len(t, tf.notifier.List(), 1)
	assert.False(t, tf.notifier.List()[0].Visible)

	tf.clock.Advance(299 * time.Millisecond)
	assert.Len(t, tf.notifier.List(), 1)

	tf.clock.Advance(time.Millisecond)
	assert.Empty(t, tf.notifier.List())

	got := drain(events)
	require.Len(t, got, 3)
	assert.Equal(t, service.ToastShown, got[0].Type)
	assert.Equal(t, service.ToastHidden, got[1].Type)
	assert.Equal(t, service.ToastRemoved, got[2].Type)
}

func TestNotifier_UnknownKindFallsBackToInfo(t *testing.T) {
	tf := setupNotifierTest(50)

	toast := tf.notifier.Show("hola", service.ToastKind("fancy"))
	assert.Equal(t, service.ToastInfo, toast.Kind)
}

func TestNotifier_DismissCancelsAutoHide(t *testing.T) {
	tf := setupNotifierTest(50)
	toast := tf.notifier.Show("Error al guardar", service.ToastError)

	tf.clock.Advance(time.Second)
	assert.True(t, tf.notifier.Dismiss(toast.ID))
	assert.False(t, tf.notifier.Dismiss(toast.ID), "already hidden")
	assert.False(t, tf.notifier.Dismiss(999))

	tf.clock.Advance(300 * time.Millisecond)
	assert.Empty(t, tf.notifier.List())

	// The original auto-hide deadline passes without side effects.
	tf.clock.Advance(5 * time.Second)
	assert.Empty(t, tf.notifier.List())
}

func TestNotifier_IndependentTimersKeepOrder(t *testing.T) {
	tf := setupNotifierTest(50)

	first := tf.notifier.Show("uno", service.ToastInfo)
	tf.clock.Advance(time.Second)
	second := tf.notifier.Show("dos", service.ToastInfo)
	third := tf.notifier.Show("dos", service.ToastInfo)

	list := tf.notifier.List()
	require.Len(t, list, 3)
	assert.Equal(t, []int64{first.ID, second.ID, third.ID}, []int64{list[0].ID, list[1].ID, list[2].ID})

	// first is removed at 3.3s, the others at 4.3s
	tf.clock.Advance(2300 * time.Millisecond)
	list = tf.notifier.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.True(t, list[0].Visible)

	tf.clock.Advance(time.Second)
	assert.Empty(t, tf.notifier.List())
}

func TestNotifier_EvictsOldestWhenFull(t *testing.T) {
	tf := setupNotifierTest(2)
	events, cancel := tf.notifier.Subscribe()
	defer cancel()

	first := tf.notifier.Show("a", service.ToastInfo)
	tf.notifier.Show("b", service.ToastInfo)
	tf.notifier.Show("c", service.ToastInfo)

	list := tf.notifier.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].Message)
	assert.Equal(t, "c", list[1].Message)

	got := drain(events)
	require.Len(t, got, 4)
	assert.Equal(t, service.ToastRemoved, got[2].Type)
	assert.Equal(t, first.ID, got[2].Toast.ID)

	// The evicted toast's timers no longer fire.
	tf.clock.Advance(10 * time.Second)
	assert.Empty(t, tf.notifier.List())
}

func TestNotifier_CloseStopsTimersAndSubscribers(t *testing.T) {
	tf := setupNotifierTest(50)
	events, cancel := tf.notifier.Subscribe()
	defer cancel()

	tf.notifier.Show("a", service.ToastWarning)
	tf.notifier.Close()
	tf.notifier.Close()

	got := drain(events)
	assert.Len(t, got, 1)
	_, open := <-events
	assert.False(t, open)

	tf.clock.Advance(10 * time.Second)
	assert.Len(t, tf.notifier.List(), 1)

	late, lateCancel := tf.notifier.Subscribe()
	lateCancel()
	_, open = <-late
	assert.False(t, open)
}

func TestNotifier_CancelSubscription(t *testing.T) {
	tf := setupNotifierTest(50)
	events, cancel := tf.notifier.Subscribe()
	cancel()
	cancel()

	tf.notifier.Show("a", service.ToastInfo)
	_, open := <-events
	assert.False(t, open)
}
