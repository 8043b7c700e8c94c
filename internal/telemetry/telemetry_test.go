package telemetry

import (
	"math"
	"testing"
	"time"

	"go-path-defense/internal/event"
)

func TestSinkBatchesEvents(t *testing.T) {
	out := make(chan Batch, 8)
	s := newSink(10*time.Millisecond, func(b Batch) {
		select {
		case out <- b:
		default:
		}
	})
	defer s.Close()

	s.Send(Event{Kind: KindKill, I: 2})
	s.Send(Event{Kind: KindDamage, F: 3.5})
	s.Frame(2)
	s.Frame(1)

	deadline := time.After(700 * time.Millisecond)
	for {
		select {
		case b := <-out:
			if b == (Batch{}) {
				continue
			}
			if b.Kills != 2 {
				t.Fatalf("kills mismatch: got %d want %d", b.Kills, 2)
			}
			if math.Abs(b.Dmg-3.5) > 1e-9 {
				t.Fatalf("damage mismatch: got %.6f want %.6f", b.Dmg, 3.5)
			}
			if b.Frames != 2 || b.Ticks != 3 {
				t.Fatalf("frames=%d ticks=%d, want 2 and 3", b.Frames, b.Ticks)
			}
			return

		case <-deadline:
			t.Fatal("timed out waiting for telemetry batch")
		}
	}
}

func TestCloseFlushesAndIsIdempotent(t *testing.T) {
	out := make(chan Batch, 8)
	s := newSink(time.Hour, func(b Batch) {
		out <- b
	})
	s.Send(Event{Kind: KindLeak, I: 1})

	done := make(chan struct{})
	go func() {
		s.Close()
		s.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("sink close blocked")
	}
	select {
	case b := <-out:
		if b.Leaks != 1 {
			t.Fatalf("final batch = %+v", b)
		}
	default:
		t.Fatal("Close did not flush the last batch")
	}
}

func TestListenerTranslatesGameEvents(t *testing.T) {
	out := make(chan Batch, 1)
	s := newSink(time.Hour, func(b Batch) {
		out <- b
	})
	l := NewListener(s)
	d := event.NewDispatcher()
	d.SubscribeAll(l, l.EventTypes()...)

	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{ID: 1, Reward: 12}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{ID: 2, Reward: 12}})
	d.Dispatch(event.Event{Type: event.DamageDealt, Data: event.DamageData{Target: 1, Amount: 20}})
	d.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: 1}})
	d.Dispatch(event.Event{Type: event.TowerPlaced})
	s.Close()

	b := <-out
	if b.Kills != 2 || b.Dmg != 20 || b.Waves != 1 || b.Leaks != 0 {
		t.Fatalf("batch = %+v", b)
	}
}
