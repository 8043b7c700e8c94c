// internal/telemetry/telemetry.go
package telemetry

import (
	"sync"
	"time"

	"go-path-defense/internal/event"
	"go-path-defense/internal/logger"
)

// Event kinds.
const (
	KindKill   = "kill"
	KindLeak   = "leak"
	KindDamage = "damage"
	KindWave   = "wave"
	KindFrame  = "frame"
)

type Event struct {
	Kind string
	I    int
	F    float64
	At   time.Time
}

// Batch: агрегат событий за один интервал.
type Batch struct {
	Kills  int
	Leaks  int
	Dmg    float64
	Waves  int
	Frames int
	Ticks  int
}

// Sink собирает события в отдельной горутине и раз в interval отдаёт
// накопленный Batch в flush. Симуляция никогда не ждёт Sink: при полном
// буфере событие теряется.
type Sink struct {
	In      chan Event
	quit    chan struct{}
	done    chan struct{}
	once    sync.Once
	mu      sync.Mutex
	dropped int
}

// NewSink logs a summary line every interval.
func NewSink(interval time.Duration) *Sink {
	return newSink(interval, func(b Batch) {
		if b == (Batch{}) {
			return
		}
		logger.Logger.Info("telemetry",
			"kills", b.Kills,
			"leaks", b.Leaks,
			"dmg", int(b.Dmg),
			"waves", b.Waves,
			"frames", b.Frames,
			"ticks", b.Ticks)
	})
}

func newSink(interval time.Duration, flush func(Batch)) *Sink {
	s := &Sink{
		In:   make(chan Event, 256),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go s.loop(interval, flush)
	return s
}

func (s *Sink) loop(interval time.Duration, flush func(Batch)) {
	defer close(s.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var batch Batch
	emit := func() {
		if flush != nil {
			flush(batch)
		}
		batch = Batch{}
	}
	apply := func(ev Event) {
		switch ev.Kind {
		case KindKill:
			batch.Kills += ev.I
		case KindLeak:
			batch.Leaks += ev.I
		case KindDamage:
			batch.Dmg += ev.F
		case KindWave:
			batch.Waves++
		case KindFrame:
			batch.Frames++
			batch.Ticks += ev.I
		}
	}

	for {
		select {
		case <-s.quit:
			// дочитываем то, что уже в буфере
			for {
				select {
				case ev := <-s.In:
					apply(ev)
				default:
					emit()
					return
				}
			}

		case ev := <-s.In:
			apply(ev)

		case <-ticker.C:
			emit()
		}
	}
}

// Send enqueues ev without blocking.
func (s *Sink) Send(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	select {
	case s.In <- ev:
	default:
		s.mu.Lock()
		s.dropped++
		s.mu.Unlock()
	}
}

// Frame records one rendered frame that ran ticks simulation ticks.
func (s *Sink) Frame(ticks int) {
	s.Send(Event{Kind: KindFrame, I: ticks})
}

// Dropped returns how many events were lost to a full buffer.
func (s *Sink) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// Close flushes the last batch and stops the loop. Safe to call twice.
func (s *Sink) Close() {
	s.once.Do(func() {
		close(s.quit)
	})
	<-s.done
}

// Listener превращает игровые события в события телеметрии.
type Listener struct {
	sink *Sink
}

func NewListener(sink *Sink) *Listener {
	return &Listener{sink: sink}
}

// EventTypes lists the game events the listener understands.
func (l *Listener) EventTypes() []event.EventType {
	return []event.EventType{event.EnemyKilled, event.EnemyReachedBase, event.DamageDealt, event.WaveStarted}
}

func (l *Listener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		l.sink.Send(Event{Kind: KindKill, I: 1})
	case event.EnemyReachedBase:
		l.sink.Send(Event{Kind: KindLeak, I: 1})
	case event.DamageDealt:
		if d, ok := e.Data.(event.DamageData); ok {
			l.sink.Send(Event{Kind: KindDamage, F: d.Amount})
		}
	case event.WaveStarted:
		l.sink.Send(Event{Kind: KindWave, I: 1})
	}
}
