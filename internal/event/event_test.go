package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchReachesOnlySubscribers(t *testing.T) {
	d := NewDispatcher()
	killed := &recorder{}
	waves := &recorder{}
	d.Subscribe(EnemyKilled, killed)
	d.SubscribeAll(waves, WaveStarted, WaveEnded)

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyData{ID: 7, Reward: 12}})
	d.Dispatch(Event{Type: WaveStarted, Data: WaveData{Number: 1}})
	d.Dispatch(Event{Type: WaveEnded, Data: WaveData{Number: 1}})
	d.Dispatch(Event{Type: GameOver})

	if len(killed.got) != 1 {
		t.Fatalf("killed listener got %d events, want 1", len(killed.got))
	}
	if data, ok := killed.got[0].Data.(EnemyData); !ok || data.Reward != 12 {
		t.Fatalf("unexpected payload %#v", killed.got[0].Data)
	}
	if len(waves.got) != 2 {
		t.Fatalf("wave listener got %d events, want 2", len(waves.got))
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	calls := 0
	d.Subscribe(TowerPlaced, ListenerFunc(func(Event) { calls++ }))
	d.Subscribe(TowerPlaced, r)
	d.Unsubscribe(TowerPlaced, r)
	d.Dispatch(Event{Type: TowerPlaced})

	if len(r.got) != 0 {
		t.Fatal("unsubscribed listener still called")
	}
	if calls != 1 {
		t.Fatalf("func listener called %d times, want 1", calls)
	}
}

func TestDispatchIsSynchronousAndOrdered(t *testing.T) {
	d := NewDispatcher()
	var order []int
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, 1) }))
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, 2) }))
	d.Dispatch(Event{Type: EnemyKilled})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("listeners ran as %v, want [1 2]", order)
	}
}
