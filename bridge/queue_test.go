package bridge

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

// startQueue runs a consumer for q and tears it down with the test.
func startQueue(t *testing.T) *Queue {
	t.Helper()
	q := NewQueue()
	stopped := make(chan struct{})
	go func() {
		q.Run(context.Background())
		close(stopped)
	}()
	t.Cleanup(func() {
		q.Close()
		<-stopped
	})
	return q
}

func TestSubmitAndWait(t *testing.T) {
	q := startQueue(t)

	got, err := q.Submit(func() (any, error) { return 42, nil }).Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait error: %v", err)
	}
	if got != 42 {
		t.Errorf("Wait = %v, want 42", got)
	}

	boom := errors.New("boom")
	if _, err := q.Submit(func() (any, error) { return nil, boom }).Wait(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Wait error = %v, want boom", err)
	}
}

func TestFIFOOrder(t *testing.T) {
	q := startQueue(t)

	const n = 50
	var order []int
	results := make([]*Result, n)
	for i := range results {
		results[i] = q.Submit(func() (any, error) {
			order = append(order, i)
			return nil, nil
		})
	}
	for _, r := range results {
		if _, err := r.Wait(context.Background()); err != nil {
			t.Fatalf("Wait error: %v", err)
		}
	}

	if len(order) != n {
		t.Fatalf("executed %d tasks, want %d", len(order), n)
	}
	for i, got := range order {
		if got != i {
			t.Fatalf("order[%d] = %d, want %d", i, got, i)
		}
	}
}

func TestManyProducers(t *testing.T) {
	q := startQueue(t)

	const producers = 8
	const perProducer = 25

	// Tasks run one at a time on the consumer, so the map needs no
	// lock; the handles order the final read.
	seen := make(map[int]int)
	results := make(chan *Result, producers*perProducer)

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				id := p*perProducer + i
				results <- q.Submit(func() (any, error) {
					seen[id]++
					return nil, nil
				})
			}
		}(p)
	}
	wg.Wait()
	close(results)

	for r := range results {
		if _, err := r.Wait(context.Background()); err != nil {
			t.Fatalf("Wait error: %v", err)
		}
	}

	if len(seen) != producers*perProducer {
		t.Errorf("executed %d distinct tasks, want %d", len(seen), producers*perProducer)
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("task %d executed %d times, want 1", id, n)
		}
	}
}

func TestPanicDelivered(t *testing.T) {
	q := startQueue(t)

	_, err := q.Submit(func() (any, error) { panic("kaboom") }).Wait(context.Background())
	if err == nil || !strings.Contains(err.Error(), "kaboom") {
		t.Errorf("Wait error = %v, want panic message", err)
	}

	// The consumer survives the panic.
	got, err := q.Submit(func() (any, error) { return "alive", nil }).Wait(context.Background())
	if err != nil || got != "alive" {
		t.Errorf("Wait after panic = (%v, %v), want (alive, nil)", got, err)
	}
}

func TestWaitContext(t *testing.T) {
	// No consumer: the task never runs and Wait must respect ctx.
	q := NewQueue()
	r := q.Submit(func() (any, error) { return nil, nil })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait error = %v, want context.Canceled", err)
	}
}

func TestCloseDrainsRemaining(t *testing.T) {
	q := NewQueue()

	ran := 0
	results := make([]*Result, 3)
	for i := range results {
		results[i] = q.Submit(func() (any, error) {
			ran++
			return nil, nil
		})
	}

	// The run loop sees the closed queue and still drains everything
	// that was submitted before teardown.
	q.Close()
	q.Run(context.Background())

	for _, r := range results {
		if _, err := r.Wait(context.Background()); err != nil {
			t.Fatalf("Wait error: %v", err)
		}
	}
	if ran != 3 {
		t.Errorf("executed %d tasks, want 3", ran)
	}
}

func TestRunStopsOnContext(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan struct{})
	go func() {
		q.Run(ctx)
		close(stopped)
	}()

	cancel()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancel")
	}
}

func TestCloseIdempotent(t *testing.T) {
	q := NewQueue()
	q.Close()
	q.Close()
}
