package bus

import (
	"sync"
	"testing"
)

func TestPublishReachesSubscribers(t *testing.T) {
	b := New()

	var a, c int
	b.Subscribe("wallet", func() { a++ })
	b.Subscribe("wallet", func() { c++ })
	b.Subscribe("campaigns", func() { t.Error("wrong topic delivered") })

	b.Publish("wallet")
	b.Publish("wallet")

	if a != 2 || c != 2 {
		t.Fatalf("expected both handlers to run twice, got %d and %d", a, c)
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	b := New()
	b.Publish("wallet") // must not panic
}

func TestUnsubscribe(t *testing.T) {
	b := New()

	var calls int
	unsubscribe := b.Subscribe("wallet", func() { calls++ })

	b.Publish("wallet")
	unsubscribe()
	unsubscribe() // second call is a no-op
	b.Publish("wallet")

	if calls != 1 {
		t.Fatalf("expected 1 delivery, got %d", calls)
	}
}

func TestUnsubscribeOnlyRemovesOwnHandler(t *testing.T) {
	b := New()

	var kept int
	unsubscribe := b.Subscribe("wallet", func() { t.Error("removed handler ran") })
	b.Subscribe("wallet", func() { kept++ })

	unsubscribe()
	b.Publish("wallet")

	if kept != 1 {
		t.Fatalf("expected the remaining handler to run, got %d", kept)
	}
}

func TestConcurrentPublish(t *testing.T) {
	b := New()

	var mu sync.Mutex
	calls := 0
	b.Subscribe("wallet", func() {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Publish("wallet")
		}()
	}
	wg.Wait()

	if calls != 20 {
		t.Fatalf("expected 20 deliveries, got %d", calls)
	}
}
