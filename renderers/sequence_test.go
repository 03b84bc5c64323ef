package renderers_test

import (
	"sync"
	"testing"

	"github.com/bawdo/fluentsql/internal/testutil"
	"github.com/bawdo/fluentsql/renderers"
)

func TestSequenceStartsAtOne(t *testing.T) {
	t.Parallel()
	seq := renderers.NewSequence()
	testutil.AssertEqual(t, seq.Next(), 1)
	testutil.AssertEqual(t, seq.Next(), 2)
	testutil.AssertEqual(t, seq.Next(), 3)
}

func TestSequenceConcurrentNext(t *testing.T) {
	t.Parallel()
	seq := renderers.NewSequence()

	const workers = 8
	const perWorker = 100

	results := make(chan int, workers*perWorker)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				results <- seq.Next()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int]bool)
	for n := range results {
		if seen[n] {
			t.Fatalf("value %d issued twice", n)
		}
		seen[n] = true
	}
	testutil.AssertEqual(t, len(seen), workers*perWorker)
}
