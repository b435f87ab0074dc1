package util

import (
	"reflect"
	"sync"
	"testing"
)

func TestNextPrefixStreams(t *testing.T) {
	fresh := NewNameFresh()
	res := []string{
		fresh.NextPrefix("x"),
		fresh.NextPrefix("x"),
		fresh.NextPrefix("y"),
		fresh.NextPrefix("x"),
	}
	exp := []string{"x1", "x2", "y1", "x3"}
	if !reflect.DeepEqual(res, exp) {
		t.Errorf("Expected %v, got %v instead", exp, res)
	}
}

func TestIndexFreshConcurrent(t *testing.T) {
	var fresh IndexFresh
	var mu sync.Mutex
	seen := map[uint64]bool{}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				n := fresh.Next()
				mu.Lock()
				seen[n] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if len(seen) != 800 {
		t.Errorf("Expected %v distinct indices, got %v instead", 800, len(seen))
	}
	if seen[0] {
		t.Errorf("Expected index 0 never to be generated")
	}
}

func TestUniqueBy(t *testing.T) {
	res := UniqueBy([]string{"a", "bb", "c", "dd", "eee"}, func(s string) int { return len(s) })
	exp := []string{"a", "bb", "eee"}
	if !reflect.DeepEqual(res, exp) {
		t.Errorf("Expected %v, got %v instead", exp, res)
	}
}

func TestSortedKeys(t *testing.T) {
	res := SortedKeys(map[string]int{"c": 1, "a": 2, "b": 3})
	exp := []string{"a", "b", "c"}
	if !reflect.DeepEqual(res, exp) {
		t.Errorf("Expected %v, got %v instead", exp, res)
	}
}
