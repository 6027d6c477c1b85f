package encoder

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ericlevine/ecc200"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPlacementCacheGet(t *testing.T) {
	var logs []string
	c := NewPlacementCache(WithLogf(func(format string, args ...any) {
		logs = append(logs, fmt.Sprintf(format, args...))
	}))

	hits := testutil.ToFloat64(placementCacheHits)
	misses := testutil.ToFloat64(placementCacheMisses)
	builds := testutil.ToFloat64(placementBuilds)

	first, err := c.Get(18, 18)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	second, err := c.Get(18, 18)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if first != second {
		t.Error("second Get returned a different map")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	direct, err := BuildPlacement(18, 18)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(direct.Cells(), first.Cells()); diff != "" {
		t.Errorf("cached map differs from a fresh build (-fresh +cached):\n%s", diff)
	}

	if got := testutil.ToFloat64(placementCacheHits) - hits; got != 1 {
		t.Errorf("hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(placementCacheMisses) - misses; got != 1 {
		t.Errorf("misses delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(placementBuilds) - builds; got != 1 {
		t.Errorf("builds delta = %v, want 1", got)
	}
	if want := []string{"datamatrix/encoder: built 18x18 placement map for 40 codewords"}; !cmp.Equal(want, logs) {
		t.Errorf("logs = %q, want %q", logs, want)
	}
}

func TestPlacementCacheKeysDistinguishShape(t *testing.T) {
	c := NewPlacementCache()
	wide, err := c.Get(6, 16)
	if err != nil {
		t.Fatal(err)
	}
	tall, err := c.Get(16, 6)
	if errors.Is(err, ecc200.ErrInvalidDimensions) {
		// Transposed rectangular sizes are not guaranteed to be placeable.
		tall = nil
	} else if err != nil {
		t.Fatal(err)
	}
	if tall == wide {
		t.Error("6x16 and 16x6 share a cache entry")
	}
	if wide.Rows() != 6 || wide.Cols() != 16 {
		t.Errorf("6x16 entry is %dx%d", wide.Rows(), wide.Cols())
	}
}

func TestPlacementCacheErrorsNotCached(t *testing.T) {
	c := NewPlacementCache()
	for i := 0; i < 2; i++ {
		if _, err := c.Get(0, 8); !errors.Is(err, ecc200.ErrInvalidDimensions) {
			t.Fatalf("Get(0, 8) error = %v, want ErrInvalidDimensions", err)
		}
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after failed builds, want 0", c.Len())
	}
}

func TestPlacementCacheConcurrent(t *testing.T) {
	var built atomic.Int32
	c := NewPlacementCache(WithLogf(func(string, ...any) { built.Add(1) }))

	sizes := [][2]int{{8, 8}, {10, 10}, {6, 16}, {132, 132}}
	const workers = 32
	results := make([][]*PlacementMap, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, s := range sizes {
				m, err := c.Get(s[0], s[1])
				if err != nil {
					t.Errorf("Get(%d, %d): %v", s[0], s[1], err)
					return
				}
				results[w] = append(results[w], m)
			}
		}()
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		for i := range sizes {
			if results[w][i] != results[0][i] {
				t.Errorf("worker %d got a different %v map", w, sizes[i])
			}
		}
	}
	if c.Len() != len(sizes) {
		t.Errorf("Len() = %d, want %d", c.Len(), len(sizes))
	}
	if n := built.Load(); n < int32(len(sizes)) {
		t.Errorf("%d builds logged, want at least %d", n, len(sizes))
	}
}

func TestPlacementCacheRejectsIncompleteSizes(t *testing.T) {
	c := NewPlacementCache()
	if _, err := c.Get(38, 26); !errors.Is(err, ecc200.ErrInvalidDimensions) {
		t.Errorf("Get(38, 26) error = %v, want ErrInvalidDimensions", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestPlacementCacheReset(t *testing.T) {
	c := NewPlacementCache()
	before, err := c.Get(12, 12)
	if err != nil {
		t.Fatal(err)
	}
	c.Reset()
	if c.Len() != 0 {
		t.Fatalf("Len() = %d after Reset, want 0", c.Len())
	}
	after, err := c.Get(12, 12)
	if err != nil {
		t.Fatal(err)
	}
	if before == after {
		t.Error("Reset did not drop the cached map")
	}
	if diff := cmp.Diff(before.Cells(), after.Cells()); diff != "" {
		t.Errorf("rebuilt map differs (-before +after):\n%s", diff)
	}
}
