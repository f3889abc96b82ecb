package fibonacci

import (
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// recordingObserver captures notifications for assertions.
type recordingObserver struct {
	mu         sync.Mutex
	built      []string
	outOfRange []string
}

func (o *recordingObserver) TableBuilt(domain string, length int, elapsed time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.built = append(o.built, domain)
}

func (o *recordingObserver) LookupOutOfRange(domain string, index int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outOfRange = append(o.outOfRange, domain)
}

func TestObserverNotifications(t *testing.T) {
	// Not parallel: observer registration is process-wide.
	obs := &recordingObserver{}
	RegisterObserver(obs)

	d := NewBounded[int32]("observed-int32", signedArith[int32]{})
	if _, ok := d.Nth(5); !ok {
		t.Fatal("Nth(5) should be representable")
	}

	obs.mu.Lock()
	built := slices.Clone(obs.built)
	obs.mu.Unlock()
	if !slices.Contains(built, "observed-int32") {
		t.Errorf("no TableBuilt notification for observed-int32 (got %v)", built)
	}

	if _, ok := d.Nth(1_000); ok {
		t.Fatal("Nth(1000) should be out of range for int32")
	}
	obs.mu.Lock()
	rejected := slices.Clone(obs.outOfRange)
	obs.mu.Unlock()
	if !slices.Contains(rejected, "observed-int32") {
		t.Errorf("no LookupOutOfRange notification (got %v)", rejected)
	}

	// A second touch must not rebuild the table.
	d.Len()
	obs.mu.Lock()
	count := 0
	for _, name := range obs.built {
		if name == "observed-int32" {
			count++
		}
	}
	obs.mu.Unlock()
	if count != 1 {
		t.Errorf("TableBuilt fired %d times, want exactly once", count)
	}
}

func TestLoggingObserverOutput(t *testing.T) {
	var buf strings.Builder
	logger := zerolog.New(&buf)
	obs := NewLoggingObserver(logger)

	obs.TableBuilt("int8", 12, time.Millisecond)
	out := buf.String()
	for _, want := range []string{`"domain":"int8"`, `"length":12`, "fibonacci table built"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestMetricsObserverDoesNotPanic(t *testing.T) {
	obs := NewMetricsObserver()
	obs.TableBuilt("int8", 12, time.Millisecond)
	obs.LookupOutOfRange("int8", 99)
}
