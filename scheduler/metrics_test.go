package scheduler

import "testing"

func TestJitterMetricsRecordAndSnapshot(t *testing.T) {
	m := NewJitterMetrics()
	m.record(10)
	m.record(-5)
	m.record(20)

	snap := m.Snapshot()
	if snap.Count != 3 {
		t.Fatalf("count = %d, want 3", snap.Count)
	}
	if snap.Min != -5 || snap.Max != 20 {
		t.Fatalf("min/max = %d/%d, want -5/20", snap.Min, snap.Max)
	}
	if snap.Sum != 25 {
		t.Fatalf("sum = %d, want 25", snap.Sum)
	}
	if mean := snap.Mean(); mean < 8.32 || mean > 8.34 {
		t.Fatalf("mean = %v, want ~8.33", mean)
	}
}

func TestJitterMetricsNilReceiverIsSafe(t *testing.T) {
	var m *JitterMetrics
	m.record(10)
	if snap := m.Snapshot(); snap.Count != 0 {
		t.Fatalf("expected a zero snapshot from a nil collector, got %+v", snap)
	}
}

func TestJitterMetricsEmptySnapshotMeanIsZero(t *testing.T) {
	m := NewJitterMetrics()
	if mean := m.Snapshot().Mean(); mean != 0 {
		t.Fatalf("mean = %v, want 0", mean)
	}
}

func TestJitterMetricsCapsRingBuffer(t *testing.T) {
	m := NewJitterMetrics()
	for i := 0; i < metricsCapacity+10; i++ {
		m.record(int64(i))
	}

	snap := m.Snapshot()
	if len(snap.Deltas) != metricsCapacity {
		t.Fatalf("deltas len = %d, want %d", len(snap.Deltas), metricsCapacity)
	}
	if snap.Count != int64(metricsCapacity+10) {
		t.Fatalf("count = %d, want %d", snap.Count, metricsCapacity+10)
	}
	if snap.Deltas[0] != 10 {
		t.Fatalf("expected the oldest 10 samples evicted, first retained = %d, want 10", snap.Deltas[0])
	}
}
