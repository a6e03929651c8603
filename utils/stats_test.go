package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 10, 100*time.Millisecond)
	if s.AveragePopulation != 10 || s.PeakPopulation != 10 {
		t.Fatalf("first update: %+v", s)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatalf("gen/sec = %v", s.GenerationsPerSecond)
	}

	s.Update(2, 0, 0)
	if s.AveragePopulation != 9 {
		t.Fatalf("moving average = %v, want 9", s.AveragePopulation)
	}
	if s.PeakPopulation != 10 || s.LastPopulation != 0 || s.TotalGenerations != 2 {
		t.Fatalf("second update: %+v", s)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatal("zero duration overwrote gen/sec")
	}
}
