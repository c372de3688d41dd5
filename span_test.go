package timerunner

import (
	"errors"
	"testing"
	"time"
)

func TestNewTimeSpanRejectsEmptyExclusive(t *testing.T) {
	_, err := NewTimeSpan(Exclusive(time.Second), Exclusive(time.Second))
	if !errors.Is(err, ErrNotTime) {
		t.Errorf("expected ErrNotTime, got %v\n", err)
	}
}

func TestNewTimeSpanRejectsMinGreaterThanMax(t *testing.T) {
	_, err := NewTimeSpan(Inclusive(2*time.Second), Inclusive(time.Second))
	if !errors.Is(err, ErrMinGreaterThanMax) {
		t.Errorf("expected ErrMinGreaterThanMax, got %v\n", err)
	}
}

func TestNewTimeSpanAllowsZeroLengthClosed(t *testing.T) {
	span, err := NewTimeSpan(Inclusive(2*time.Second), Inclusive(2*time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v\n", err)
	}
	if span.LengthSeconds() != 0 {
		t.Errorf("expected zero length, got %v\n", span.LengthSeconds())
	}
}

func TestSpanUpToOpenAndClosed(t *testing.T) {
	open, err := SpanUpToOpen(3 * time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v\n", err)
	}
	if open.Min.Kind != BoundInclusive || open.Min.Duration != 0 {
		t.Errorf("wrong lower bound for SpanUpToOpen: %+v\n", open.Min)
	}
	if open.Max.Kind != BoundExclusive {
		t.Errorf("expected exclusive upper bound, got %+v\n", open.Max)
	}

	closed, err := SpanUpToClosed(3 * time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v\n", err)
	}
	if closed.Max.Kind != BoundInclusive {
		t.Errorf("expected inclusive upper bound, got %+v\n", closed.Max)
	}
}

func TestQuotient(t *testing.T) {
	span, err := SpanClosedOpen(2*time.Second, 5*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v\n", err)
	}

	cases := []struct {
		sample float64
		want   DurationQuotient
	}{
		{1.9, Before},
		{2.0, Inside},
		{3.5, Inside},
		{4.999, Inside},
		{5.0, After},
		{5.1, After},
	}
	for _, c := range cases {
		if got := span.Quotient(c.sample); got != c.want {
			t.Errorf("Quotient(%v) = %v, want %v\n", c.sample, got, c.want)
		}
	}
}

func TestQuotientClosedBoundaries(t *testing.T) {
	span, err := SpanClosed(2*time.Second, 5*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v\n", err)
	}
	if got := span.Quotient(2.0); got != Inside {
		t.Errorf("lower closed bound should be Inside, got %v\n", got)
	}
	if got := span.Quotient(5.0); got != Inside {
		t.Errorf("upper closed bound should be Inside, got %v\n", got)
	}
}
