// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"errors"
	"testing"
)

// countingWorker tracks how many times Run was called.
type countingWorker struct {
	runCount int
	err      error
}

func (c *countingWorker) Run(context.Context) error {
	c.runCount++
	return c.err
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}
	w3 := &countingWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, w := range []*countingWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorkers_Run_StopsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	w1 := &countingWorker{}
	w2 := &countingWorker{err: boom}
	w3 := &countingWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}

	if err := ws.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
	if w3.runCount != 0 {
		t.Errorf("worker after a failure must not run, got runCount=%d", w3.runCount)
	}
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := &Workers{workers: []Worker{
		newOrderWorker(1),
		newOrderWorker(2),
		newOrderWorker(3),
	}}
	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run(context.Context) error {
	*o.order = append(*o.order, o.id)
	return nil
}
