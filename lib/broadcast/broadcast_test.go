package broadcast

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestReceiveBlocksUntilFirstSend(t *testing.T) {
	tx, rx := New[string]()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, _, err := rx.Receive(ctx, 0); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Receive on empty channel = %v, want deadline exceeded", err)
	}

	if err := tx.Send("hello"); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	id, v, err := rx.Receive(context.Background(), 0)
	if err != nil {
		t.Fatalf("Receive failed: %v", err)
	}
	if v != "hello" || id == 0 {
		t.Errorf("Receive = (%d, %q), want (>0, %q)", id, v, "hello")
	}
}

func TestLateReceiverSeesLatestValue(t *testing.T) {
	tx, rx := New[int]()
	for i := 1; i <= 5; i++ {
		tx.Send(i)
	}

	late := rx
	id, v, err := late.Receive(context.Background(), 0)
	if err != nil {
		t.Fatalf("Receive failed: %v", err)
	}
	if v != 5 {
		t.Errorf("late receiver got %d, want 5", v)
	}
	if id != late.Latest() {
		t.Errorf("id = %d, want Latest() = %d", id, late.Latest())
	}
}

func TestReceiveWaitsForNewerGeneration(t *testing.T) {
	tx, rx := New[int]()
	tx.Send(1)
	id, _, _ := rx.Receive(context.Background(), 0)

	got := make(chan int, 1)
	go func() {
		_, v, err := rx.Receive(context.Background(), id)
		if err == nil {
			got <- v
		}
	}()

	select {
	case v := <-got:
		t.Fatalf("Receive returned %d before a newer send", v)
	case <-time.After(20 * time.Millisecond):
	}

	tx.Send(2)
	select {
	case v := <-got:
		if v != 2 {
			t.Errorf("got %d, want 2", v)
		}
	case <-time.After(time.Second):
		t.Fatal("Receive did not wake after Send")
	}
}

func TestCloseWakesReceivers(t *testing.T) {
	tx, rx := New[int]()

	done := make(chan error, 1)
	go func() {
		_, _, err := rx.Receive(context.Background(), 0)
		done <- err
	}()

	tx.Close()
	select {
	case err := <-done:
		if !errors.Is(err, ErrClosed) {
			t.Errorf("Receive after Close = %v, want ErrClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Close did not wake receiver")
	}

	if err := tx.Send(1); !errors.Is(err, ErrClosed) {
		t.Errorf("Send after Close = %v, want ErrClosed", err)
	}
	if !tx.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}
}

func TestCloseDeliversPendingValue(t *testing.T) {
	tx, rx := New[int]()
	tx.Send(7)
	tx.Close()

	_, v, err := rx.Receive(context.Background(), 0)
	if err != nil || v != 7 {
		t.Errorf("Receive = (%d, %v), want (7, nil)", v, err)
	}
}

func TestConcurrentReceiversConverge(t *testing.T) {
	tx, rx := New[int]()
	const receivers = 8
	const final = 100

	var wg sync.WaitGroup
	results := make([]int, receivers)
	for i := 0; i < receivers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var id StateID
			for {
				next, v, err := rx.Receive(context.Background(), id)
				if err != nil {
					return
				}
				id = next
				results[i] = v
				if v == final {
					return
				}
			}
		}(i)
	}

	for i := 1; i <= final; i++ {
		tx.Send(i)
	}
	wg.Wait()

	for i, v := range results {
		if v != final {
			t.Errorf("receiver %d ended at %d, want %d", i, v, final)
		}
	}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[int]()
	for i := 0; i < 5; i++ {
		if err := q.Push(i); err != nil {
			t.Fatalf("Push failed: %v", err)
		}
	}
	if q.Len() != 5 {
		t.Errorf("Len() = %d, want 5", q.Len())
	}

	var got []int
	for i := 0; i < 5; i++ {
		v, err := q.Receive(context.Background())
		if err != nil {
			t.Fatalf("Receive failed: %v", err)
		}
		got = append(got, v)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, got); diff != "" {
		t.Errorf("queue order mismatch (-want +got):\n%s", diff)
	}
}

func TestQueueNeverCollapses(t *testing.T) {
	q := NewQueue[int]()
	const n = 1000

	go func() {
		for i := 0; i < n; i++ {
			q.Push(i)
		}
		q.Close()
	}()

	var got []int
	for {
		v, err := q.Receive(context.Background())
		if errors.Is(err, ErrClosed) {
			break
		}
		if err != nil {
			t.Fatalf("Receive failed: %v", err)
		}
		got = append(got, v)
	}

	if len(got) != n {
		t.Fatalf("received %d values, want %d", len(got), n)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("value %d = %d, out of order", i, v)
		}
	}
}

func TestQueuePushAfterClose(t *testing.T) {
	q := NewQueue[string]()
	q.Close()
	if err := q.Push("x"); !errors.Is(err, ErrClosed) {
		t.Errorf("Push after Close = %v, want ErrClosed", err)
	}
}

func TestQueueReceiveContext(t *testing.T) {
	q := NewQueue[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := q.Receive(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Receive with canceled ctx = %v, want context.Canceled", err)
	}
}
