package event

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(r rune) Event { return KeyEvent(Key{Code: KeyRune, Rune: r}) }

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue()
	for _, r := range "abc" {
		require.NoError(t, q.Send(key(r)))
	}
	assert.Equal(t, 3, q.Len())

	ctx := context.Background()
	for _, r := range "abc" {
		e, err := q.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, r, e.Key.Rune)
	}
	assert.Equal(t, 0, q.Len())
}

func TestQueue_NextBlocksUntilSend(t *testing.T) {
	q := NewQueue()
	got := make(chan Event, 1)

	go func() {
		e, err := q.Next(context.Background())
		if err == nil {
			got <- e
		}
	}()

	select {
	case <-got:
		t.Fatal("Next returned before anything was sent")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, q.Send(TickEvent()))
	select {
	case e := <-got:
		assert.Equal(t, Tick, e.Kind)
	case <-time.After(time.Second):
		t.Fatal("Next did not wake up")
	}
}

func TestQueue_NextHonoursContext(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := q.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestQueue_CloseDrainsThenFails(t *testing.T) {
	q := NewQueue()
	require.NoError(t, q.Send(key('q')))
	q.Close()

	assert.ErrorIs(t, q.Send(key('x')), ErrClosed)

	e, err := q.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 'q', e.Key.Rune)

	_, err = q.Next(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestQueue_CloseWakesBlockedConsumer(t *testing.T) {
	q := NewQueue()
	errc := make(chan error, 1)
	go func() {
		_, err := q.Next(context.Background())
		errc <- err
	}()

	time.Sleep(10 * time.Millisecond)
	q.Close()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("blocked Next did not observe Close")
	}
}

func TestQueue_ManyProducersKeepPerProducerOrder(t *testing.T) {
	const producers, perProducer = 8, 200
	q := NewQueue()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				// Rune carries the producer in the high bits, the sequence in the low bits
				_ = q.Send(KeyEvent(Key{Code: KeyRune, Rune: rune(p<<16 | i)}))
			}
		}(p)
	}
	wg.Wait()
	q.Close()

	last := make([]int, producers)
	for i := range last {
		last[i] = -1
	}
	n := 0
	for {
		e, err := q.Next(context.Background())
		if err != nil {
			require.ErrorIs(t, err, ErrClosed)
			break
		}
		p, seq := int(e.Key.Rune>>16), int(e.Key.Rune&0xffff)
		require.Greater(t, seq, last[p], "producer %d out of order", p)
		last[p] = seq
		n++
	}
	assert.Equal(t, producers*perProducer, n)
}
