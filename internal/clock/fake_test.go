package clock

import (
	"testing"
	"time"

	"github.com/mobil-koeln/fahrinfo/internal/testutil"
)

var epoch = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func TestFake_Now(t *testing.T) {
	f := NewFake(epoch)
	testutil.AssertTrue(t, f.Now().Equal(epoch))

	f.Advance(90 * time.Second)
	testutil.AssertTrue(t, f.Now().Equal(epoch.Add(90*time.Second)))
}

func TestFake_TickerFiresOnDeadline(t *testing.T) {
	f := NewFake(epoch)
	tk := f.NewTicker(250 * time.Millisecond)
	defer tk.Stop()

	f.Advance(200 * time.Millisecond)
	select {
	case <-tk.C:
		t.Fatal("ticker fired before its interval")
	default:
	}

	f.Advance(50 * time.Millisecond)
	select {
	case got := <-tk.C:
		testutil.AssertTrue(t, got.Equal(epoch.Add(250*time.Millisecond)))
	default:
		t.Fatal("ticker did not fire")
	}
}

func TestFake_TickerDropsWhenFull(t *testing.T) {
	f := NewFake(epoch)
	tk := f.NewTicker(time.Second)

	f.Advance(5 * time.Second)

	n := 0
	for {
		select {
		case <-tk.C:
			n++
			continue
		default:
		}
		break
	}
	testutil.AssertEqual(t, n, 1)
}

func TestFake_StoppedTickerIsSilent(t *testing.T) {
	f := NewFake(epoch)
	tk := f.NewTicker(time.Second)
	tk.Stop()

	f.Advance(3 * time.Second)
	select {
	case <-tk.C:
		t.Fatal("stopped ticker fired")
	default:
	}
}

func TestFake_WaitForTickers(t *testing.T) {
	f := NewFake(epoch)
	done := make(chan struct{})

	go func() {
		f.WaitForTickers(2)
		close(done)
	}()

	a := f.NewTicker(time.Second)
	b := f.NewTicker(time.Minute)
	defer a.Stop()
	defer b.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitForTickers did not return")
	}
}

func TestFake_NonPositiveIntervalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewTicker(0) did not panic")
		}
	}()
	NewFake(epoch).NewTicker(0)
}

func TestReal(t *testing.T) {
	c := Real()
	testutil.AssertTimeEqual(t, c.Now(), time.Now(), time.Second)

	tk := c.NewTicker(time.Millisecond)
	defer tk.Stop()
	select {
	case <-tk.C:
	case <-time.After(time.Second):
		t.Fatal("real ticker did not fire")
	}
}
