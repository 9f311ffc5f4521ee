// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"reflect"
	"sync"
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFake_SleepAdvancesWithoutBlocking(t *testing.T) {
	fake := Fake(epoch)

	fake.Sleep(time.Hour)
	fake.Sleep(-time.Second)
	fake.Sleep(90 * time.Second)

	if got, want := fake.Now(), epoch.Add(time.Hour+90*time.Second); !got.Equal(want) {
		t.Errorf("Now() = %v, want %v", got, want)
	}
	want := []time.Duration{time.Hour, -time.Second, 90 * time.Second}
	if got := fake.Sleeps(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sleeps() = %v, want %v", got, want)
	}
}

func TestFake_AdvanceAndSince(t *testing.T) {
	fake := Fake(epoch)
	start := fake.Now()

	fake.Advance(250 * time.Millisecond)

	if got := Since(fake, start); got != 250*time.Millisecond {
		t.Errorf("Since() = %v, want 250ms", got)
	}
	if len(fake.Sleeps()) != 0 {
		t.Errorf("Advance recorded a sleep: %v", fake.Sleeps())
	}
}

func TestFake_ConcurrentSleeps(t *testing.T) {
	fake := Fake(epoch)
	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() { fake.Sleep(time.Second) })
	}
	wg.Wait()

	if got, want := fake.Now(), epoch.Add(8*time.Second); !got.Equal(want) {
		t.Errorf("Now() = %v, want %v", got, want)
	}
}

func TestReal(t *testing.T) {
	wall := Real()
	start := wall.Now()
	wall.Sleep(time.Millisecond)
	if Since(wall, start) < time.Millisecond {
		t.Error("Real().Sleep returned early")
	}
}
