// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package eventloop

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_Dispatch_Serializes(t *testing.T) {
	l := New(context.Background())
	defer l.Close()

	counter := 0
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Dispatch(func() {
				v := counter
				time.Sleep(time.Microsecond)
				counter = v + 1
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestGo_DeliversResultOnLoop(t *testing.T) {
	l := New(context.Background())

	var got int
	var gotErr error
	Go(l, func(ctx context.Context) (int, error) {
		return 42, nil
	}, func(v int, err error) {
		got, gotErr = v, err
	})
	l.Wait()

	require.NoError(t, gotErr)
	assert.Equal(t, 42, got)
	l.Close()
}

func TestGo_DeliversError(t *testing.T) {
	l := New(context.Background())
	defer l.Close()

	boom := errors.New("boom")
	var gotErr error
	Go(l, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, boom
	}, func(_ struct{}, err error) {
		gotErr = err
	})
	l.Wait()

	assert.ErrorIs(t, gotErr, boom)
}

func TestGo_FromInsideDispatch(t *testing.T) {
	l := New(context.Background())
	defer l.Close()

	delivered := false
	l.Dispatch(func() {
		Go(l, func(ctx context.Context) (bool, error) {
			return true, nil
		}, func(v bool, _ error) {
			delivered = v
		})
	})
	l.Wait()

	assert.True(t, delivered)
}

func TestLoop_Close_CancelsTaskContextAndWaits(t *testing.T) {
	l := New(context.Background())

	started := make(chan struct{})
	var completion error
	Go(l, func(ctx context.Context) (struct{}, error) {
		close(started)
		<-ctx.Done()
		return struct{}{}, ctx.Err()
	}, func(_ struct{}, err error) {
		completion = err
	})

	<-started
	l.Close()

	assert.ErrorIs(t, completion, context.Canceled, "in-flight completion is still delivered")
}
