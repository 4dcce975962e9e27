package dataview_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dalemusser/octofit/internal/app/system/dataview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestView_StartsIdle(t *testing.T) {
	v := dataview.New[int]("test", func(ctx context.Context) ([]int, error) {
		return []int{1}, nil
	}, zap.NewNop())
	defer v.Close()

	snap := v.Snapshot()
	assert.Equal(t, dataview.StateIdle, snap.State)
	assert.Zero(t, snap.Generation)

	got, err := v.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dataview.StateIdle, got.State, "Wait on an idle view returns immediately")
}

func TestView_RefreshSuccess(t *testing.T) {
	v := dataview.New[string]("test", func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	}, zap.NewNop())
	defer v.Close()

	snap, err := v.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dataview.StateSuccess, snap.State)
	assert.Equal(t, []string{"a", "b"}, snap.Items)
	assert.Empty(t, snap.Err)
	assert.Equal(t, uint64(1), snap.Generation)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestView_NilItemsBecomeEmpty(t *testing.T) {
	v := dataview.New[string]("test", func(ctx context.Context) ([]string, error) {
		return nil, nil
	}, zap.NewNop())
	defer v.Close()

	snap, err := v.Refresh(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snap.Items)
	assert.True(t, snap.Empty())
}

func TestView_ErrorClearsItems(t *testing.T) {
	var fail atomic.Bool
	v := dataview.New[int]("test", func(ctx context.Context) ([]int, error) {
		if fail.Load() {
			return nil, errors.New("HTTP error! status: 500")
		}
		return []int{1, 2, 3}, nil
	}, zap.NewNop())
	defer v.Close()

	snap, err := v.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Items, 3)

	fail.Store(true)
	snap, err = v.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dataview.StateError, snap.State)
	assert.Nil(t, snap.Items)
	assert.Contains(t, snap.Err, "status: 500")

	fail.Store(false)
	snap, err = v.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dataview.StateSuccess, snap.State)
	assert.Empty(t, snap.Err, "success clears the previous error")
	assert.Equal(t, uint64(3), snap.Generation)
}

func TestView_RefreshPassesThroughLoading(t *testing.T) {
	release := make(chan struct{})
	v := dataview.New[int]("test", func(ctx context.Context) ([]int, error) {
		<-release
		return []int{1}, nil
	}, zap.NewNop())
	defer v.Close()

	gen := v.Start()
	assert.Equal(t, uint64(1), gen)
	assert.Equal(t, dataview.StateLoading, v.Snapshot().State)

	close(release)
	snap, err := v.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dataview.StateSuccess, snap.State)

	v.Start()
	loading := v.Snapshot()
	assert.Equal(t, dataview.StateLoading, loading.State, "refresh from success re-enters loading")
	assert.Equal(t, uint64(2), loading.Generation)
	_, err = v.Wait(context.Background())
	require.NoError(t, err)
}

func TestView_RefreshDuringFetchQueuesOneFollowUp(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	var calls atomic.Int32

	v := dataview.New[string]("test", func(ctx context.Context) ([]string, error) {
		if calls.Add(1) == 1 {
			close(firstStarted)
			<-releaseFirst
			return []string{"first"}, nil
		}
		return []string{"second"}, nil
	}, zap.NewNop())
	defer v.Close()

	first := make(chan dataview.Snapshot[string], 1)
	go func() {
		snap, _ := v.Refresh(context.Background())
		first <- snap
	}()
	<-firstStarted

	const joiners = 5
	results := make(chan dataview.Snapshot[string], joiners)
	for i := 0; i < joiners; i++ {
		go func() {
			snap, _ := v.Refresh(context.Background())
			results <- snap
		}()
	}
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "queued refreshes wait for the in-flight fetch")

	close(releaseFirst)

	select {
	case snap := <-first:
		assert.Equal(t, []string{"first"}, snap.Items)
		assert.Equal(t, uint64(1), snap.Generation)
	case <-time.After(time.Second):
		t.Fatal("first refresh never returned")
	}
	for i := 0; i < joiners; i++ {
		select {
		case snap := <-results:
			assert.Equal(t, []string{"second"}, snap.Items)
			assert.Equal(t, uint64(2), snap.Generation)
		case <-time.After(time.Second):
			t.Fatal("queued refresh never returned")
		}
	}
	assert.Equal(t, int32(2), calls.Load(), "concurrent refreshes share one follow-up fetch")
}

func TestView_InFlightFetchIsNotCanceled(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	v := dataview.New[int]("test", func(ctx context.Context) ([]int, error) {
		if calls.Add(1) == 1 {
			close(started)
			select {
			case <-release:
				return []int{1}, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		return []int{2}, nil
	}, zap.NewNop())
	defer v.Close()

	v.Start()
	<-started
	assert.Equal(t, uint64(2), v.Start(), "second request is queued as the next generation")
	assert.Equal(t, uint64(2), v.Start(), "further requests join the queued generation")

	close(release)
	snap, err := v.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2}, snap.Items)
	assert.Equal(t, uint64(2), snap.Generation)
	assert.Equal(t, int32(2), calls.Load())
}

func TestView_SustainedLoadKeepsCompleting(t *testing.T) {
	var completed atomic.Int32
	v := dataview.New[int]("test", func(ctx context.Context) ([]int, error) {
		select {
		case <-time.After(40 * time.Millisecond):
			completed.Add(1)
			return []int{1}, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}, zap.NewNop())
	defer v.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var answered, failed atomic.Int32
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	deadline := time.After(600 * time.Millisecond)

	var wg sync.WaitGroup
loop:
	for {
		select {
		case <-ticker.C:
			wg.Add(1)
			go func() {
				defer wg.Done()
				snap, err := v.Refresh(ctx)
				if err != nil || snap.State != dataview.StateSuccess {
					failed.Add(1)
					return
				}
				answered.Add(1)
			}()
		case <-deadline:
			break loop
		}
	}
	wg.Wait()

	assert.Zero(t, failed.Load(), "every refresh under load gets a settled result")
	assert.Greater(t, answered.Load(), int32(30))
	assert.GreaterOrEqual(t, completed.Load(), int32(8), "fetches keep completing while requests outpace the upstream")
}

func TestView_WaitHonorsContext(t *testing.T) {
	v := dataview.New[int]("test", func(ctx context.Context) ([]int, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}, zap.NewNop())
	defer v.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	snap, err := v.Refresh(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, dataview.StateLoading, snap.State)
}

func TestView_CloseCancelsInFlight(t *testing.T) {
	started := make(chan struct{})
	v := dataview.New[int]("test", func(ctx context.Context) ([]int, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}, zap.NewNop())

	v.Start()
	<-started

	done := make(chan error, 1)
	go func() {
		_, err := v.Wait(context.Background())
		done <- err
	}()

	v.Close()
	v.Close()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, dataview.ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Close")
	}

	gen := v.Start()
	assert.Equal(t, uint64(1), gen, "closed view does not start new generations")
}

func TestView_CloseReleasesQueuedRefresh(t *testing.T) {
	started := make(chan struct{})
	var calls atomic.Int32
	v := dataview.New[int]("test", func(ctx context.Context) ([]int, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}, zap.NewNop())

	v.Start()
	<-started

	done := make(chan error, 1)
	go func() {
		_, err := v.Refresh(context.Background())
		done <- err
	}()
	time.Sleep(10 * time.Millisecond)
	v.Close()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, dataview.ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("queued refresh did not return after Close")
	}
	assert.Equal(t, int32(1), calls.Load(), "queued fetch never starts on a closed view")
}

func TestSet_CloseAll(t *testing.T) {
	set := dataview.NewSet()
	a := dataview.New[int]("a", func(ctx context.Context) ([]int, error) { return nil, nil }, nil)
	b := dataview.New[int]("b", func(ctx context.Context) ([]int, error) { return nil, nil }, nil)
	set.Add(a)
	set.Add(b)
	require.Equal(t, 2, set.Len())

	set.CloseAll()
	assert.Equal(t, 0, set.Len())

	_, err := a.Refresh(context.Background())
	assert.NoError(t, err, "idle closed view has nothing to wait for")
	assert.Equal(t, dataview.StateIdle, a.Snapshot().State)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", dataview.StateIdle.String())
	assert.Equal(t, "loading", dataview.StateLoading.String())
	assert.Equal(t, "success", dataview.StateSuccess.String())
	assert.Equal(t, "error", dataview.StateError.String())
	assert.True(t, dataview.StateError.Terminal())
	assert.False(t, dataview.StateLoading.Terminal())
}
