package gateway

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowRemote echoes its input after a short delay and tracks concurrency.
type slowRemote struct {
	inFlight atomic.Int32
	peak     atomic.Int32
	mu       sync.Mutex
	seen     []string
}

func (r *slowRemote) Convert(ctx context.Context, text string, dir Direction, save bool) (*RemoteResult, error) {
	n := r.inFlight.Add(1)
	defer r.inFlight.Add(-1)
	for {
		p := r.peak.Load()
		if n <= p || r.peak.CompareAndSwap(p, n) {
			break
		}
	}

	r.mu.Lock()
	r.seen = append(r.seen, text)
	r.mu.Unlock()

	time.Sleep(5 * time.Millisecond)
	return &RemoteResult{Resultado: "<" + text + ">", Exito: true}, nil
}

func TestBatchKeepsOrder(t *testing.T) {
	gw := New(nil, nil, false, nil)

	res, err := gw.Batch(context.Background(), []string{"hola", "Mundo", "", "12"}, TextToBraille, 3)
	require.NoError(t, err)
	require.Len(t, res, 4)
	assert.Equal(t, "⠓⠕⠇⠁", res[0].Output)
	assert.Equal(t, "⠨⠍⠥⠝⠙⠕", res[1].Output)
	assert.Equal(t, "", res[2].Output)
	assert.Equal(t, "⠼⠁⠼⠃", res[3].Output)
}

func TestBatchBoundsWorkers(t *testing.T) {
	remote := &slowRemote{}
	gw := New(nil, remote, false, nil)

	texts := make([]string, 12)
	for i := range texts {
		texts[i] = string(rune('a' + i))
	}

	res, err := gw.Batch(context.Background(), texts, TextToBraille, 2)
	require.NoError(t, err)
	assert.LessOrEqual(t, remote.peak.Load(), int32(2))
	assert.Len(t, remote.seen, len(texts))
	for i, r := range res {
		assert.Equal(t, "<"+texts[i]+">", r.Output)
		assert.Equal(t, SourceRemote, r.Source)
	}
}

// goroutineRemote records the process goroutine count on every call.
type goroutineRemote struct {
	peak atomic.Int64
}

func (r *goroutineRemote) Convert(ctx context.Context, text string, dir Direction, save bool) (*RemoteResult, error) {
	n := int64(runtime.NumGoroutine())
	for {
		p := r.peak.Load()
		if n <= p || r.peak.CompareAndSwap(p, n) {
			break
		}
	}
	return &RemoteResult{Resultado: text, Exito: true}, nil
}

func TestBatchPoolSize(t *testing.T) {
	remote := &goroutineRemote{}
	gw := New(nil, remote, false, nil)

	texts := make([]string, 2000)
	for i := range texts {
		texts[i] = "linea"
	}

	base := runtime.NumGoroutine()
	res, err := gw.Batch(context.Background(), texts, TextToBraille, 4)
	require.NoError(t, err)
	require.Len(t, res, len(texts))
	assert.LessOrEqual(t, remote.peak.Load(), int64(base+4+8), "batch should not start a goroutine per line")
}

func TestBatchCanceled(t *testing.T) {
	gw := New(nil, nil, false, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.Batch(ctx, []string{"a", "b", "c"}, TextToBraille, 8)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	var le *LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 0, le.Index)
	assert.Equal(t, "line 1: context canceled", le.Error())
}

func TestBatchRejectsDirection(t *testing.T) {
	gw := New(nil, nil, false, nil)
	_, err := gw.Batch(context.Background(), []string{"a"}, Direction("up"), 1)
	assert.ErrorIs(t, err, ErrUnknownDirection)
}
