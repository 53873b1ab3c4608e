// Package gateway dispatches conversions to the remote backend and falls
// back to the local codec when the backend is unreachable or refuses.
package gateway

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/san-kum/brailler/internal/braille"
)

// Remote is the subset of Client the gateway needs.
type Remote interface {
	Convert(ctx context.Context, text string, dir Direction, save bool) (*RemoteResult, error)
}

// Source tells where a result was computed.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

type Result struct {
	Original  string        `json:"original"`
	Output    string        `json:"output"`
	Direction Direction     `json:"direction"`
	Source    Source        `json:"source"`
	RemoteID  int64         `json:"remote_id,omitempty"`
	Elapsed   time.Duration `json:"elapsed"`
}

type Gateway struct {
	codec      *braille.Codec
	remote     Remote
	saveRemote bool
	logger     *slog.Logger
}

// New builds a gateway. remote may be nil for offline use.
func New(codec *braille.Codec, remote Remote, saveRemote bool, logger *slog.Logger) *Gateway {
	if codec == nil {
		codec = braille.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Gateway{codec: codec, remote: remote, saveRemote: saveRemote, logger: logger}
}

// Convert runs one conversion. A successful remote answer is returned as
// is; any remote failure is logged and the local codec answers instead.
func (g *Gateway) Convert(ctx context.Context, text string, dir Direction) (Result, error) {
	if _, err := ParseDirection(string(dir)); err != nil {
		return Result{}, err
	}

	if g.remote != nil {
		start := time.Now()
		rr, err := g.remote.Convert(ctx, text, dir, g.saveRemote)
		if err == nil {
			return Result{
				Original:  text,
				Output:    rr.Resultado,
				Direction: dir,
				Source:    SourceRemote,
				RemoteID:  rr.ID,
				Elapsed:   time.Since(start),
			}, nil
		}
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		g.logger.Warn("remote conversion unavailable, using local codec",
			"direction", dir, "error", err)
	}

	return g.Local(text, dir), nil
}

// Local converts with the codec only.
func (g *Gateway) Local(text string, dir Direction) Result {
	start := time.Now()
	var out string
	if dir == BrailleToText {
		out = g.codec.Decode(text)
	} else {
		out = g.codec.Encode(text)
	}
	return Result{
		Original:  text,
		Output:    out,
		Direction: dir,
		Source:    SourceLocal,
		Elapsed:   time.Since(start),
	}
}

// Codec returns the local codec.
func (g *Gateway) Codec() *braille.Codec { return g.codec }
