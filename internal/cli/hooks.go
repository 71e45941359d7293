package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chordviz/pkg/observability"
)

// logHooks reports pipeline, cache and focus events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

func (c *CLI) registerHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	observability.SetFocusHooks(h)
}

func (h *logHooks) OnLoadStart(_ context.Context, source string) {
	h.logger.Debug("load start", "dataset", source)
}

func (h *logHooks) OnLoadComplete(_ context.Context, source string, nodes, edges int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "dataset", source, "error", err)
		return
	}
	h.logger.Debug("load done", "dataset", source, "nodes", nodes, "edges", edges, "took", d)
}

func (h *logHooks) OnLayoutStart(_ context.Context, nodes int) {
	h.logger.Debug("layout start", "nodes", nodes)
}

func (h *logHooks) OnLayoutComplete(_ context.Context, degenerate int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("layout failed", "error", err)
		return
	}
	h.logger.Debug("layout done", "degenerate", degenerate, "took", d)
}

func (h *logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h *logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "error", err)
		return
	}
	h.logger.Debug("render done", "formats", formats, "took", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *logHooks) OnFocusChange(_ context.Context, from, to string) {
	h.logger.Debug("focus", "from", orIdle(from), "to", orIdle(to))
}

func orIdle(id string) string {
	if id == "" {
		return "idle"
	}
	return id
}
