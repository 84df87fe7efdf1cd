package logger

import (
	"context"
	log "log/slog"
)

// TraceIDKey chave do trace no Context
const TraceIDKey = "trace_id"

// ContextHandler extrai o trace_id do ctx e anexa ao registro
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			r.AddAttrs(log.String(TraceIDKey, traceID))
		}
	}
	return h.Handler.Handle(ctx, r)
}
