package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/nats-io/nats.go"

	natsadapter "github.com/samirrijal/flyworld/internal/adapters/nats"
	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/core/usecases"
	"github.com/samirrijal/flyworld/internal/pkg/metrics"
)

const wsPingInterval = 30 * time.Second

// wsWriter serializes writes to a connection; gofiber/websocket allows one
// concurrent writer.
type wsWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *wsWriter) writeJSON(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return w.write(websocket.TextMessage, data)
}

func (w *wsWriter) write(messageType int, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteMessage(messageType, data)
}

// watchClose cancels the returned context once the client goes away. Any
// message the client sends is discarded.
func watchClose(c *websocket.Conn) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		defer cancel()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return ctx, cancel
}

// AnimateHandler streams the frames of a flight from ?from to ?to with
// ?steps segments, one frame per AnimationDelay. The stream stops early
// when the client disconnects.
func AnimateHandler(deps *Dependencies) func(*websocket.Conn) {
	delay := deps.AnimationDelay
	if delay <= 0 {
		delay = usecases.DefaultFrameDelay
	}

	return func(c *websocket.Conn) {
		defer c.Close()
		w := &wsWriter{conn: c}

		metrics.ActiveWebSockets.WithLabelValues("animate").Inc()
		defer metrics.ActiveWebSockets.WithLabelValues("animate").Dec()

		steps := 0
		if s := c.Query("steps"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				_ = w.writeJSON(APIError{Status: 400, Code: "bad_request", Message: "steps must be an integer"})
				return
			}
			steps = n
		}

		path, err := deps.Flights.Path(c.Query("from"), c.Query("to"), steps)
		if err != nil {
			_ = w.writeJSON(pathError(err))
			return
		}

		ctx, cancel := watchClose(c)
		defer cancel()

		metrics.AnimationsStarted.Inc()
		err = usecases.Animate(ctx, path, delay, func(f domain.Frame) error {
			return w.writeJSON(f)
		})
		switch {
		case err == nil:
			_ = w.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
		case errors.Is(err, context.Canceled):
			metrics.AnimationsAborted.Inc()
		default:
			metrics.AnimationsAborted.Inc()
			slog.Debug("animation stopped", "remote", c.RemoteAddr().String(), "error", err)
		}
	}
}

// SearchRelayHandler relays live flight search events to the client,
// optionally filtered by ?destination.
func SearchRelayHandler(nc *nats.Conn) func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		defer c.Close()
		w := &wsWriter{conn: c}

		if nc == nil {
			_ = w.writeJSON(APIError{Status: 503, Code: "unavailable", Message: "event stream not configured"})
			return
		}

		metrics.ActiveWebSockets.WithLabelValues("searches").Inc()
		defer metrics.ActiveWebSockets.WithLabelValues("searches").Dec()

		subject := natsadapter.SearchSubjects
		if dest := c.Query("destination"); dest != "" {
			subject = natsadapter.SearchSubject(dest)
		}

		sub, err := nc.Subscribe(subject, func(msg *nats.Msg) {
			_ = w.writeJSON(json.RawMessage(msg.Data))
		})
		if err != nil {
			slog.Warn("ws search subscribe failed", "subject", subject, "error", err)
			_ = w.writeJSON(APIError{Status: 503, Code: "unavailable", Message: "subscribe failed"})
			return
		}
		defer sub.Unsubscribe() //nolint:errcheck

		ctx, cancel := watchClose(c)
		defer cancel()

		ticker := time.NewTicker(wsPingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := w.write(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}
}

// pathError builds the error frame for a failed path lookup, using the same
// status and code as the REST envelope.
func pathError(err error) APIError {
	status, code, ok := domainStatus(err)
	if !ok {
		return APIError{Status: status, Code: code, Message: "internal error"}
	}
	return APIError{Status: status, Code: code, Message: err.Error()}
}
