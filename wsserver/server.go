package wsserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// DefaultAddr is the façade's default bind address, matching
// original_source/server/mod.rs::serve_ui_forever's hardcoded
// "127.0.0.1:8000".
const DefaultAddr = "127.0.0.1:8000"

// serverConfig holds ListenAndServe's configurable state, built up by
// Option functions per the teacher's functional-options idiom
// (dijkstra.Option, builder.BuilderOption).
type serverConfig struct {
	addr    string
	logger  *slog.Logger
	dataset Dataset
}

// Option configures ListenAndServe.
type Option func(*serverConfig)

// WithAddr overrides the default bind address.
func WithAddr(addr string) Option {
	return func(c *serverConfig) { c.addr = addr }
}

// WithLogger overrides the default slog.Logger (text handler on stderr).
func WithLogger(logger *slog.Logger) Option {
	return func(c *serverConfig) { c.logger = logger }
}

// WithDataset sets the GeoPackage paths/tables map-ready, load-waters and
// load-restricted-airspace load from.
func WithDataset(ds Dataset) Option {
	return func(c *serverConfig) { c.dataset = ds }
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The façade is same-origin-served in the original desktop-app
	// deployment; spec §5 places cross-origin policy out of scope.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ListenAndServe starts the WebSocket façade and blocks until the listener
// fails. Ported from original_source/server/mod.rs::serve_ui_forever,
// adapted from a raw-TCP accept loop plus manual WS handshake
// (tokio-tungstenite's accept_async) to net/http plus gorilla/websocket's
// Upgrader, which is the idiomatic Go equivalent.
func ListenAndServe(opts ...Option) error {
	cfg := serverConfig{
		addr:   DefaultAddr,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handleConnection(w, r, cfg)
	})

	cfg.logger.Info("wsserver listening", "addr", cfg.addr)
	return http.ListenAndServe(cfg.addr, mux)
}

func handleConnection(w http.ResponseWriter, r *http.Request, cfg serverConfig) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		cfg.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	cfg.logger.Info("connection opened", "remote", r.RemoteAddr)

	session := newSession(cfg.dataset, cfg.logger)
	out := make(chan serverEnvelope, 16)

	go session.drainQueue(out)
	go writeLoop(conn, out, cfg.logger)

	readLoop(r.Context(), conn, session, cfg.logger)

	session.close()
	close(out)
}

// readLoop consumes inbound text frames until the connection closes,
// dispatching each to the session and relying on the session's own queue
// to deliver results back through the writer goroutine. Mirrors
// original_source/server/handle.rs::handle_tcp_stream's read side.
func readLoop(ctx context.Context, conn *websocket.Conn, session *Session, logger *slog.Logger) {
	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var env clientEnvelope
		if err := json.Unmarshal(payload, &env); err != nil {
			session.emitError(fmt.Errorf("wsserver: malformed message: %w", err))
			continue
		}

		if err := dispatch(ctx, session, env); err != nil {
			session.emitError(err)
		}
	}
}

// dispatch decodes env's data payload per its type and invokes the
// matching Session handler. Mirrors
// original_source/server/handle.rs::handle_client_msg's match over
// ClientMessage.
func dispatch(ctx context.Context, session *Session, env clientEnvelope) error {
	switch env.Type {
	case msgMapReady:
		session.handleMapReady(ctx)
	case msgLoadWaters:
		session.handleLoadWaters(ctx)
	case msgLoadRestrictedAirspace:
		session.handleLoadRestrictedAirspace(ctx)
	case msgVisibilityGraph:
		var data visibilityGraphData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return fmt.Errorf("wsserver: decoding %s: %w", msgVisibilityGraph, err)
		}
		session.handleVisibilityGraph(data)
	case msgCalcPath:
		var data calcPathData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return fmt.Errorf("wsserver: decoding %s: %w", msgCalcPath, err)
		}
		session.handleCalcPath(data)
	case msgPlan:
		var data planData
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return fmt.Errorf("wsserver: decoding %s: %w", msgPlan, err)
		}
		session.handlePlan(data)
	default:
		return fmt.Errorf("wsserver: unknown client message type %q", env.Type)
	}
	return nil
}

// writeLoop serializes every queued serverEnvelope to the connection as a
// JSON text frame, in the order it is received.
func writeLoop(conn *websocket.Conn, out <-chan serverEnvelope, logger *slog.Logger) {
	for env := range out {
		payload, err := json.Marshal(env)
		if err != nil {
			logger.Error("failed to marshal outbound message", "type", env.Type, "error", err)
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
