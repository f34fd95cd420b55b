package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"SqueezeWatch/internal/domain/models"
	domrepo "SqueezeWatch/internal/domain/repository"
	"SqueezeWatch/pkg/cache"
	xlogger "SqueezeWatch/pkg/logger"
	"SqueezeWatch/pkg/util"

	"github.com/gorilla/websocket"
)

// Stream is a live quote stream over WebSocket. Each trade frame refreshes
// the shared quote cache so probability requests read a fresher last price
// than the polled HTTP quote. Optional; the HTTP client works without it.
type Stream struct {
	apiKey         string
	url            string
	tickers        []string
	reconnectDelay time.Duration
	pingInterval   time.Duration
	quoteTTL       time.Duration

	cache   cache.Service
	metrics domrepo.Metrics
	logger  *xlogger.Logger

	conn      *websocket.Conn
	connected bool
}

// NewStream creates a live quote stream feeding the given cache.
func NewStream(apiKey, url string, tickers []string, reconnectDelay, pingInterval, quoteTTL time.Duration, c cache.Service, metrics domrepo.Metrics, logger *xlogger.Logger) *Stream {
	if reconnectDelay <= 0 {
		reconnectDelay = 5 * time.Second
	}
	if pingInterval <= 0 {
		pingInterval = 30 * time.Second
	}
	if quoteTTL <= 0 {
		quoteTTL = time.Minute
	}
	return &Stream{
		apiKey:         apiKey,
		url:            url,
		tickers:        tickers,
		reconnectDelay: reconnectDelay,
		pingInterval:   pingInterval,
		quoteTTL:       quoteTTL,
		cache:          c,
		metrics:        metrics,
		logger:         logger,
	}
}

// Connect establishes the WebSocket connection.
func (s *Stream) Connect(ctx context.Context) error {
	u := s.url
	if s.apiKey != "" {
		u = fmt.Sprintf("%s?token=%s", s.url, s.apiKey)
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		return fmt.Errorf("stream connect: %w", err)
	}
	s.conn = conn
	s.connected = true
	return nil
}

// Subscribe subscribes to the configured tickers.
func (s *Stream) Subscribe(ctx context.Context) error {
	if s.conn == nil || !s.connected {
		return fmt.Errorf("stream not connected")
	}
	for _, t := range s.tickers {
		msg := map[string]string{"type": "subscribe", "symbol": util.NormalizeTicker(t)}
		if err := s.conn.WriteJSON(msg); err != nil {
			return fmt.Errorf("subscribe %s: %w", t, err)
		}
	}
	return nil
}

type streamTrade struct {
	S string  `json:"s"`
	P float64 `json:"p"`
	V float64 `json:"v"`
	T int64   `json:"t"` // ms
}

type streamMessage struct {
	Type string        `json:"type"`
	Data []streamTrade `json:"data"`
}

// Run reads trade frames and refreshes the quote cache until the context is
// cancelled. Reconnects with delay on read errors.
func (s *Stream) Run(ctx context.Context) error {
	go s.pingLoop(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if s.conn == nil {
			if err := s.reconnect(ctx); err != nil {
				continue
			}
		}

		_, b, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if s.logger != nil {
				s.logger.Warn("stream read error, reconnecting", xlogger.Error(err))
			}
			_ = s.reconnect(ctx)
			continue
		}

		var m streamMessage
		if err := json.Unmarshal(b, &m); err != nil {
			// ignore non-trade frames
			continue
		}
		if m.Type != "trade" {
			continue
		}
		for _, d := range m.Data {
			s.recordTrade(ctx, d)
		}
	}
}

func (s *Stream) recordTrade(ctx context.Context, t streamTrade) {
	ticker := util.NormalizeTicker(t.S)
	q := models.Quote{Ticker: ticker, Price: t.P}
	if b, err := json.Marshal(q); err == nil {
		_ = s.cache.Set(ctx, quoteKey(ticker), string(b), s.quoteTTL)
	}
	if s.metrics != nil {
		s.metrics.RecordLastPrice(ticker, t.P)
	}
}

func (s *Stream) pingLoop(ctx context.Context) {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.conn != nil {
				_ = s.conn.WriteMessage(websocket.PingMessage, nil)
			}
		}
	}
}

func (s *Stream) reconnect(ctx context.Context) error {
	_ = s.Close()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.reconnectDelay):
	}
	if err := s.Connect(ctx); err != nil {
		return err
	}
	return s.Subscribe(ctx)
}

// Close closes the connection.
func (s *Stream) Close() error {
	s.connected = false
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// IsConnected indicates connection status.
func (s *Stream) IsConnected() bool { return s.connected }

var _ domrepo.QuoteStream = (*Stream)(nil)
