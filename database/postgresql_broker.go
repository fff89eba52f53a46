// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"go.uber.org/fx"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/monitoring"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

// postgres rejects NOTIFY payloads of 8000 bytes or more
const maxNotifyPayload = 7999

type notification struct {
	ID       string               `json:"id"`
	Channel  shared.PubSubChannel `json:"channel"`
	Payload  map[string]any       `json:"payload"`
	SentAt   time.Time            `json:"sentAt"`
	Instance string               `json:"instance"`
}

type listener struct {
	subscribers []chan map[string]any
	// failed is set once the connection stopped receiving notifications
	failed bool
}

// PostgreSQLBroker fans out policy and active business changes between
// instances using LISTEN/NOTIFY. Every channel holds one dedicated connection.
type PostgreSQLBroker struct {
	pool *pgxpool.Pool

	mu        sync.RWMutex
	listeners map[shared.PubSubChannel]*listener

	// instance identifies this process, notifications it sent itself are skipped
	instance string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func BrokerFactory(lc fx.Lifecycle, pool *pgxpool.Pool) (shared.PubSubBroker, error) {
	broker := NewPostgreSQLBroker(pool)
	lc.Append(fx.Hook{
		OnStop: broker.Close,
	})
	return broker, nil
}

func NewPostgreSQLBroker(pool *pgxpool.Pool) *PostgreSQLBroker {
	ctx, cancel := context.WithCancel(context.Background())
	return &PostgreSQLBroker{
		pool:      pool,
		listeners: make(map[shared.PubSubChannel]*listener),
		instance:  uuid.NewString(),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (b *PostgreSQLBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	n := notification{
		ID:       uuid.NewString(),
		Channel:  message.GetChannel(),
		Payload:  message.GetPayload(),
		SentAt:   time.Now(),
		Instance: b.instance,
	}

	raw, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("could not marshal notification: %w", err)
	}
	if len(raw) > maxNotifyPayload {
		return fmt.Errorf("notification on %s is %d bytes, the limit is %d", n.Channel, len(raw), maxNotifyPayload)
	}

	if _, err := b.pool.Exec(ctx, "SELECT pg_notify($1, $2)", string(n.Channel), string(raw)); err != nil {
		return fmt.Errorf("could not notify %s: %w", n.Channel, err)
	}

	slog.Debug("published notification", "channel", n.Channel, "id", n.ID)
	return nil
}

// Subscribe returns a buffered channel receiving the payloads other instances publish.
// Payloads are dropped when the subscriber does not keep up.
func (b *PostgreSQLBroker) Subscribe(channel shared.PubSubChannel) (<-chan map[string]any, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan map[string]any, 100)

	if l, ok := b.listeners[channel]; ok {
		l.subscribers = append(l.subscribers, ch)
		return ch, nil
	}

	ctx, cancel := context.WithTimeout(b.ctx, 30*time.Second)
	defer cancel()

	conn, err := b.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not acquire connection to listen on %s: %w", channel, err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+pq.QuoteIdentifier(string(channel))); err != nil {
		conn.Release()
		return nil, fmt.Errorf("could not listen on %s: %w", channel, err)
	}

	b.listeners[channel] = &listener{
		subscribers: []chan map[string]any{ch},
	}
	b.wg.Go(func() {
		b.listen(channel, conn)
	})
	return ch, nil
}

func (b *PostgreSQLBroker) listen(channel shared.PubSubChannel, conn *pgxpool.Conn) {
	defer conn.Release()
	for {
		n, err := conn.Conn().WaitForNotification(b.ctx)
		if err != nil {
			if b.ctx.Err() == nil {
				monitoring.Alert(fmt.Sprintf("stopped listening on %s", channel), err)
				b.mu.Lock()
				b.listeners[channel].failed = true
				b.mu.Unlock()
			}
			return
		}
		if n.Channel == string(channel) {
			b.handle(channel, n.Payload)
		}
	}
}

func (b *PostgreSQLBroker) handle(channel shared.PubSubChannel, raw string) {
	var n notification
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		slog.Error("could not unmarshal notification", "channel", channel, "err", err)
		return
	}
	if n.Instance == b.instance {
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	l, ok := b.listeners[channel]
	if !ok {
		return
	}
	for _, subscriber := range l.subscribers {
		select {
		case subscriber <- n.Payload:
		default:
			slog.Warn("subscriber is full, dropping notification", "channel", channel, "id", n.ID)
		}
	}
}

// IsHealthy reports false once a listening connection was lost.
func (b *PostgreSQLBroker) IsHealthy() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, l := range b.listeners {
		if l.failed {
			return false
		}
	}
	return true
}

// Close stops all listeners and hands their connections back to the pool.
func (b *PostgreSQLBroker) Close(ctx context.Context) error {
	b.cancel()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for channel, l := range b.listeners {
		for _, subscriber := range l.subscribers {
			close(subscriber)
		}
		delete(b.listeners, channel)
	}
	return nil
}
