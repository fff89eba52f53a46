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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

func rawNotification(t *testing.T, instance string, payload map[string]any) string {
	t.Helper()
	raw, err := json.Marshal(notification{
		ID:       "1",
		Channel:  shared.PolicyChange,
		Payload:  payload,
		SentAt:   time.Now(),
		Instance: instance,
	})
	require.NoError(t, err)
	return string(raw)
}

func TestBrokerHandle(t *testing.T) {
	t.Run("delivers notifications of other instances", func(t *testing.T) {
		b := NewPostgreSQLBroker(nil)
		ch := make(chan map[string]any, 1)
		b.listeners[shared.PolicyChange] = &listener{subscribers: []chan map[string]any{ch}}

		b.handle(shared.PolicyChange, rawNotification(t, "other", map[string]any{"userId": "user-1"}))

		select {
		case payload := <-ch:
			assert.Equal(t, "user-1", payload["userId"])
		default:
			t.Fatal("expected a payload")
		}
	})

	t.Run("skips own notifications", func(t *testing.T) {
		b := NewPostgreSQLBroker(nil)
		ch := make(chan map[string]any, 1)
		b.listeners[shared.PolicyChange] = &listener{subscribers: []chan map[string]any{ch}}

		b.handle(shared.PolicyChange, rawNotification(t, b.instance, nil))
		assert.Len(t, ch, 0)
	})

	t.Run("drops notifications for full subscribers", func(t *testing.T) {
		b := NewPostgreSQLBroker(nil)
		ch := make(chan map[string]any, 1)
		b.listeners[shared.PolicyChange] = &listener{subscribers: []chan map[string]any{ch}}

		b.handle(shared.PolicyChange, rawNotification(t, "other", map[string]any{"n": 1}))
		b.handle(shared.PolicyChange, rawNotification(t, "other", map[string]any{"n": 2}))

		assert.Len(t, ch, 1)
		assert.EqualValues(t, 1, (<-ch)["n"])
	})

	t.Run("ignores garbage", func(t *testing.T) {
		b := NewPostgreSQLBroker(nil)
		ch := make(chan map[string]any, 1)
		b.listeners[shared.PolicyChange] = &listener{subscribers: []chan map[string]any{ch}}

		b.handle(shared.PolicyChange, "not json")
		assert.Len(t, ch, 0)
	})
}

func TestBrokerHealthAndClose(t *testing.T) {
	b := NewPostgreSQLBroker(nil)
	ch := make(chan map[string]any, 1)
	b.listeners[shared.ActiveBusinessChange] = &listener{subscribers: []chan map[string]any{ch}}
	assert.True(t, b.IsHealthy())

	b.listeners[shared.ActiveBusinessChange].failed = true
	assert.False(t, b.IsHealthy())

	require.NoError(t, b.Close(context.Background()))
	_, open := <-ch
	assert.False(t, open)
	assert.Empty(t, b.listeners)
}
