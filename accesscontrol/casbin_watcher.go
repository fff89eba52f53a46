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

package accesscontrol

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/monitoring"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/casbin/casbin/v2/persist"
)

type casbinPubSubWatcher struct {
	broker shared.PubSubBroker

	mu       sync.RWMutex
	callback func(string)
}

type policyChangePubSubMessage struct {
}

func (policyChangePubSubMessage) GetChannel() shared.PubSubChannel {
	return shared.PolicyChange
}

func (policyChangePubSubMessage) GetPayload() map[string]any {
	return map[string]any{
		"action": "update",
	}
}

var _ persist.Watcher = &casbinPubSubWatcher{}

func newCasbinPubSubWatcher(broker shared.PubSubBroker) (*casbinPubSubWatcher, error) {
	ch, err := broker.Subscribe(shared.PolicyChange)
	if err != nil {
		return nil, fmt.Errorf("could not subscribe to policy change topic: %w", err)
	}

	watcher := &casbinPubSubWatcher{
		broker: broker,
	}

	go watcher.listenForUpdates(ch)
	return watcher, nil
}

func (w *casbinPubSubWatcher) listenForUpdates(ch <-chan map[string]any) {
	slog.Debug("listening for policy change notifications")
	for range ch {
		slog.Debug("received policy change notification")
		w.mu.RLock()
		callback := w.callback
		w.mu.RUnlock()
		if callback != nil {
			reload(callback)
		}
	}
}

// reload keeps the listener alive when reloading the policies panics.
func reload(callback func(string)) {
	defer func() {
		if r := recover(); r != nil {
			monitoring.RecoverAndAlert("could not reload policies", r)
		}
	}()
	callback("policy updated")
}

func (w *casbinPubSubWatcher) SetUpdateCallback(callback func(string)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callback = callback
	return nil
}

func (w *casbinPubSubWatcher) Update() error {
	if err := w.broker.Publish(context.Background(), policyChangePubSubMessage{}); err != nil {
		slog.Error("could not publish policy change", "err", err)
	}
	return nil
}

func (w *casbinPubSubWatcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callback = nil
}
