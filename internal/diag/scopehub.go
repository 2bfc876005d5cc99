package diag

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/dsdgo/dsdgo/core"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// scopeMessage is the wire shape of every frame sent to a websocket
// client: one JSON object per datascope/sync/no-carrier event.
type scopeMessage struct {
	Kind       string  `json:"kind"`
	SyncCode   int     `json:"sync_code,omitempty"`
	Modulation string  `json:"modulation,omitempty"`
	Offset     int     `json:"offset,omitempty"`
	Min        int     `json:"min,omitempty"`
	Max        int     `json:"max,omitempty"`
	Centre     int     `json:"centre,omitempty"`
	Histogram  [64]int `json:"histogram,omitempty"`
}

// ScopeHub fans out decoder events to every connected websocket
// client, grounded on madpsy-ka9q_ubersdr's connection-registry
// pattern in websocket.go. A client that falls behind misses messages
// rather than being allowed to block the observer callback.
type ScopeHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan scopeMessage
}

// NewScopeHub returns an empty hub ready to accept connections.
func NewScopeHub() *ScopeHub {
	return &ScopeHub{clients: make(map[*websocket.Conn]chan scopeMessage)}
}

// ServeHTTP upgrades the request to a websocket and registers it as a
// scope client until the connection closes.
func (h *ScopeHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	ch := make(chan scopeMessage, 16)
	h.mu.Lock()
	h.clients[conn] = ch
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for msg := range ch {
		data, err := json.Marshal(msg)
		if err != nil {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

// Observe is a core.Observer that broadcasts decoder events to every
// connected client without blocking: a full client channel drops the
// message for that client rather than stalling the sample pump.
func (h *ScopeHub) Observe(ev core.Event) {
	if h == nil {
		return
	}
	msg := toScopeMessage(ev)
	if msg == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.clients {
		select {
		case ch <- *msg:
		default:
		}
	}
}

func toScopeMessage(ev core.Event) *scopeMessage {
	switch ev.Kind {
	case core.EventSyncHit:
		return &scopeMessage{Kind: "sync_hit", SyncCode: int(ev.SyncCode), Modulation: ev.Modulation.String(), Offset: ev.Offset}
	case core.EventNoCarrier:
		return &scopeMessage{Kind: "no_carrier"}
	case core.EventDatascope:
		if ev.Scope == nil {
			return nil
		}
		return &scopeMessage{
			Kind:      "datascope",
			Min:       ev.Scope.Min,
			Max:       ev.Scope.Max,
			Centre:    ev.Scope.Centre,
			Histogram: ev.Scope.Histogram,
		}
	default:
		return nil
	}
}
