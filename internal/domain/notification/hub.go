package notification

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/puzpuzpuz/xsync"
	"github.com/questx-lab/leaderboard/pkg/ws"
	"github.com/questx-lab/leaderboard/pkg/xcontext"
	"golang.org/x/exp/slices"
)

// Hub holds all live connections. Every broadcast message is sent to all of
// them, there is no topic.
type Hub struct {
	clients  *xsync.MapOf[string, *ws.Client]
	upgrader websocket.Upgrader
}

func NewHub(allowedOrigins []string) *Hub {
	return &Hub{
		clients: xsync.NewMapOf[*ws.Client](),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || slices.Contains(allowedOrigins, "*") {
					return true
				}

				return slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

func (h *Hub) Register(client *ws.Client) {
	h.clients.Store(client.ID, client)
}

func (h *Hub) Unregister(client *ws.Client) {
	h.clients.Delete(client.ID)
}

func (h *Hub) Count() int {
	return h.clients.Size()
}

// Broadcast sends msg to every open client and returns the number of clients
// which received it. Clients which cannot keep up with broadcasts are closed.
func (h *Hub) Broadcast(msg []byte) int {
	sent := 0
	h.clients.Range(func(id string, client *ws.Client) bool {
		err := client.Send(msg)
		switch {
		case err == nil:
			sent++
		case errors.Is(err, ws.ErrBufferFull):
			go client.Close()
		}

		return true
	})

	return sent
}

// ServeWebsocket upgrades the request and blocks until the connection is
// closed.
func (h *Hub) ServeWebsocket(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot upgrade websocket connection: %v", err)
		return
	}

	client := ws.NewClient(uuid.NewString(), conn)
	client.OnClose(func(c *ws.Client) {
		h.Unregister(c)
		xcontext.Logger(ctx).Debugf("Client %s disconnected, %d left", c.ID, h.Count())
	})

	client.Open()
	h.Register(client)
	if client.State() != ws.Open {
		h.Unregister(client)
		return
	}

	xcontext.Logger(ctx).Debugf("Client %s connected from %s", client.ID, r.RemoteAddr)

	client.Run()
}

// Close closes all clients. Clients are unregistered by their close callback.
func (h *Hub) Close() {
	h.clients.Range(func(id string, client *ws.Client) bool {
		client.Close()
		return true
	})
}
