package ws

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 512
	sendBufferSize = 16
)

var (
	ErrNotOpen    = errors.New("connection is not open")
	ErrBufferFull = errors.New("send buffer is full")
)

type State int32

const (
	Connecting State = iota
	Open
	Closing
	Closed
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Open:
		return "open"
	case Closing:
		return "closing"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Client is a server-to-client push connection. Messages sent by the peer are
// read only to detect the closure and are discarded.
type Client struct {
	ID string

	conn  *websocket.Conn
	state atomic.Int32
	send  chan []byte
	done  chan struct{}

	closeOnce sync.Once
	onClose   func(*Client)
}

func NewClient(id string, conn *websocket.Conn) *Client {
	c := &Client{
		ID:   id,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
	}
	c.state.Store(int32(Connecting))

	return c
}

// OnClose sets the callback which is called exactly once when the connection
// is closed, whatever the reason is.
func (c *Client) OnClose(f func(*Client)) {
	c.onClose = f
}

func (c *Client) State() State {
	return State(c.state.Load())
}

// Open starts pushing queued messages to the peer. It returns false if the
// client is not in Connecting state.
func (c *Client) Open() bool {
	if !c.state.CompareAndSwap(int32(Connecting), int32(Open)) {
		return false
	}

	go c.runWriter()
	return true
}

// Run opens the client if needed and blocks until the connection is closed.
func (c *Client) Run() {
	if c.State() == Connecting && !c.Open() {
		return
	}

	if c.State() != Open {
		return
	}

	c.runReader()
}

// Send queues a message without blocking.
func (c *Client) Send(msg []byte) error {
	if c.State() != Open {
		return ErrNotOpen
	}

	select {
	case <-c.done:
		return ErrNotOpen
	case c.send <- msg:
		return nil
	default:
		return ErrBufferFull
	}
}

// Close sends a close frame and releases the connection. It is safe to call
// Close many times from many goroutines.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.state.Store(int32(Closing))
		close(c.done)

		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
		_ = c.conn.Close()

		c.state.Store(int32(Closed))
		if c.onClose != nil {
			c.onClose(c)
		}
	})
}

func (c *Client) runReader() {
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) runWriter() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return

		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.Close()
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		}
	}
}
