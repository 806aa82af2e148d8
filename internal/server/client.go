package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client represents a WebSocket client
type Client struct {
	conn   *websocket.Conn
	sendMu sync.Mutex // Protect concurrent writes to the same connection
}

// NewClient creates a new WebSocket client
func NewClient(conn *websocket.Conn) *Client {
	return &Client{conn: conn}
}

// Send sends data to the client with a write deadline so a stalled
// connection cannot block the broadcaster
func (c *Client) Send(data []byte) error {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.conn.Close()
}

// ID returns a unique identifier for the client
func (c *Client) ID() string {
	return fmt.Sprintf("%p", c.conn)
}
