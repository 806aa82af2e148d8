package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// statsSnapshot is the message pushed to WebSocket clients
type statsSnapshot struct {
	Type      string      `json:"type"`
	Overview  interface{} `json:"overview"`
	Dashboard interface{} `json:"dashboard,omitempty"`
	Date      string      `json:"date,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// handleWebSocket upgrades the connection and registers the client. The
// client receives a stats snapshot immediately, then on every broadcast tick.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[HTTP] ❌ WebSocket upgrade failed: %v", err)
		return
	}

	client := NewClient(conn)
	s.addClient(client)
	log.Printf("[HTTP] 📱 New WebSocket client connected: %s", client.ID())

	if snapshot, ok := s.snapshot(); ok {
		if err := client.Send(snapshot); err != nil {
			log.Printf("[HTTP] ❌ Initial snapshot send failed for %s: %v", client.ID(), err)
		}
	}

	go s.clientReader(client)
}

// clientReader drains inbound messages and unregisters the client when the
// connection drops
func (s *Server) clientReader(client *Client) {
	defer func() {
		client.Close()
		s.removeClient(client)
		log.Printf("[HTTP] 📱 Client disconnected: %s", client.ID())
	}()

	client.conn.SetReadLimit(512)
	client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[HTTP] ❌ Read error for client %s: %v", client.ID(), err)
			}
			return
		}
	}
}

// broadcastLoop pushes a stats snapshot to every connected client on a fixed
// interval
func (s *Server) broadcastLoop(ctx context.Context) {
	ticker := time.NewTicker(s.config.StatsBroadcastInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[BROADCAST] Shutting down")
			return
		case <-ticker.C:
			s.broadcast()
		}
	}
}

func (s *Server) broadcast() {
	clients := s.activeClients()
	if len(clients) == 0 {
		return
	}

	snapshot, ok := s.snapshot()
	if !ok {
		return
	}

	for _, client := range clients {
		if err := client.Send(snapshot); err != nil {
			log.Printf("[BROADCAST] ❌ Send failed for %s, dropping client: %v", client.ID(), err)
			client.Close()
			s.removeClient(client)
		}
	}
}

// snapshot builds the broadcast message from the current aggregates
func (s *Server) snapshot() ([]byte, bool) {
	if !s.data.Loaded() {
		return nil, false
	}

	msg := statsSnapshot{
		Type:      "stats",
		Overview:  s.data.OverviewStats(),
		Timestamp: time.Now(),
	}

	if date, ok := s.data.MostRecentDate(); ok {
		if metrics, err := s.data.DashboardMetrics(date); err == nil {
			msg.Dashboard = metrics
			msg.Date = date.Format("2006-01-02")
		}
	}

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[BROADCAST] ❌ Error encoding snapshot: %v", err)
		return nil, false
	}
	return data, true
}
