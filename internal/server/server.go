package server

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"ccip-dashboard-backend/config"
	"ccip-dashboard-backend/internal/dataservice"
)

// Server exposes the aggregation engine over HTTP and WebSocket
type Server struct {
	config   *config.Config
	data     *dataservice.Service
	upgrader websocket.Upgrader

	clientsMu sync.Mutex
	clients   map[*Client]struct{}
}

// NewServer creates a new server over the given data service
func NewServer(cfg *config.Config, data *dataservice.Service) *Server {
	return &Server{
		config: cfg,
		data:   data,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Dashboard is served from a different origin
			},
		},
		clients: make(map[*Client]struct{}),
	}
}

// Start starts the HTTP server and the stats broadcast loop, and blocks
// until the context is cancelled
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()

	// WebSocket endpoint
	mux.HandleFunc("/ws", s.handleWebSocket)

	// API endpoints
	mux.HandleFunc("/api/dates", s.handleDates)
	mux.HandleFunc("/api/dashboard", s.handleDashboard)
	mux.HandleFunc("/api/networks", s.handleNetworks)
	mux.HandleFunc("/api/tokens", s.handleTokens)
	mux.HandleFunc("/api/fees", s.handleFees)
	mux.HandleFunc("/api/fees/breakdown", s.handleFeeBreakdown)
	mux.HandleFunc("/api/timeseries", s.handleTimeSeries)
	mux.HandleFunc("/api/transactions", s.handleTransactions)
	mux.HandleFunc("/api/chains", s.handleChains)
	mux.HandleFunc("/api/overview", s.handleOverview)
	mux.HandleFunc("/api/reload", s.handleReload)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/health", s.handleHealth)

	server := &http.Server{
		Addr:    s.config.Port,
		Handler: mux,
	}

	go s.broadcastLoop(ctx)

	log.Printf("[HTTP] 🌐 HTTP server listening on %s", s.config.Port)
	log.Printf("[HTTP] 📡 WebSocket endpoint: ws://localhost%s/ws", s.config.Port)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[HTTP] ❌ HTTP server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[HTTP] Shutting down HTTP server...")
	return server.Shutdown(context.Background())
}

// ClientCount returns the number of connected WebSocket clients
func (s *Server) ClientCount() int {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	return len(s.clients)
}

func (s *Server) addClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[client] = struct{}{}
}

func (s *Server) removeClient(client *Client) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	delete(s.clients, client)
}

func (s *Server) activeClients() []*Client {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	clients := make([]*Client, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}
	return clients
}
