package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/domain"
	"github.com/seu-repo/solartech/internal/observability/telemetry"
	"github.com/seu-repo/solartech/internal/ports"
)

// Reading is the payload site gateways push over the websocket.
type Reading struct {
	Date           time.Time           `json:"date"`
	GenerationKwh  float64             `json:"generation_kwh"`
	ConsumptionKwh float64             `json:"consumption_kwh"`
	SavingsBRL     float64             `json:"savings_brl,omitempty"`
	SystemStatus   domain.SystemStatus `json:"system_status,omitempty"`
}

type ack struct {
	OK       string `json:"ok,omitempty"`
	RecordID string `json:"record_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Server accepts gateway websocket connections on /ingest/{projectID} and
// feeds readings into the production service. One connection per project
// site; a reconnect replaces the previous connection.
type Server struct {
	production ports.ProductionService
	log        *zap.Logger
	clients    map[string]*websocket.Conn
	mu         sync.RWMutex
	upgrader   websocket.Upgrader
	httpServer *http.Server
}

func NewServer(production ports.ProductionService, log *zap.Logger) *Server {
	return &Server{
		production: production,
		log:        log,
		clients:    make(map[string]*websocket.Conn),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Gateways authenticate at the network layer.
			},
		},
	}
}

func (s *Server) Start(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ingest/", s.handleConnection) // /ingest/{projectID}
	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	for _, conn := range s.clients {
		conn.Close()
	}
	s.clients = make(map[string]*websocket.Conn)
	s.mu.Unlock()

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleConnection(w http.ResponseWriter, r *http.Request) {
	projectID := strings.TrimPrefix(r.URL.Path, "/ingest/")
	if projectID == "" || strings.Contains(projectID, "/") {
		http.Error(w, "project ID required", http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("Failed to upgrade websocket", zap.Error(err))
		return
	}

	s.registerClient(projectID, conn)
	defer s.unregisterClient(projectID, conn)

	s.log.Info("Gateway connected", zap.String("project_id", projectID))

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.log.Error("WebSocket error", zap.String("project_id", projectID), zap.Error(err))
			}
			break
		}

		s.handleReading(r.Context(), projectID, conn, message)
	}
}

func (s *Server) handleReading(ctx context.Context, projectID string, conn *websocket.Conn, data []byte) {
	var reading Reading
	if err := json.Unmarshal(data, &reading); err != nil {
		s.log.Warn("Invalid reading payload", zap.String("project_id", projectID), zap.Error(err))
		s.reply(conn, ack{Error: "invalid payload"})
		return
	}

	record := &domain.ProductionRecord{
		ProjectID:      projectID,
		Date:           reading.Date,
		GenerationKwh:  reading.GenerationKwh,
		ConsumptionKwh: reading.ConsumptionKwh,
		SavingsBRL:     reading.SavingsBRL,
		SystemStatus:   reading.SystemStatus,
	}

	saved, err := s.production.Record(ctx, record)
	if err != nil {
		s.log.Warn("Reading rejected",
			zap.String("project_id", projectID),
			zap.Error(err),
		)
		s.reply(conn, ack{Error: err.Error()})
		return
	}

	telemetry.ProductionReadingsTotal.WithLabelValues(string(saved.SystemStatus)).Inc()
	telemetry.GenerationRecordedTotal.Add(saved.GenerationKwh)

	s.reply(conn, ack{OK: "recorded", RecordID: saved.ID})
}

func (s *Server) reply(conn *websocket.Conn, a ack) {
	if err := conn.WriteJSON(a); err != nil {
		s.log.Debug("Failed to write ack", zap.Error(err))
	}
}

func (s *Server) registerClient(id string, conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.clients[id]; ok {
		old.Close()
	}
	s.clients[id] = conn
	telemetry.IngestConnections.Set(float64(len(s.clients)))
}

func (s *Server) unregisterClient(id string, conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// A reconnect may already have replaced this connection.
	if current, ok := s.clients[id]; ok && current == conn {
		delete(s.clients, id)
	}
	conn.Close()
	telemetry.IngestConnections.Set(float64(len(s.clients)))
}
