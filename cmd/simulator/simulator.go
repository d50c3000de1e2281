package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/seu-repo/solartech/internal/adapter/ingest"
	"github.com/seu-repo/solartech/internal/domain"
)

// SimulatorConfig holds the gateway simulator configuration.
type SimulatorConfig struct {
	ServerURL          string
	ProjectID          string
	Interval           time.Duration
	BaseGenerationKwh  float64
	BaseConsumptionKwh float64
	// AnomalyRate is the fraction of readings reporting a degraded or
	// failed system.
	AnomalyRate float64
}

// Simulator plays a solar site gateway: it connects to the ingest
// endpoint and pushes synthetic daily production readings.
type Simulator struct {
	config *SimulatorConfig
	conn   *websocket.Conn
	log    *zap.Logger
	rng    *rand.Rand

	// day advances one calendar day per reading so aggregation windows
	// fill up quickly during demos.
	day time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type ackMessage struct {
	OK       string `json:"ok,omitempty"`
	RecordID string `json:"record_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

func NewSimulator(config *SimulatorConfig, log *zap.Logger) *Simulator {
	return &Simulator{
		config:   config,
		log:      log,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		day:      time.Now().AddDate(0, 0, -30).Truncate(24 * time.Hour),
		stopChan: make(chan struct{}),
	}
}

// Connect dials the ingest endpoint for the configured project.
func (s *Simulator) Connect() error {
	url := fmt.Sprintf("%s/%s", s.config.ServerURL, s.config.ProjectID)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	s.conn = conn
	s.log.Info("Connected to ingest server",
		zap.String("url", url),
		zap.String("projectID", s.config.ProjectID),
	)

	s.wg.Add(2)
	go s.readAcks()
	go s.sendLoop()

	return nil
}

// Stop closes the connection and waits for the loops to exit.
func (s *Simulator) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	if s.conn != nil {
		s.conn.Close()
	}
	s.wg.Wait()
}

func (s *Simulator) sendLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	// First reading goes out immediately.
	if err := s.sendReading(); err != nil {
		s.log.Error("Send failed", zap.Error(err))
		return
	}

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			if err := s.sendReading(); err != nil {
				s.log.Error("Send failed", zap.Error(err))
				return
			}
		}
	}
}

func (s *Simulator) sendReading() error {
	reading := s.nextReading()

	data, err := json.Marshal(reading)
	if err != nil {
		return err
	}

	s.log.Info("Pushing reading",
		zap.Time("date", reading.Date),
		zap.Float64("generation_kwh", reading.GenerationKwh),
		zap.Float64("consumption_kwh", reading.ConsumptionKwh),
		zap.String("system_status", string(reading.SystemStatus)),
	)

	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// nextReading produces a plausible daily sample. Generation swings with
// a +/-30% weather factor; anomalies cut generation and flip the status.
func (s *Simulator) nextReading() ingest.Reading {
	weather := 0.7 + s.rng.Float64()*0.6
	generation := s.config.BaseGenerationKwh * weather
	consumption := s.config.BaseConsumptionKwh * (0.8 + s.rng.Float64()*0.4)
	status := domain.SystemStatusNormal

	if s.rng.Float64() < s.config.AnomalyRate {
		if s.rng.Float64() < 0.3 {
			status = domain.SystemStatusCritical
			generation = 0
		} else {
			status = domain.SystemStatusAlert
			generation *= 0.4
		}
	}

	reading := ingest.Reading{
		Date:           s.day,
		GenerationKwh:  round1(generation),
		ConsumptionKwh: round1(consumption),
		SystemStatus:   status,
	}
	s.day = s.day.AddDate(0, 0, 1)

	return reading
}

func (s *Simulator) readAcks() {
	defer s.wg.Done()

	for {
		select {
		case <-s.stopChan:
			return
		default:
			_, message, err := s.conn.ReadMessage()
			if err != nil {
				select {
				case <-s.stopChan:
				default:
					s.log.Error("Read error", zap.Error(err))
				}
				return
			}

			var a ackMessage
			if err := json.Unmarshal(message, &a); err != nil {
				s.log.Error("Invalid ack", zap.Error(err))
				continue
			}
			if a.Error != "" {
				s.log.Warn("Reading rejected", zap.String("error", a.Error))
				continue
			}
			s.log.Info("Reading accepted", zap.String("recordID", a.RecordID))
		}
	}
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
