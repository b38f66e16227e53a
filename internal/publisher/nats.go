// Package publisher announces closed toll trips on NATS.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/pkordes/toll-plaza/internal/domain"
)

// SubjectPrefix is prepended to the plate token of every trip-closed subject.
const SubjectPrefix = "toll.trips.closed"

// TripClosedMessage is the JSON payload published when a trip is closed.
type TripClosedMessage struct {
	TripID           string    `json:"tripId"`
	NumberPlate      string    `json:"numberPlate"`
	EntryInterchange string    `json:"entryInterchange"`
	ExitInterchange  string    `json:"exitInterchange"`
	EntryTime        time.Time `json:"entryTime"`
	ExitTime         time.Time `json:"exitTime"`
	Distance         int       `json:"distance"`
	Regime           string    `json:"regime"`
	BaseRate         float64   `json:"baseRate"`
	DistanceCost     float64   `json:"distanceCost"`
	SubTotal         float64   `json:"subTotal"`
	Discount         float64   `json:"discount"`
	Total            float64   `json:"total"`
}

// NATSPublisher publishes trip events on a NATS connection.
type NATSPublisher struct {
	nc  *nats.Conn
	log *slog.Logger
}

// NewNATSPublisher connects to url. Connection state changes are logged.
func NewNATSPublisher(url string, log *slog.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("toll-plaza"),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn("nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			log.Info("nats connection closed")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("publisher.NewNATSPublisher: %w", err)
	}
	return &NATSPublisher{nc: nc, log: log}, nil
}

// Close flushes pending messages and closes the connection.
func (p *NATSPublisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
	}
}

// PublishTripClosed publishes closed on SubjectPrefix.<plate>.
func (p *NATSPublisher) PublishTripClosed(ctx context.Context, closed domain.ClosedTrip) error {
	msg := NewTripClosedMessage(closed)
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("publisher.PublishTripClosed: marshal: %w", err)
	}

	subject := Subject(msg.NumberPlate)
	p.log.DebugContext(ctx, "nats publish", "subject", subject)
	if err := p.nc.Publish(subject, b); err != nil {
		return fmt.Errorf("publisher.PublishTripClosed: %w", err)
	}
	return nil
}

// NewTripClosedMessage flattens a closed trip into its wire payload.
func NewTripClosedMessage(closed domain.ClosedTrip) TripClosedMessage {
	t, f := closed.Trip, closed.Fare
	msg := TripClosedMessage{
		TripID:           t.ID.String(),
		NumberPlate:      t.NumberPlate,
		EntryInterchange: t.EntryInterchange,
		EntryTime:        t.EntryTime,
		Distance:         f.Distance,
		Regime:           f.Regime(),
		BaseRate:         f.BaseRate,
		DistanceCost:     f.DistanceCost,
		SubTotal:         f.SubTotal,
		Discount:         f.Discount,
		Total:            f.Total,
	}
	if t.ExitInterchange != nil {
		msg.ExitInterchange = *t.ExitInterchange
	}
	if t.ExitTime != nil {
		msg.ExitTime = *t.ExitTime
	}
	return msg
}

// Subject returns the subject a plate's events are published on.
func Subject(plate string) string {
	return SubjectPrefix + "." + subjectToken(plate)
}

// subjectToken makes s safe as a single NATS subject token.
func subjectToken(s string) string {
	s = strings.TrimSpace(s)
	repl := strings.NewReplacer(" ", "_", ".", "_", ">", "_", "*", "_", "/", "_", "\t", "_")
	s = repl.Replace(s)
	if s == "" {
		s = "_"
	}
	return s
}
