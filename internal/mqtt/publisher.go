package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/mstampfer/coin-crab/internal/config"
	"github.com/mstampfer/coin-crab/pkg/types"
)

// Publisher fans snapshots and historical results out over the broker.
// Latest payloads are retained so new subscribers get data immediately.
type Publisher struct {
	cli paho.Client
	log *slog.Logger
}

// NewPublisher connects a publishing client to the broker.
func NewPublisher(cfg config.MQTTConfig, log *slog.Logger) (*Publisher, error) {
	host := cfg.Host
	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}

	opts := paho.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%d", host, cfg.Port)).
		SetClientID("coin-crab-server").
		SetCleanSession(true).
		SetKeepAlive(cfg.KeepAlive).
		SetAutoReconnect(true).
		SetConnectTimeout(cfg.ConnectTimeout)

	cli := paho.NewClient(opts)
	token := cli.Connect()
	if !token.WaitTimeout(cfg.ConnectTimeout) {
		return nil, errors.New("mqtt connect timed out")
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connecting to broker: %w", err)
	}

	return &Publisher{cli: cli, log: log}, nil
}

// PublishLatest publishes the full snapshot to the shared topic and a
// single-currency payload to each per-symbol topic.
func (p *Publisher) PublishLatest(ctx context.Context, data []types.CryptoCurrency) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	if err := p.publish(ctx, types.TopicLatest, 1, true, payload); err != nil {
		return fmt.Errorf("publishing %s: %w", types.TopicLatest, err)
	}

	for _, c := range data {
		single, err := json.Marshal(c)
		if err != nil {
			p.log.Warn("skipping per-symbol publish",
				slog.String("symbol", c.Symbol), slog.String("error", err.Error()))
			continue
		}
		topic := types.SymbolTopic(c.Symbol)
		if err := p.publish(ctx, topic, 1, true, single); err != nil {
			p.log.Warn("per-symbol publish failed",
				slog.String("topic", topic), slog.String("error", err.Error()))
		}
	}
	return nil
}

// PublishHistorical retains a historical result on its symbol/timeframe
// topic.
func (p *Publisher) PublishHistorical(ctx context.Context, res types.HistoricalResult) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshaling historical result: %w", err)
	}
	topic := types.HistoricalTopic(res.Symbol, types.Timeframe(res.Timeframe))
	if err := p.publish(ctx, topic, 0, true, payload); err != nil {
		return fmt.Errorf("publishing %s: %w", topic, err)
	}
	return nil
}

// ClearRetained drops the retained message on a topic by publishing an
// empty retained payload.
func (p *Publisher) ClearRetained(ctx context.Context, topic string) error {
	return p.publish(ctx, topic, 1, true, []byte{})
}

func (p *Publisher) publish(ctx context.Context, topic string, qos byte, retained bool, payload []byte) error {
	token := p.cli.Publish(topic, qos, retained, payload)
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Publisher) Close() {
	p.cli.Disconnect(250)
}
