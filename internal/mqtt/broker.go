package mqtt

import (
	"fmt"
	"log/slog"

	mochi "github.com/mochi-mqtt/server/v2"
	"github.com/mochi-mqtt/server/v2/hooks/auth"
	"github.com/mochi-mqtt/server/v2/listeners"
	"github.com/mstampfer/coin-crab/internal/config"
)

// Broker is the embedded MQTT broker clients connect to. Running it
// in-process keeps the deployment to a single binary.
type Broker struct {
	server *mochi.Server
	log    *slog.Logger
}

// StartBroker starts the embedded broker on the configured address and
// serves in the background.
func StartBroker(cfg config.MQTTConfig, log *slog.Logger) (*Broker, error) {
	server := mochi.New(&mochi.Options{
		Logger: log.With(slog.String("component", "mqtt-broker")),
	})

	// open broker, clients are trusted on this deployment
	if err := server.AddHook(new(auth.AllowHook), nil); err != nil {
		return nil, fmt.Errorf("adding auth hook: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	tcp := listeners.NewTCP(listeners.Config{ID: "coin-crab-tcp", Address: addr})
	if err := server.AddListener(tcp); err != nil {
		return nil, fmt.Errorf("adding tcp listener on %s: %w", addr, err)
	}

	go func() {
		if err := server.Serve(); err != nil {
			log.Error("mqtt broker stopped", slog.String("error", err.Error()))
		}
	}()

	log.Info("mqtt broker started", slog.String("addr", addr))
	return &Broker{server: server, log: log}, nil
}

func (b *Broker) Close() error {
	return b.server.Close()
}
