// Package events is the event publisher: it relays decoder events to
// an MQTT broker, grounded on madpsy-ka9q_ubersdr's mqtt_publisher.go
// (connection setup, reconnect handlers, publish-without-waiting).
package events

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/dsdgo/dsdgo/core"
)

// Config holds the broker connection settings for Publisher.
type Config struct {
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
	QoS         byte
	Retain      bool
}

// Publisher is a core.Observer that relays decoder events to an MQTT
// broker as JSON, one topic per event kind under Config.TopicPrefix.
type Publisher struct {
	client mqtt.Client
	cfg    Config
	log    core.Logger
}

// eventPayload is the wire shape of every message Publisher sends.
type eventPayload struct {
	Timestamp  int64  `json:"timestamp"`
	SyncCode   int    `json:"sync_code,omitempty"`
	Modulation string `json:"modulation,omitempty"`
	Offset     int    `json:"offset,omitempty"`
}

// NewPublisher connects to cfg.Broker and returns a Publisher ready to
// observe a Decoder.
func NewPublisher(cfg Config, log core.Logger) (*Publisher, error) {
	if cfg.ClientID == "" {
		cfg.ClientID = generateClientID()
	}
	if cfg.TopicPrefix == "" {
		cfg.TopicPrefix = "dsdgo"
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(10 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)

	opts.SetOnConnectHandler(func(mqtt.Client) {
		log.Infof("events: connected to broker %s", cfg.Broker)
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Warnf("events: connection lost: %v", err)
	})
	opts.SetReconnectingHandler(func(mqtt.Client, *mqtt.ClientOptions) {
		log.Infof("events: reconnecting to %s", cfg.Broker)
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("events: connect: %w", token.Error())
	}

	return &Publisher{client: client, cfg: cfg, log: log}, nil
}

func generateClientID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return "dsdgo_" + hex.EncodeToString(b)
}

// topicAndPayload derives the MQTT topic and JSON payload for ev, or
// reports ok=false for event kinds the publisher does not relay.
func topicAndPayload(prefix string, ev core.Event, now int64) (topic string, payload eventPayload, ok bool) {
	payload = eventPayload{Timestamp: now}
	switch ev.Kind {
	case core.EventSyncHit:
		payload.SyncCode = int(ev.SyncCode)
		payload.Modulation = ev.Modulation.String()
		payload.Offset = ev.Offset
		return prefix + "/sync", payload, true
	case core.EventNoCarrier:
		return prefix + "/no_carrier", payload, true
	default:
		return "", payload, false
	}
}

// Observe is a core.Observer. It publishes sync-hit and no-carrier
// events asynchronously: the publish call never blocks the caller
// waiting for broker acknowledgment.
func (p *Publisher) Observe(ev core.Event) {
	if p == nil {
		return
	}

	topic, payload, ok := topicAndPayload(p.cfg.TopicPrefix, ev, time.Now().Unix())
	if !ok {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		p.log.Warnf("events: marshal failed: %v", err)
		return
	}

	token := p.client.Publish(topic, p.cfg.QoS, p.cfg.Retain, data)
	go func() {
		if token.Wait() && token.Error() != nil {
			p.log.Warnf("events: publish to %s failed: %v", topic, token.Error())
		}
	}()
}

// Close disconnects from the broker, waiting up to 250ms for
// in-flight publishes to drain.
func (p *Publisher) Close() {
	if p != nil && p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
	}
}
