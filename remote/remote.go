// Package remote controls a cartoon Player over MQTT. Transport commands
// arrive as JSON on a commands topic; status changes and the playback
// clock are published back.
package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/joho/godotenv"
	"github.com/phanxgames/cartoon"
)

// ErrUnknownAction is returned by Apply for an unrecognized command.
var ErrUnknownAction = errors.New("remote: unknown action")

// queueSize bounds the commands buffered between frames.
const queueSize = 64

// Command is a transport command. At is in seconds and only used by seek.
type Command struct {
	Action string  `json:"action"`
	At     float64 `json:"at,omitempty"`
}

// Progress is published whenever the displayed clock changes.
type Progress struct {
	Time     string  `json:"time"`
	Total    string  `json:"total"`
	Position float64 `json:"position"`
}

// Remote bridges an MQTT client and a Player. MQTT callbacks run on paho's
// goroutines, so commands are queued and only applied by Drain, which must
// be called from the goroutine that owns the Player.
type Remote struct {
	client   mqtt.Client
	config   cartoon.RemoteConfig
	commands chan Command
	lastTime string
}

// New creates a Remote using an already configured client.
func New(client mqtt.Client, cfg cartoon.RemoteConfig) *Remote {
	return &Remote{
		client:   client,
		config:   cfg,
		commands: make(chan Command, queueSize),
	}
}

// NewClient builds a paho client from cfg. onConnect may be nil.
func NewClient(cfg cartoon.RemoteConfig, onConnect mqtt.OnConnectHandler) mqtt.Client {
	options := mqtt.NewClientOptions().
		AddBroker(cfg.URL).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(onConnect)
	return mqtt.NewClient(options)
}

// EnvOverrides replaces the broker URL and credentials in cfg with
// CARTOON_MQTT_URL, CARTOON_MQTT_USERNAME and CARTOON_MQTT_PASSWORD, read
// from the given .env files (default ".env") and then the process
// environment. Returns the error from reading the files; the process
// environment is still applied.
func EnvOverrides(cfg *cartoon.RemoteConfig, files ...string) error {
	env, err := godotenv.Read(files...)
	if env == nil {
		env = map[string]string{}
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return env[key]
	}
	if v := lookup("CARTOON_MQTT_URL"); v != "" {
		cfg.URL = v
	}
	if v := lookup("CARTOON_MQTT_USERNAME"); v != "" {
		cfg.Username = v
	}
	if v := lookup("CARTOON_MQTT_PASSWORD"); v != "" {
		cfg.Password = v
	}
	if err != nil {
		return fmt.Errorf("read env: %w", err)
	}
	return nil
}

// Subscribe listens on the commands topic.
func (r *Remote) Subscribe() error {
	token := r.client.Subscribe(r.config.Topics.Commands, 0, r.handleMessage)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", r.config.Topics.Commands, token.Error())
	}
	return nil
}

// handleMessage decodes a command and queues it. Malformed payloads are
// logged and dropped, as are commands arriving while the queue is full.
func (r *Remote) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var cmd Command
	if err := json.Unmarshal(msg.Payload(), &cmd); err != nil {
		log.Printf("remote: bad command on %s: %v", msg.Topic(), err)
		return
	}
	select {
	case r.commands <- cmd:
	default:
		log.Printf("remote: command queue full, dropping %q", cmd.Action)
	}
}

// Drain applies every queued command to p and returns how many were
// applied.
func (r *Remote) Drain(p *cartoon.Player) int {
	n := 0
	for {
		select {
		case cmd := <-r.commands:
			if err := Apply(p, cmd); err != nil {
				log.Printf("remote: %v", err)
				continue
			}
			n++
		default:
			return n
		}
	}
}

// Apply runs one command against p.
func Apply(p *cartoon.Player, cmd Command) error {
	switch cmd.Action {
	case "toggle":
		p.TogglePlay()
	case "play":
		p.Play()
	case "pause":
		p.Pause()
	case "resume":
		p.Resume()
	case "stop":
		p.Stop()
	case "back":
		p.Back15()
	case "seek":
		p.SetTime(time.Duration(cmd.At * float64(time.Second)))
	default:
		return fmt.Errorf("%w %q", ErrUnknownAction, cmd.Action)
	}
	return nil
}

// Attach publishes p's status changes and clock. Callbacks already set on p
// keep running first.
func (r *Remote) Attach(p *cartoon.Player) {
	prevStatus, prevStep := p.OnStatus, p.OnStep
	p.OnStatus = func(s cartoon.Status) {
		if prevStatus != nil {
			prevStatus(s)
		}
		r.publish(r.config.Topics.Status, s.String())
	}
	p.OnStep = func(now, total time.Duration) {
		if prevStep != nil {
			prevStep(now, total)
		}
		r.publishProgress(now, total)
	}
}

// publishProgress publishes only when the m:ss display changes.
func (r *Remote) publishProgress(now, total time.Duration) {
	clock := cartoon.FormatClock(now)
	if clock == r.lastTime {
		return
	}
	r.lastTime = clock
	b, err := json.Marshal(Progress{
		Time:     clock,
		Total:    cartoon.FormatClock(total),
		Position: cartoon.Meter{Width: 1}.Position(now, total),
	})
	if err != nil {
		return
	}
	r.publish(r.config.Topics.Progress, b)
}

// publish sends without waiting; delivery errors are reported by paho.
func (r *Remote) publish(topic string, payload any) {
	if topic == "" {
		return
	}
	r.client.Publish(topic, 0, false, payload)
}
