package messages

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	// MessageBufferSize represents the maximum size of an encoded message
	MessageBufferSize = 1 << 20
)

// Message types
const (
	MessageTypeClosed              = "closed"
	MessageTypeEcho                = "echo"
	MessageTypeBroadcast           = "broadcast"
	MessageTypePlayerID            = "player_id"
	MessageTypeSetSpeed            = "set_speed"
	MessageTypeSetDirection        = "set_direction"
	MessageTypeSetMissileRange     = "set_missile_range"
	MessageTypeSetMissileDirection = "set_missile_direction"
	MessageTypeSetMissilePower     = "set_missile_power"
	MessageTypeFireMissile         = "fire_missile"
	MessageTypeLogin               = "login"
	MessageTypeLoginFailure        = "login_failure"
	MessageTypeServerGameUpdate    = "game_update"
	MessageTypeServerGameOver      = "game_over"
)

// inboundTypes are the message types a participant may send once a session has started.
var inboundTypes = map[string]bool{
	MessageTypeClosed:              true,
	MessageTypeEcho:                true,
	MessageTypeBroadcast:           true,
	MessageTypePlayerID:            true,
	MessageTypeSetSpeed:            true,
	MessageTypeSetDirection:        true,
	MessageTypeSetMissileRange:     true,
	MessageTypeSetMissileDirection: true,
	MessageTypeSetMissilePower:     true,
	MessageTypeFireMissile:         true,
}

// IsInboundType reports whether a participant may send messages of type t during a session.
func IsInboundType(t string) bool {
	return inboundTypes[t]
}

// Message represents a generic message for serialization/deserialization
type Message struct {
	Type    string             `msgpack:"type"`
	Payload msgpack.RawMessage `msgpack:"payload,omitempty"`
}

// NewMessage encodes payload into a message of type t. A nil payload leaves the payload empty.
func NewMessage(t string, payload interface{}) (*Message, error) {
	m := &Message{Type: t}
	if payload == nil {
		return m, nil
	}
	b, err := msgpack.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %v", t, err)
	}
	m.Payload = b
	return m, nil
}

// Decode unmarshals the message payload into v.
func (m *Message) Decode(v interface{}) error {
	if len(m.Payload) == 0 {
		return fmt.Errorf("message %s has no payload", m.Type)
	}
	if err := msgpack.Unmarshal(m.Payload, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s payload: %v", m.Type, err)
	}
	return nil
}

type Login struct {
	Name string `msgpack:"name"`
	// Role is either "player" or "viewer"
	Role string `msgpack:"role"`
}

const (
	RolePlayer = "player"
	RoleViewer = "viewer"
)

type LoginFailure struct {
	Reason string `msgpack:"reason"`
}

type Echo struct {
	Text string `msgpack:"text"`
}

type Broadcast struct {
	From string `msgpack:"from"`
	Text string `msgpack:"text"`
}

// PlayerID answers a player_id request with the entity id the sender controls.
type PlayerID struct {
	ID uint32 `msgpack:"id"`
}

type ClientSetSpeed struct {
	Speed uint8 `msgpack:"speed"`
}

type ClientSetDirection struct {
	Degrees float64 `msgpack:"degrees"`
}

type ClientSetMissileRange struct {
	Range uint8 `msgpack:"range"`
}

type ClientSetMissileDirection struct {
	Degrees float64 `msgpack:"degrees"`
}

type ClientSetMissilePower struct {
	Power uint8 `msgpack:"power"`
}

// ServerGameUpdate carries the entities that changed during a tick and the events it produced.
type ServerGameUpdate struct {
	Tick     uint64         `msgpack:"tick"`
	Entities []EntityUpdate `msgpack:"entities"`
	Events   []EventUpdate  `msgpack:"events"`
}

type EntityUpdate struct {
	ID            uint32  `msgpack:"id"`
	Kind          string  `msgpack:"kind"`
	X             float64 `msgpack:"x"`
	Y             float64 `msgpack:"y"`
	W             float64 `msgpack:"w"`
	H             float64 `msgpack:"h"`
	DX            float64 `msgpack:"dx"`
	DY            float64 `msgpack:"dy"`
	Speed         float64 `msgpack:"speed"`
	Health        float64 `msgpack:"health"`
	MaxHealth     float64 `msgpack:"max_health"`
	LifeState     string  `msgpack:"life_state"`
	DyingFraction float64 `msgpack:"dying_fraction"`
	Distance      float64 `msgpack:"distance"`

	Player  *PlayerUpdate  `msgpack:"player,omitempty"`
	Missile *MissileUpdate `msgpack:"missile,omitempty"`
}

type PlayerUpdate struct {
	MissileDX               float64 `msgpack:"missile_dx"`
	MissileDY               float64 `msgpack:"missile_dy"`
	MissileRange            float64 `msgpack:"missile_range"`
	MissilePower            float64 `msgpack:"missile_power"`
	MissileMana             float64 `msgpack:"missile_mana"`
	MissileManaMax          float64 `msgpack:"missile_mana_max"`
	MissileManaRechargeRate float64 `msgpack:"missile_mana_recharge_rate"`
	MoveMana                float64 `msgpack:"move_mana"`
	MoveManaMax             float64 `msgpack:"move_mana_max"`
	MoveManaRechargeRate    float64 `msgpack:"move_mana_recharge_rate"`
	Experience              float64 `msgpack:"experience"`
}

type MissileUpdate struct {
	Range       float64 `msgpack:"range"`
	Power       float64 `msgpack:"power"`
	Owner       uint32  `msgpack:"owner"`
	HitMaxRange bool    `msgpack:"hit_max_range"`
}

type EventUpdate struct {
	Kind    string  `msgpack:"kind"`
	Shooter uint32  `msgpack:"shooter,omitempty"`
	Missile uint32  `msgpack:"missile,omitempty"`
	Target  uint32  `msgpack:"target,omitempty"`
	Range   float64 `msgpack:"range,omitempty"`
	Power   float64 `msgpack:"power,omitempty"`
}

// ServerGameOver announces the end of a game. Winner is the winner's name, or empty for a draw.
type ServerGameOver struct {
	Winner string `msgpack:"winner"`
}
