package client

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cbodonnell/arena/pkg/messages"
)

// ErrQuit is returned by ParseCommand for the quit command, together with the closed message to send.
var ErrQuit = errors.New("quit")

// Usage lists the commands understood by ParseCommand.
const Usage = `commands:
  speed <0-3>      set speed tier
  dir <degrees>    set heading
  range <0-3>      set missile range tier
  aim <degrees>    set missile heading
  power <0-3>      set missile power tier
  fire             fire a missile
  echo <text>      echo text back
  say <text>       broadcast text to the session
  id               ask for your player id
  quit             leave the session`

// ParseCommand turns one line of console input into a message for the server.
func ParseCommand(line string) (*messages.Message, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	cmd, args := fields[0], fields[1:]
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd))

	switch cmd {
	case "speed":
		tier, err := parseTier(args)
		if err != nil {
			return nil, err
		}
		return messages.NewMessage(messages.MessageTypeSetSpeed, &messages.ClientSetSpeed{Speed: tier})
	case "dir":
		degrees, err := parseDegrees(args)
		if err != nil {
			return nil, err
		}
		return messages.NewMessage(messages.MessageTypeSetDirection, &messages.ClientSetDirection{Degrees: degrees})
	case "range":
		tier, err := parseTier(args)
		if err != nil {
			return nil, err
		}
		return messages.NewMessage(messages.MessageTypeSetMissileRange, &messages.ClientSetMissileRange{Range: tier})
	case "aim":
		degrees, err := parseDegrees(args)
		if err != nil {
			return nil, err
		}
		return messages.NewMessage(messages.MessageTypeSetMissileDirection, &messages.ClientSetMissileDirection{Degrees: degrees})
	case "power":
		tier, err := parseTier(args)
		if err != nil {
			return nil, err
		}
		return messages.NewMessage(messages.MessageTypeSetMissilePower, &messages.ClientSetMissilePower{Power: tier})
	case "fire":
		return messages.NewMessage(messages.MessageTypeFireMissile, nil)
	case "echo":
		return messages.NewMessage(messages.MessageTypeEcho, &messages.Echo{Text: rest})
	case "say":
		return messages.NewMessage(messages.MessageTypeBroadcast, &messages.Broadcast{Text: rest})
	case "id":
		return messages.NewMessage(messages.MessageTypePlayerID, nil)
	case "quit", "exit":
		msg, err := messages.NewMessage(messages.MessageTypeClosed, nil)
		if err != nil {
			return nil, err
		}
		return msg, ErrQuit
	default:
		return nil, fmt.Errorf("unknown command %q", cmd)
	}
}

func parseTier(args []string) (uint8, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected a tier")
	}
	n, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil || n > 3 {
		return 0, fmt.Errorf("tier must be 0-3, got %q", args[0])
	}
	return uint8(n), nil
}

func parseDegrees(args []string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected degrees")
	}
	d, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid degrees %q", args[0])
	}
	return d, nil
}

// Describe renders a server message as one console line.
func Describe(msg *messages.Message) string {
	switch msg.Type {
	case messages.MessageTypeServerGameUpdate:
		update := &messages.ServerGameUpdate{}
		if err := msg.Decode(update); err != nil {
			return fmt.Sprintf("bad update: %v", err)
		}
		return fmt.Sprintf("tick %d: %d entities changed, %d events", update.Tick, len(update.Entities), len(update.Events))
	case messages.MessageTypeServerGameOver:
		over := &messages.ServerGameOver{}
		if err := msg.Decode(over); err != nil {
			return fmt.Sprintf("bad game over: %v", err)
		}
		if over.Winner == "" {
			return "game over, no winner"
		}
		return fmt.Sprintf("game over, %s wins", over.Winner)
	case messages.MessageTypeEcho:
		echo := &messages.Echo{}
		if err := msg.Decode(echo); err != nil {
			return fmt.Sprintf("bad echo: %v", err)
		}
		return "echo: " + echo.Text
	case messages.MessageTypeBroadcast:
		b := &messages.Broadcast{}
		if err := msg.Decode(b); err != nil {
			return fmt.Sprintf("bad broadcast: %v", err)
		}
		return fmt.Sprintf("%s: %s", b.From, b.Text)
	case messages.MessageTypePlayerID:
		id := &messages.PlayerID{}
		if err := msg.Decode(id); err != nil {
			return fmt.Sprintf("bad player id: %v", err)
		}
		return fmt.Sprintf("you are player %d", id.ID)
	case messages.MessageTypeLogin:
		login := &messages.Login{}
		if err := msg.Decode(login); err != nil {
			return fmt.Sprintf("bad login: %v", err)
		}
		return fmt.Sprintf("logged in as %s (%s), waiting for a game", login.Name, login.Role)
	case messages.MessageTypeLoginFailure:
		failure := &messages.LoginFailure{}
		if err := msg.Decode(failure); err != nil {
			return fmt.Sprintf("bad login failure: %v", err)
		}
		return "login failed: " + failure.Reason
	case messages.MessageTypeClosed:
		return "session closed"
	default:
		return "unknown message " + msg.Type
	}
}
