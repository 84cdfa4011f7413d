package game

import (
	"fmt"

	"github.com/ardanlabs/connect4/cmd/connect/engine"
)

type playerSet struct {
	Blue Player
	Red  Player
}

// Players represents the set of players that can be used. Blue places the
// engine's first marker and Red the second.
var Players = playerSet{
	Blue: newPlayer("Blue", engine.PlayerA),
	Red:  newPlayer("Red", engine.PlayerB),
}

// =============================================================================

// Set of known players.
var players = make(map[string]Player)

// Player represents a player in the system.
type Player struct {
	name   string
	engine engine.Player
}

func newPlayer(name string, ep engine.Player) Player {
	p := Player{name: name, engine: ep}
	players[name] = p
	return p
}

// fromEngine maps an engine side back to the player.
func fromEngine(ep engine.Player) Player {
	if ep == engine.PlayerB {
		return Players.Red
	}
	return Players.Blue
}

// IsZero checks of the player is set to its zero value.
func (p Player) IsZero() bool {
	return p.name == ""
}

// String returns the name of the player.
func (p Player) String() string {
	return p.name
}

// Other returns the opponent of the player.
func (p Player) Other() Player {
	if p == Players.Blue {
		return Players.Red
	}
	return Players.Blue
}

// Equal provides support for the go-cmp package and testing.
func (p Player) Equal(p2 Player) bool {
	return p.name == p2.name
}

// =============================================================================

// ParsePlayer parses the string value and returns a player if one exists.
func ParsePlayer(value string) (Player, error) {
	player, exists := players[value]
	if !exists {
		return Player{}, fmt.Errorf("invalid player %q", value)
	}

	return player, nil
}

// MustParsePlayer parses the string value and returns a player if one exists. If
// an error occurs the function panics.
func MustParsePlayer(value string) Player {
	role, err := ParsePlayer(value)
	if err != nil {
		panic(err)
	}

	return role
}
