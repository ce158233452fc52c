package redis

import (
	"fmt"

	"github.com/mcoot/wordmove/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "wordmove"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// movesKey returns the Redis key for the LIST of move records of a game
func movesKey(id model.GameID) string {
	return fmt.Sprintf("%s:moves:%s", keyPrefix, id)
}
