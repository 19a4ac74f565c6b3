package redis

import (
	"fmt"

	"github.com/srinix/gamehub/internal/model"
)

// Key prefix for all hub data
const keyPrefix = "gamehub"

// Key generation functions for each entity type

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// playKey returns the Redis key for the (user, game) play record hash
func playKey(userID model.UserID, gameTitle string) string {
	return fmt.Sprintf("%s:play:%s:%s", keyPrefix, userID, gameTitle)
}

// playsForUserIndexKey returns the Redis key for the SET of a user's play records
func playsForUserIndexKey(userID model.UserID) string {
	return fmt.Sprintf("%s:idx:plays_for_user:%s", keyPrefix, userID)
}

// allPlaysIndexKey returns the Redis key for the SET of all play records
func allPlaysIndexKey() string {
	return fmt.Sprintf("%s:idx:all_plays", keyPrefix)
}

// contactKey returns the Redis key for a ContactMessage
func contactKey(id string) string {
	return fmt.Sprintf("%s:contact:%s", keyPrefix, id)
}
