package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix      = "user:%d"
	TrackKeyPrefix     = "track:%d"
	TrackListKeyPrefix = "tracks:list"
)

const (
	UserTTL  = 5 * time.Minute
	TrackTTL = 10 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func TrackKey(trackID uint) string {
	return fmt.Sprintf(TrackKeyPrefix, trackID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateTrack drops the cached detail view of a track. Called on every
// write that changes a track's derived fields (vote cast, comment, delete).
func InvalidateTrack(ctx context.Context, trackID uint) {
	Invalidate(ctx, TrackKey(trackID))
}
