package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	profileKeyPrefix = "profile:%d"
	postsListKey     = "posts:active:first"
)

const (
	ProfileTTL   = 5 * time.Minute
	PostsListTTL = 1 * time.Minute
)

func ProfileKey(userID uint) string {
	return fmt.Sprintf(profileKeyPrefix, userID)
}

func PostsListKey() string {
	return postsListKey
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateProfile(ctx context.Context, userID uint) {
	Invalidate(ctx, ProfileKey(userID))
}

func InvalidatePostsList(ctx context.Context) {
	Invalidate(ctx, postsListKey)
}
