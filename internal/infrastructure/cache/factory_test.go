//go:build unit
// +build unit

package cache

import (
	"context"
	"testing"

	"github.com/Mumbi286/DukaYetu/internal/pkg/config"
	"github.com/Mumbi286/DukaYetu/internal/pkg/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func TestNewProductCache_UnreachableIsAnError(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	log, _ := testutil.NewBufferLogger(t)

	settings := config.CacheSettings{RedisURL: "redis://" + addr, TTLSeconds: 60}
	c, closeCache, err := NewProductCache(context.Background(), settings, log)

	assert.Error(t, err)
	assert.Nil(t, c)
	assert.Nil(t, closeCache)
}
