package ratelimit

import (
	"context"
	"testing"
	"time"

	"project_management/be/biz/util/interceptor"

	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/stretchr/testify/assert"
)

func TestLoginProtection(t *testing.T) {
	mw := NewLoginProtection()
	ctx := context.Background()
	ip := "127.0.0.1"

	fail := func() {
		c := newRequest("/auth/login", ip, consts.StatusUnauthorized)
		mw(ctx, c)
	}

	t.Run("Level 1 Block", func(t *testing.T) {
		mr.FlushAll()

		// two failures are tolerated
		fail()
		fail()
		c := newRequest("/auth/login", ip, 0)
		mw(ctx, c)
		assert.False(t, c.IsAborted())

		// the third failure blocks
		fail()
		assert.True(t, mr.Exists(interceptor.Key(keyLoginBlockMinute+ip)))
		assert.True(t, mr.Exists(keyLoginFailLvl+ip))

		c = newRequest("/auth/login", ip, 0)
		mw(ctx, c)
		assert.True(t, c.IsAborted())
		assert.Equal(t, consts.StatusForbidden, c.Response.StatusCode())
		assert.Contains(t, string(c.Response.Body()), "5 minutes")
	})

	t.Run("Level 2 Block", func(t *testing.T) {
		mr.FlushAll()

		for i := 0; i < 3; i++ {
			fail()
		}
		// minute block and failure window expire, the level key stays
		mr.FastForward(6 * time.Minute)
		assert.False(t, mr.Exists(interceptor.Key(keyLoginBlockMinute+ip)))
		assert.True(t, mr.Exists(keyLoginFailLvl+ip))

		for i := 0; i < 3; i++ {
			fail()
		}
		assert.True(t, mr.Exists(interceptor.Key(keyLoginBlockHour+ip)))

		c := newRequest("/auth/login", ip, 0)
		mw(ctx, c)
		assert.True(t, c.IsAborted())
		assert.Contains(t, string(c.Response.Body()), "24 hours")
	})

	t.Run("Success And Client Errors Do Not Count", func(t *testing.T) {
		mr.FlushAll()

		for i := 0; i < 5; i++ {
			mw(ctx, newRequest("/auth/login", ip, consts.StatusOK))
			mw(ctx, newRequest("/auth/login", ip, consts.StatusBadRequest))
		}
		assert.False(t, mr.Exists(interceptor.Key(keyLoginFail+ip)))

		c := newRequest("/auth/login", ip, 0)
		mw(ctx, c)
		assert.False(t, c.IsAborted())
	})

	t.Run("Different IP", func(t *testing.T) {
		mr.FlushAll()

		for i := 0; i < 3; i++ {
			fail()
		}

		c := newRequest("/auth/login", "10.0.0.2", 0)
		mw(ctx, c)
		assert.False(t, c.IsAborted())
	})
}
