package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServerConfigShutdownTimeout(t *testing.T) {
	t.Run("zero falls back to the default", func(t *testing.T) {
		assert.Equal(t, defaultShutdownTimeout, ServerConfig{}.shutdownTimeout())
	})

	t.Run("explicit value wins", func(t *testing.T) {
		cfg := ServerConfig{ShutdownTimeout: 3 * time.Second}
		assert.Equal(t, 3*time.Second, cfg.shutdownTimeout())
	})
}
