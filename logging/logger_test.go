package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		production bool
		debugOn    bool
	}{
		{"production", true, false},
		{"development", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New("welcome-app", tt.production)
			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.Equal(t, tt.debugOn, logger.Core().Enabled(zapcore.DebugLevel))
		})
	}
}
