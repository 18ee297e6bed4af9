package version_test

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Validium-Chain/validium-cli/cmd/version"
	"github.com/Validium-Chain/validium-cli/internal/runtime"
	"github.com/Validium-Chain/validium-cli/internal/testutil"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		expected string
	}{
		{
			name:     "Release version",
			version:  "version v1.0.3-beta0",
			expected: "validium-cli version v1.0.3-beta0",
		},
		{
			name:     "Local build hash",
			version:  "build c8ab91c87c7135aa7c57669bb454e6a3287139d7",
			expected: "validium-cli build c8ab91c87c7135aa7c57669bb454e6a3287139d7",
		},
	}

	original := version.Version
	t.Cleanup(func() { version.Version = original })

	run := func(t *testing.T) string {
		t.Helper()
		ctx := runtime.NewContext(testutil.NewTestLogger(), viper.New())
		cmd := version.New(ctx)

		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{})

		require.NoError(t, cmd.Execute())
		return buf.String()
	}

	t.Run("Default development build", func(t *testing.T) {
		assert.Equal(t, "validium-cli development\n", run(t))
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version.Version = tt.version
			assert.Contains(t, run(t), tt.expected, "Output does not match for %s", tt.name)
		})
	}
}
