package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vburojevic/loglyzer/internal/domain"
)

func TestParser_Parse(t *testing.T) {
	p := NewParser()

	t.Run("parses a well-formed line", func(t *testing.T) {
		entry, err := p.Parse("2024-01-15 10:31:15 [ERROR] Database query failed: syntax error")
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 1, 15, 10, 31, 15, 0, time.UTC), entry.Timestamp)
		assert.Equal(t, domain.LogLevelError, entry.Level)
		assert.Equal(t, "Database query failed: syntax error", entry.Message)
	})

	t.Run("parses all four levels", func(t *testing.T) {
		tests := []struct {
			token    string
			expected domain.LogLevel
		}{
			{"INFO", domain.LogLevelInfo},
			{"WARNING", domain.LogLevelWarning},
			{"ERROR", domain.LogLevelError},
			{"DEBUG", domain.LogLevelDebug},
		}

		for _, tt := range tests {
			t.Run(tt.token, func(t *testing.T) {
				entry, err := p.Parse("2024-01-15 10:31:15 [" + tt.token + "] message")
				require.NoError(t, err)
				assert.Equal(t, tt.expected, entry.Level)
			})
		}
	})

	t.Run("preserves message text apart from trim", func(t *testing.T) {
		entry, err := p.Parse("2024-01-15 10:31:15 [INFO]   padded message  ")
		require.NoError(t, err)
		assert.Equal(t, "padded message", entry.Message)
	})

	t.Run("accepts an empty message", func(t *testing.T) {
		entry, err := p.Parse("2024-01-15 10:31:15 [INFO] ")
		require.NoError(t, err)
		assert.Equal(t, "", entry.Message)
	})

	t.Run("rejects malformed lines", func(t *testing.T) {
		tests := []struct {
			name string
			line string
		}{
			{"empty line", ""},
			{"free text", "not a log line"},
			{"missing closing bracket", "2024-01-15 10:31:15 [ERROR Database down"},
			{"missing opening bracket", "2024-01-15 10:31:15 ERROR] Database down"},
			{"unknown level token", "2024-01-15 10:31:15 [FATAL] Database down"},
			{"lowercase level token", "2024-01-15 10:31:15 [error] Database down"},
			{"mixed-case level token", "2024-01-15 10:31:15 [Error] Database down"},
			{"short level alias", "2024-01-15 10:31:15 [WARN] Disk almost full"},
			{"impossible month", "2024-13-15 10:31:15 [INFO] message"},
			{"impossible hour", "2024-01-15 25:31:15 [INFO] message"},
			{"date only", "2024-01-15 [INFO] message"},
			{"leading garbage", "x2024-01-15 10:31:15 [INFO] message"},
			{"no space after bracket", "2024-01-15 10:31:15 [INFO]message"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				entry, err := p.Parse(tt.line)
				assert.Nil(t, entry)
				assert.ErrorIs(t, err, ErrMalformed)
			})
		}
	})
}
