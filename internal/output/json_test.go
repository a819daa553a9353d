package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/vburojevic/loglyzer/internal/domain"
)

func sampleStats() *domain.Statistics {
	stats := domain.NewStatistics()
	stats.Total = 5
	stats.CountsByLevel[domain.LogLevelInfo] = 3
	stats.CountsByLevel[domain.LogLevelError] = 2
	stats.TopErrors = []domain.ErrorFrequency{
		{Message: "disk full", Count: 2},
	}
	return stats
}

func TestJSONRenderer_Render(t *testing.T) {
	r := &JSONRenderer{}

	t.Run("emits valid JSON with the contract fields", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, sampleStats(), nil))

		require.True(t, gjson.ValidBytes(buf.Bytes()))
		doc := gjson.ParseBytes(buf.Bytes())

		assert.Equal(t, int64(5), doc.Get("total").Int())
		assert.Equal(t, int64(3), doc.Get("countsByLevel.INFO").Int())
		assert.Equal(t, int64(0), doc.Get("countsByLevel.WARNING").Int())
		assert.Equal(t, int64(2), doc.Get("countsByLevel.ERROR").Int())
		assert.Equal(t, int64(0), doc.Get("countsByLevel.DEBUG").Int())
		assert.Equal(t, "disk full", doc.Get("topErrors.0.message").String())
		assert.Equal(t, int64(2), doc.Get("topErrors.0.count").Int())
	})

	t.Run("zero statistics render as zeros and an empty array", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, domain.NewStatistics(), nil))

		require.True(t, gjson.ValidBytes(buf.Bytes()))
		doc := gjson.ParseBytes(buf.Bytes())

		assert.Equal(t, int64(0), doc.Get("total").Int())
		assert.True(t, doc.Get("topErrors").IsArray())
		assert.Empty(t, doc.Get("topErrors").Array())
		assert.Len(t, doc.Get("countsByLevel").Map(), 4)
	})

	t.Run("round-trips without loss", func(t *testing.T) {
		stats := sampleStats()

		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, stats, nil))

		var decoded domain.Statistics
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, *stats, decoded)
	})

	t.Run("byte-identical across runs", func(t *testing.T) {
		stats := sampleStats()

		var first, second bytes.Buffer
		require.NoError(t, r.Render(&first, stats, nil))
		require.NoError(t, r.Render(&second, stats, nil))
		assert.Equal(t, first.Bytes(), second.Bytes())
	})

	t.Run("does not escape message text", func(t *testing.T) {
		stats := domain.NewStatistics()
		stats.Total = 1
		stats.CountsByLevel[domain.LogLevelError] = 1
		stats.TopErrors = []domain.ErrorFrequency{{Message: "a < b && c > d", Count: 1}}

		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, stats, nil))
		assert.Contains(t, buf.String(), "a < b && c > d")
	})
}
