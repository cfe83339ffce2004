package output

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastetrack/authprobe/pkg/probe"
)

func mixedOutcomes() []probe.Outcome {
	roster := probe.DefaultRoster()
	return []probe.Outcome{
		probe.Rejected{Cred: roster[0], StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"},
		probe.Success{Cred: roster[1], Username: "john_c", Role: "collector", TokenPrefix: "tok-1234…"},
		probe.Success{Cred: roster[2], Username: "alice_r", Role: "resident", TokenPrefix: "tok-5678…"},
	}
}

func runSink(sink ReportSink, outcomes []probe.Outcome) {
	sink.Begin()
	for _, o := range outcomes {
		sink.Emit(o)
	}
	sink.End()
}

func TestPlainSinkTranscript(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	runSink(NewPlainSink(&buf, "http://localhost:5000/api"), mixedOutcomes())
	transcript := buf.String()

	// Banners bracket the outcomes.
	lines := strings.Split(strings.TrimSpace(transcript), "\n")
	assert.Equal(t, "🔐 Testing login endpoints at http://localhost:5000/api", lines[0])
	assert.Equal(t, "🏁 Login endpoint testing complete", lines[len(lines)-1])

	// One ❌ for the rejection, one ✅ per success, in roster order.
	assert.Equal(t, 1, strings.Count(transcript, "❌"))
	assert.Equal(t, 2, strings.Count(transcript, "✅"))
	rejectedAt := strings.Index(transcript, "❌ admin login failed")
	collectorAt := strings.Index(transcript, "✅ collector login successful")
	residentAt := strings.Index(transcript, "✅ resident login successful")
	require.NotEqual(t, -1, rejectedAt)
	require.NotEqual(t, -1, collectorAt)
	require.NotEqual(t, -1, residentAt)
	assert.Less(t, rejectedAt, collectorAt)
	assert.Less(t, collectorAt, residentAt)

	// Detail lines.
	assert.Contains(t, transcript, "   Status: 401")
	assert.Contains(t, transcript, "   Message: Invalid credentials")
	assert.Contains(t, transcript, "   Username: john_c")
	assert.Contains(t, transcript, "   Token: tok-1234…")
}

func TestPlainSinkTransportFailure(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	cred := probe.DefaultRoster()[2]
	runSink(NewPlainSink(&buf, "http://localhost:5000/api"), []probe.Outcome{
		probe.TransportFailed{Cred: cred, Reason: "connection refused"},
	})

	assert.Contains(t, buf.String(), "❌ resident login failed")
	assert.Contains(t, buf.String(), "   Reason: connection refused")
}

func TestJSONSink(t *testing.T) {
	var buf bytes.Buffer
	runSink(NewJSONSink(&buf), mixedOutcomes())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "rejected", first["outcome"])
	assert.Equal(t, "admin@wastemanagement.com", first["email"])
	assert.Equal(t, float64(http.StatusUnauthorized), first["status"])
	assert.Equal(t, "Invalid credentials", first["message"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "success", second["outcome"])
	assert.Equal(t, "john_c", second["username"])
	assert.Equal(t, "collector", second["role"])
	assert.Equal(t, "tok-1234…", second["token_prefix"])
	assert.NotContains(t, second, "status")
}
