package tui

import (
	"encoding/json"
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastetrack/authprobe/pkg/context"
	"github.com/wastetrack/authprobe/pkg/probe"
	"github.com/wastetrack/authprobe/pkg/wasteapi"
)

type stubTransport struct {
	res wasteapi.Result
}

func (s stubTransport) Post(_ context.Context, _ string, _ any) wasteapi.Result {
	return s.res
}

func testModel(res wasteapi.Result) Model {
	engine := probe.NewEngine(stubTransport{res: res},
		probe.WithTokenPrefixLength(probe.DefaultInteractiveTokenPrefixLen))
	return NewModel(engine, probe.DefaultRoster(), "http://localhost:5000/api")
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestProbeSetsLoading(t *testing.T) {
	m := testModel(wasteapi.Ok{
		StatusCode: http.StatusOK,
		Body:       json.RawMessage(`{"success":true,"user":{"username":"admin_user","role":"admin"},"token":"tok-abc"}`),
	})

	updated, cmd := m.Update(keyMsg("enter"))
	m = updated.(Model)
	assert.True(t, m.loading)
	require.NotNil(t, cmd)

	// A second press while in flight is ignored.
	updated, cmd = m.Update(keyMsg("enter"))
	m = updated.(Model)
	assert.True(t, m.loading)
	assert.Nil(t, cmd)
}

func TestOutcomeClearsLoading(t *testing.T) {
	m := testModel(wasteapi.Ok{
		StatusCode: http.StatusOK,
		Body:       json.RawMessage(`{"success":true,"user":{"username":"admin_user","role":"admin"},"token":"tok-abc"}`),
	})

	updated, _ := m.Update(keyMsg("enter"))
	m = updated.(Model)

	msg := m.probeCmd(m.roster[m.cursor])()
	outcome, ok := msg.(outcomeMsg)
	require.True(t, ok)

	updated, _ = m.Update(outcome)
	m = updated.(Model)
	assert.False(t, m.loading)
	require.IsType(t, probe.Success{}, m.latest)

	view := m.View()
	assert.Contains(t, view, "✅ Login successful")
	assert.Contains(t, view, "admin_user")
	assert.Contains(t, view, "tok-ab…")
	assert.NotContains(t, view, "tok-abc")
}

func TestRejectedRendersPrettyJSON(t *testing.T) {
	m := testModel(wasteapi.HTTPError{
		StatusCode: http.StatusUnauthorized,
		Body:       json.RawMessage(`{"message":"Invalid credentials"}`),
	})

	msg := m.probeCmd(m.roster[0])()
	updated, _ := m.Update(msg)
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, "❌ Login failed")
	assert.Contains(t, view, `"status": 401`)
	assert.Contains(t, view, `"message": "Invalid credentials"`)
	assert.Contains(t, view, "admin@wastemanagement.com")
	assert.Contains(t, view, "Admin123!")
}

func TestCursorWraps(t *testing.T) {
	m := testModel(wasteapi.TransportError{Reason: "unused"})

	updated, _ := m.Update(keyMsg("k"))
	m = updated.(Model)
	assert.Equal(t, len(m.roster)-1, m.cursor)

	updated, _ = m.Update(keyMsg("j"))
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestFooterShowsDiagnostics(t *testing.T) {
	m := testModel(wasteapi.TransportError{Reason: "unused"})
	assert.Contains(t, m.View(), "http://localhost:5000/api")
}
