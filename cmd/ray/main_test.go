package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ray "github.com/akave-ai/goray"
	"github.com/akave-ai/goray/internal/transport"
)

func TestApply_Order(t *testing.T) {
	o, values, err := parse([]string{
		"--screen", "deploy", "--text", "hi", "--color", "RED", "--html", "<p>x</p>",
		"--confetti", "--charles", "--clear-all", "v1", "v2",
	})
	require.NoError(t, err)

	s := ray.New(ray.WithTransport(transport.Discard), ray.WithLogger(zerolog.Nop()))
	apply(s, o, values)

	var kinds []string
	for _, p := range s.Request().Payloads {
		kinds = append(kinds, p.Type)
	}
	assert.Equal(t, []string{"new_screen", "clear_all", "log", "custom", "custom", "color", "custom", "confetti"}, kinds)
	assert.Equal(t, ray.ColorMessage{Color: ray.Red}, s.Request().Payloads[5].Content)
	assert.Equal(t, -1, o.die)
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"--version"}, &out, nil))
	assert.True(t, strings.HasPrefix(out.String(), "ray "))
}

func TestRun_ListTransports(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"--list-transports"}, &out, nil))
	assert.Contains(t, out.String(), "discard")
	assert.Contains(t, out.String(), "http")
}

func TestRun_SendsWithDiscard(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RAY_TRANSPORT", "discard")
	require.NoError(t, run([]string{"--text", "hello"}, &bytes.Buffer{}, nil))
}

func TestRun_BadFlag(t *testing.T) {
	assert.Error(t, run([]string{"--nope"}, &bytes.Buffer{}, nil))
}

func TestRun_Help(t *testing.T) {
	assert.NoError(t, run([]string{"--help"}, &bytes.Buffer{}, nil))
}

func TestApply_EmptyTextAndHTML(t *testing.T) {
	o, values, err := parse([]string{"--text", "", "--html="})
	require.NoError(t, err)

	s := ray.New(ray.WithTransport(transport.Discard), ray.WithLogger(zerolog.Nop()))
	apply(s, o, values)

	require.Len(t, s.Request().Payloads, 2)
	assert.Equal(t, ray.TextMessage{Label: ray.LabelText, Content: ""}, s.Request().Payloads[0].Content)
	assert.Equal(t, ray.HTMLMessage{Label: ray.LabelHTML, Content: ""}, s.Request().Payloads[1].Content)
}

func TestRun_EndpointFlagBeatsInvalidEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RAY_TRANSPORT", "discard")
	t.Setenv("RAY_ENDPOINT", "not a url")

	require.Error(t, run([]string{"--text", "x"}, &bytes.Buffer{}, nil))
	require.NoError(t, run([]string{"--endpoint", "http://127.0.0.1:4000", "--text", "x"}, &bytes.Buffer{}, nil))
}

func TestRun_Die(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RAY_TRANSPORT", "discard")

	codes := make(chan int, 1)
	done := make(chan struct{})
	returned := false
	go func() {
		defer close(done)
		_ = run([]string{"--die", "2", "giving up"}, &bytes.Buffer{}, func(code int) { codes <- code })
		returned = true
	}()
	<-done

	assert.Equal(t, 2, <-codes)
	assert.False(t, returned, "run must not return after --die")
}
