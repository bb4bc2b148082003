package ray_test

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ray "github.com/akave-ai/goray"
	"github.com/akave-ai/goray/internal/transport"
)

func useDiscard(t *testing.T, extra ...ray.Option) {
	t.Helper()
	ray.SetDefaults(append([]ray.Option{ray.WithTransport(transport.Discard), ray.WithLogger(zerolog.Nop())}, extra...)...)
	t.Cleanup(func() { ray.SetDefaults() })
}

func TestRay_NoValues(t *testing.T) {
	useDiscard(t)
	assert.Empty(t, ray.Ray().Request().Payloads)
}

func TestRay_OneEntryForManyValues(t *testing.T) {
	useDiscard(t)

	type user struct {
		Name string
		Age  int
	}
	s := ray.Ray("Hello", 42, user{Name: "John", Age: 30})

	req := s.Request()
	require.Len(t, req.Payloads, 1)
	msg, ok := req.Payloads[0].Content.(ray.LogMessage)
	require.True(t, ok)
	assert.Equal(t, []string{`"Hello"`, "42", `ray_test.user{Name:"John", Age:30}`}, msg.Values)
}

func TestSetDefaults_Concurrent(t *testing.T) {
	useDiscard(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			ray.SetDefaults(ray.WithTransport(transport.Discard), ray.WithLogger(zerolog.Nop()))
		}()
		go func() {
			defer wg.Done()
			assert.Len(t, ray.Ray(i).Request().Payloads, 1)
		}()
	}
	wg.Wait()
}

func TestRd_LogsThenExits(t *testing.T) {
	codes := make(chan int, 1)
	useDiscard(t, ray.WithExit(func(code int) { codes <- code }))

	done := make(chan struct{})
	go func() {
		defer close(done)
		ray.Rd("Hello", "Rd")
		t.Error("Rd returned")
	}()
	<-done
	assert.Equal(t, 1, <-codes)
}

func TestWithCallerInfo(t *testing.T) {
	rec := transport.Func(func(string, []byte) error { return nil })
	s := ray.New(ray.WithTransport(rec), ray.WithCallerInfo())

	_, file, line, _ := runtime.Caller(0)
	s.Text("here")
	s.ClearScreen()

	req := s.Request()
	require.Len(t, req.Payloads, 2)
	for _, p := range req.Payloads {
		assert.Equal(t, "goray_test.TestWithCallerInfo", p.Origin.FunctionName)
		assert.Equal(t, filepath.Base(file), filepath.Base(p.Origin.File))
	}
	assert.Equal(t, line+1, req.Payloads[0].Origin.LineNumber)
	assert.Equal(t, line+2, req.Payloads[1].Origin.LineNumber)

	if host, err := os.Hostname(); err == nil && host != "" {
		assert.Equal(t, host, req.Payloads[0].Origin.Hostname)
	}
}

func TestNewFromEnv(t *testing.T) {
	chdirExt(t, t.TempDir())
	t.Setenv("RAY_TRANSPORT", "discard")
	t.Setenv("RAY_ENABLED", "false")
	t.Setenv("RAY_CALLER_INFO", "true")

	s, err := ray.NewFromEnv()
	require.NoError(t, err)
	assert.True(t, s.Disabled())

	s.Text("x")
	assert.Equal(t, "goray_test.TestNewFromEnv", s.Request().Payloads[0].Origin.FunctionName)
}

func TestNewFromEnv_InvalidConfig(t *testing.T) {
	chdirExt(t, t.TempDir())
	t.Setenv("RAY_TRANSPORT", "pigeon")

	_, err := ray.NewFromEnv()
	require.Error(t, err)
}
