package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/fussel132/hue-controller/internal/config"
	"github.com/fussel132/hue-controller/internal/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const connectionError = "Connection error! Have you entered the correct IP?\n"

// an address nothing listens on
func closedAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	address := l.Addr().String()
	require.NoError(t, l.Close())
	return address
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--log-level", "fatal"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func Test_RootCmd(t *testing.T) {

	t.Run("unreachable bridge: should print the connection error and succeed", func(t *testing.T) {
		// arrange
		address := closedAddress(t)

		// act
		out, err := execute(t, "", "--bridge", address, "--key", "k", "--mode", "detailed")

		// assert
		require.NoError(t, err)
		assert.Equal(t, connectionError, out)
	})

	t.Run("values not preset: should prompt for them before contacting the bridge", func(t *testing.T) {
		// arrange
		address := closedAddress(t)

		// act
		out, err := execute(t, address+"\nk\n", "--mode", "none")

		// assert
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, constants.PromptIntro+"\n"))
		assert.Contains(t, out, constants.PromptBridgeIP)
		assert.Contains(t, out, constants.PromptAppKey)
		assert.True(t, strings.HasSuffix(out, connectionError))
	})

	t.Run("flags: should reach the bridge with the given mode, key and tls setting", func(t *testing.T) {
		// arrange
		paths := make(chan string, 1)
		srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths <- r.URL.Path
			_, _ = w.Write([]byte(`{"lights":{},"groups":{"1":{"name":"Living","type":"Room","lights":[]}},"scenes":{}}`))
		}))
		t.Cleanup(srv.Close)
		address := strings.TrimPrefix(srv.URL, "https://")

		// act
		out, err := execute(t, "", "--bridge", address, "--key", "key123", "--mode", "none", "--insecure", "--timeout", "2s")

		// assert
		require.NoError(t, err)
		assert.Equal(t, "/api/key123/", <-paths)
		assert.Equal(t, "Found 0 lamp(s)!\nFound 1 group(s)!\nFound 0 scene(s)!\n", out)
	})

	t.Run("unknown mode: should print the mode message and succeed", func(t *testing.T) {
		// act
		out, err := execute(t, "", "--bridge", "10.0.0.2", "--key", "k", "--mode", "verbose")

		// assert
		require.NoError(t, err)
		assert.Equal(t, "Unknown mode \"verbose\"! (modes: none, detailed, raw)\n", out)
	})

	t.Run("missing config file: should fail", func(t *testing.T) {
		// act
		out, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"))

		// assert
		assert.Error(t, err)
		assert.Empty(t, out)
	})

	t.Run("unexpected argument: should fail", func(t *testing.T) {
		// act
		_, err := execute(t, "", "extra")

		// assert
		assert.Error(t, err)
	})
}

func Test_NewLogger(t *testing.T) {

	timestamp := regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} `)

	t.Run("stderr sink: should stamp lines with the shared time format", func(t *testing.T) {
		// arrange
		logger, closeLog := newLogger(config.Config{LogLevel: "info"})
		defer closeLog()
		out := &bytes.Buffer{}
		logger.SetOutput(out)

		// act
		logger.Info("hello")

		// assert
		assert.Regexp(t, timestamp, out.String())
	})

	t.Run("log file sink: should stamp lines with the same time format", func(t *testing.T) {
		// arrange
		logFile := filepath.Join(t.TempDir(), "hue-info.log")
		logger, closeLog := newLogger(config.Config{LogLevel: "info", LogFile: logFile})

		// act
		logger.Info("hello")
		closeLog()

		// assert
		written, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Regexp(t, timestamp, string(written))
	})
}
