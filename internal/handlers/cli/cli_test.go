package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gabapcia/blocktransfer/internal/config"
	"github.com/gabapcia/blocktransfer/internal/transferbot"
	transferbotMocks "github.com/gabapcia/blocktransfer/internal/transferbot/mocks"
	"github.com/gagliardetto/solana-go"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	signer    solana.PrivateKey
	recipient solana.PublicKey
}

var envKeys = []string{
	"CONFIG_FILE", "LOG_LEVEL", "TELEMETRY", "SERVICE_NAME",
	"STREAM_ENDPOINT", "STREAM_AUTH_TOKEN", "STREAM_AUTH_HEADER",
	"RPC_ENDPOINT", "RPC_TIMEOUT",
	"SIGNING_KEY_PATH", "RECIPIENT_ADDRESS", "TRANSFER_AMOUNT",
	"COMMITMENT", "CONFIRM_TIMEOUT", "CONFIRM_POLL_INTERVAL",
	"REDIS_ADDR", "REDIS_USERNAME", "REDIS_PASSWORD", "REDIS_DB", "REDIS_REPORT_KEY", "REDIS_REPORT_MAX_LEN",
}

// setupEnv clears every variable the command line reads and writes a valid
// configuration to the environment. Values loaded from files are removed
// when the test ends.
func setupEnv(t *testing.T) testEnv {
	t.Helper()

	for _, key := range envKeys {
		name := config.EnvPrefix + "_" + key
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	env := testEnv{
		signer:    solana.NewWallet().PrivateKey,
		recipient: solana.NewWallet().PublicKey(),
	}

	values := make([]int, len(env.signer))
	for i, b := range env.signer {
		values[i] = int(b)
	}
	content, err := json.Marshal(values)
	require.NoError(t, err)

	keyPath := filepath.Join(t.TempDir(), "id.json")
	require.NoError(t, os.WriteFile(keyPath, content, 0o600))

	t.Setenv("BLOCKTRANSFER_STREAM_ENDPOINT", "wss://geyser.example.com")
	t.Setenv("BLOCKTRANSFER_STREAM_AUTH_TOKEN", "secret-token")
	t.Setenv("BLOCKTRANSFER_RPC_ENDPOINT", "https://api.devnet.solana.com")
	t.Setenv("BLOCKTRANSFER_SIGNING_KEY_PATH", keyPath)
	t.Setenv("BLOCKTRANSFER_RECIPIENT_ADDRESS", env.recipient.String())
	t.Setenv("BLOCKTRANSFER_TRANSFER_AMOUNT", "2.0")

	return env
}

func runApp(t *testing.T, build BuildFunc, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp(build)
	app.Writer = &out
	app.ErrWriter = &out

	err := app.Run(t.Context(), append([]string{"blocktransfer", "--log-level", "error"}, args...))
	return out.String(), err
}

func buildNotExpected(t *testing.T) BuildFunc {
	return func(context.Context, config.Config, config.Resolved) (transferbot.Service, func(), error) {
		t.Fatal("build must not be called")
		return nil, nil, nil
	}
}

func TestNewApp(t *testing.T) {
	app := newApp(buildNotExpected(t))

	assert.Equal(t, "blocktransfer", app.Name)

	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.ElementsMatch(t, []string{"start", "check"}, names)

	var flags []string
	for _, flag := range app.Flags {
		flags = append(flags, flag.Names()[0])
	}
	assert.ElementsMatch(t, []string{"config", "log-level", "telemetry", "service-name"}, flags)
}

func TestCheckCommand(t *testing.T) {
	t.Run("prints the resolved transfer without secrets", func(t *testing.T) {
		env := setupEnv(t)

		out, err := runApp(t, buildNotExpected(t), "check")
		require.NoError(t, err)

		assert.Contains(t, out, env.signer.PublicKey().String())
		assert.Contains(t, out, env.recipient.String())
		assert.Contains(t, out, "2000000000")
		assert.Contains(t, out, "reports:     disabled")
		assert.NotContains(t, out, "secret-token")
	})

	t.Run("reads the config file flag", func(t *testing.T) {
		setupEnv(t)
		require.NoError(t, os.Unsetenv("BLOCKTRANSFER_TRANSFER_AMOUNT"))

		path := filepath.Join(t.TempDir(), "blocktransfer.env")
		require.NoError(t, os.WriteFile(path, []byte("BLOCKTRANSFER_TRANSFER_AMOUNT=1.5\n"), 0o600))

		out, err := runApp(t, buildNotExpected(t), "--config", path, "check")
		require.NoError(t, err)
		assert.Contains(t, out, "1500000000")
	})

	t.Run("invalid amount", func(t *testing.T) {
		setupEnv(t)
		t.Setenv("BLOCKTRANSFER_TRANSFER_AMOUNT", "0")

		_, err := runApp(t, buildNotExpected(t), "check")
		assert.ErrorIs(t, err, config.ErrConfig)
	})
}

func TestStartCommand(t *testing.T) {
	t.Run("invalid recipient fails before wiring", func(t *testing.T) {
		setupEnv(t)
		t.Setenv("BLOCKTRANSFER_RECIPIENT_ADDRESS", "not-an-address")

		_, err := runApp(t, buildNotExpected(t), "start")
		assert.ErrorIs(t, err, config.ErrAddressParse)
	})

	t.Run("missing configuration", func(t *testing.T) {
		setupEnv(t)
		require.NoError(t, os.Unsetenv("BLOCKTRANSFER_RPC_ENDPOINT"))

		_, err := runApp(t, buildNotExpected(t), "start")
		assert.ErrorIs(t, err, config.ErrConfig)
	})

	t.Run("wiring failure", func(t *testing.T) {
		setupEnv(t)
		cause := errors.New("redis: connection refused")

		_, err := runApp(t, func(context.Context, config.Config, config.Resolved) (transferbot.Service, func(), error) {
			return nil, nil, cause
		}, "start")
		assert.ErrorIs(t, err, cause)
	})

	t.Run("connection failure is returned and cleaned up", func(t *testing.T) {
		setupEnv(t)
		svc := transferbotMocks.NewService(t)
		cause := errors.New("block subscription connection failed")
		cleaned := false

		svc.EXPECT().Start(mock.Anything).Return(cause).Once()

		_, err := runApp(t, func(context.Context, config.Config, config.Resolved) (transferbot.Service, func(), error) {
			return svc, func() { cleaned = true }, nil
		}, "start")

		assert.ErrorIs(t, err, cause)
		assert.True(t, cleaned)
	})

	t.Run("returns when the block stream ends", func(t *testing.T) {
		env := setupEnv(t)
		svc := transferbotMocks.NewService(t)
		cleaned := false

		done := make(chan struct{})
		close(done)

		svc.EXPECT().Start(mock.Anything).Return(nil).Once()
		svc.EXPECT().Done().Return(done).Once()
		svc.EXPECT().Err().Return(transferbot.ErrStreamEnded).Once()
		svc.EXPECT().Close().Return().Once()

		var got config.Resolved
		_, err := runApp(t, func(_ context.Context, cfg config.Config, resolved config.Resolved) (transferbot.Service, func(), error) {
			got = resolved
			return svc, func() { cleaned = true }, nil
		}, "start")

		assert.ErrorIs(t, err, transferbot.ErrStreamEnded)
		assert.True(t, cleaned)
		assert.Equal(t, uint64(2_000_000_000), got.Lamports)
		assert.Equal(t, env.recipient, got.Recipient)
		assert.Equal(t, env.signer.PublicKey(), got.Signer.PublicKey())
	})
}
