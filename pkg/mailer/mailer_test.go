package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSendWelcomeSimulatesWithoutAPIKey(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := New(Config{
		FromAddress: "no-reply@dermasafe.app",
		FromName:    "DermaSafe",
	}, zap.New(core))

	err := m.SendWelcome("jane@example.com", "Jane")
	require.NoError(t, err)

	entries := logs.FilterMessage("Simulated email send").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Welcome to DermaSafe!", fields["subject"])
	// The recipient address is redacted in log output.
	assert.Equal(t, "j***@example.com", fields["to"])
}

func TestNewWithAPIKeyBuildsClient(t *testing.T) {
	m := New(Config{
		APIKey:      "SG.test-key",
		FromAddress: "no-reply@dermasafe.app",
		FromName:    "DermaSafe",
	}, zap.NewNop())

	sg, ok := m.(*sendGridMailer)
	require.True(t, ok)
	assert.NotNil(t, sg.client)
}

func TestNewWithoutAPIKeySimulates(t *testing.T) {
	m := New(Config{}, zap.NewNop())

	sg, ok := m.(*sendGridMailer)
	require.True(t, ok)
	assert.Nil(t, sg.client)
}
