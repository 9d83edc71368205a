package signal

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_InitialState(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	require.NoError(t, h.Context().Err())
	assert.Nil(t, h.Received())

	select {
	case <-h.Interrupted():
		t.Fatal("interrupted closed before any signal")
	default:
	}
}

func TestHandler_SignalCancelsContext(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.handle(syscall.SIGINT)

	require.ErrorIs(t, h.Context().Err(), context.Canceled)
	assert.Equal(t, syscall.SIGINT, h.Received())

	select {
	case <-h.Interrupted():
	default:
		t.Fatal("interrupted should be closed after a signal")
	}
}

func TestHandler_OnlyFirstSignalCounts(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.handle(syscall.SIGTERM)
	assert.NotPanics(t, func() { h.handle(syscall.SIGINT) })
	assert.Equal(t, syscall.SIGTERM, h.Received())
}

func TestHandler_DeliveredThroughChannel(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.sigChan <- os.Interrupt

	select {
	case <-h.Interrupted():
	case <-time.After(time.Second):
		t.Fatal("signal was not handled")
	}
	assert.Equal(t, os.Interrupt, h.Received())
}

func TestHandler_StopCancelsAndIsIdempotent(t *testing.T) {
	h := NewHandler(context.Background())

	h.Stop()
	assert.NotPanics(t, h.Stop)
	require.ErrorIs(t, h.Context().Err(), context.Canceled)

	select {
	case <-h.Interrupted():
		t.Fatal("Stop must not mark the handler as interrupted")
	default:
	}
}

func TestHandler_ParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	h := NewHandler(parent)
	defer h.Stop()

	cancel()

	require.ErrorIs(t, h.Context().Err(), context.Canceled)
	assert.Nil(t, h.Received())
}
