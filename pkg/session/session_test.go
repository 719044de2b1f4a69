package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cbodonnell/circledodge/pkg/config"
	gametypes "github.com/cbodonnell/circledodge/pkg/game/types"
	"github.com/cbodonnell/circledodge/pkg/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s, err := NewSession(NewSessionOptions{Seed: 1})
	require.NoError(t, err)
	assert.Nil(t, s.broadcastChan)
	assert.Error(t, s.StartDebugAPI(context.Background(), 0))

	cfg := config.Default()
	cfg.Obstacles.SpawnInterval = 0
	_, err = NewSession(NewSessionOptions{Config: cfg})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSession_DebugRouter(t *testing.T) {
	s, err := NewSession(NewSessionOptions{Seed: 1, Debug: true})
	require.NoError(t, err)

	srv := httptest.NewServer(s.DebugRouter())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/avatar/grow", "", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	s.GameManager.Tick(context.Background(), 0.1, time.Now())
	assert.Equal(t, 240.0, s.GameManager.GameState().Avatar.Diameter)

	resp, err = http.Get(srv.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	snapshot := &messages.GameSnapshot{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(snapshot))
	assert.Equal(t, 240.0, snapshot.Avatar.Diameter)

	// the resize was broadcast for the feed
	select {
	case event := <-s.broadcastChan:
		assert.Equal(t, gametypes.EventTypeAvatarResized, event.Type())
	default:
		t.Fatal("expected a broadcast event")
	}
}
