package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cbodonnell/circledodge/pkg/config"
	gametypes "github.com/cbodonnell/circledodge/pkg/game/types"
	"github.com/cbodonnell/circledodge/pkg/messages"
	"github.com/cbodonnell/circledodge/pkg/network"
	"github.com/cbodonnell/circledodge/pkg/queue"
	"github.com/cbodonnell/circledodge/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

type mockSubmitter struct {
	mock.Mock
}

func (m *mockSubmitter) Submit(commandType gametypes.CommandType) error {
	args := m.Called(commandType)
	return args.Error(0)
}

type testServer struct {
	*httptest.Server
	stateManager  *state.InMemoryStateManager
	submitter     *mockSubmitter
	clientManager *network.ClientManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		stateManager:  state.NewInMemoryStateManager(),
		submitter:     &mockSubmitter{},
		clientManager: network.NewClientManager(),
	}
	ts.Server = httptest.NewServer(NewRouter(NewAPIServerOptions{
		Config:       config.Default(),
		StateManager: ts.stateManager,
		Submitter:    ts.submitter,
		EventFeed:    network.NewFeedHandler(network.NewFeedHandlerOptions{ClientManager: ts.clientManager}),
	}))
	t.Cleanup(func() {
		ts.Close()
		ts.submitter.AssertExpectations(t)
	})
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestGetState(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/state")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	cfg := config.Default()
	gameState := gametypes.NewGameState(nil, gametypes.NewAvatarState(cfg.Screen, cfg.Avatar.Diameter))
	gameState.Phase = gametypes.GamePhaseOver
	gameState.Collisions = 5
	require.NoError(t, ts.stateManager.Set(context.Background(), gameState))

	resp = ts.do(t, http.MethodGet, "/state")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	snapshot := &messages.GameSnapshot{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(snapshot))
	assert.Equal(t, "over", snapshot.Phase)
	assert.Equal(t, 5, snapshot.Collisions)
	assert.Equal(t, 210.0, snapshot.Avatar.Diameter)
	assert.Empty(t, snapshot.Obstacles)
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		setup      func(s *mockSubmitter)
		wantStatus int
	}{
		{
			name:   "grow",
			method: http.MethodPost,
			path:   "/avatar/grow",
			setup: func(s *mockSubmitter) {
				s.On("Submit", gametypes.CommandTypeGrowAvatar).Return(nil).Once()
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:   "shrink",
			method: http.MethodPost,
			path:   "/avatar/shrink",
			setup: func(s *mockSubmitter) {
				s.On("Submit", gametypes.CommandTypeShrinkAvatar).Return(nil).Once()
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:   "restart",
			method: http.MethodPost,
			path:   "/restart",
			setup: func(s *mockSubmitter) {
				s.On("Submit", gametypes.CommandTypeRestart).Return(nil).Once()
			},
			wantStatus: http.StatusAccepted,
		},
		{
			name:   "queue full",
			method: http.MethodPost,
			path:   "/restart",
			setup: func(s *mockSubmitter) {
				s.On("Submit", gametypes.CommandTypeRestart).Return(queue.ErrQueueFull).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unknown action",
			method:     http.MethodPost,
			path:       "/avatar/jump",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "wrong method",
			method:     http.MethodGet,
			path:       "/restart",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "preflight",
			method:     http.MethodOptions,
			path:       "/avatar/grow",
			wantStatus: http.StatusNoContent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			if tt.setup != nil {
				tt.setup(ts.submitter)
			}
			resp := ts.do(t, tt.method, tt.path)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestVersion(t *testing.T) {
	ts := newTestServer(t)
	resp := ts.do(t, http.MethodGet, "/version")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := map[string]string{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "dev", body["version"])
}

func TestEventFeed(t *testing.T) {
	ts := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/events", nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool { return ts.clientManager.Count() == 1 }, time.Second, 10*time.Millisecond)

	msg, err := messages.MessageFromEvent(&gametypes.GameResetEvent{})
	require.NoError(t, err)
	ts.clientManager.Broadcast(msg)

	got, err := network.ReadMessageFromWS(ctx, conn)
	require.NoError(t, err)
	assert.Equal(t, messages.MessageType("game_reset"), got.Type)
}
