package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cbodonnell/circledodge/pkg/config"
	"github.com/cbodonnell/circledodge/pkg/game"
	gametypes "github.com/cbodonnell/circledodge/pkg/game/types"
	"github.com/cbodonnell/circledodge/pkg/log"
	"github.com/cbodonnell/circledodge/pkg/queue"
	"github.com/cbodonnell/circledodge/pkg/state"
	"github.com/cbodonnell/circledodge/pkg/version"
	"github.com/gorilla/mux"
)

// CommandSubmitter queues a command for the game loop.
type CommandSubmitter interface {
	Submit(commandType gametypes.CommandType) error
}

func HandleGetState(stateManager state.StateManager, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameState, err := stateManager.Get(r.Context())
		if err != nil {
			if errors.Is(err, state.ErrNoState) {
				http.Error(w, "Game has not started yet", http.StatusServiceUnavailable)
				return
			}
			log.Error("failed to get game state: %v", err)
			http.Error(w, "Failed to get game state", http.StatusInternalServerError)
			return
		}

		writeJSON(w, game.SnapshotFromState(cfg, gameState))
	}
}

// HandleAvatarCommand submits the command named by the action route variable.
func HandleAvatarCommand(submitter CommandSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commandType, err := gametypes.ParseCommandType(mux.Vars(r)["action"])
		if err != nil || commandType == gametypes.CommandTypeRestart {
			http.Error(w, "Unknown avatar action", http.StatusNotFound)
			return
		}
		submit(w, submitter, commandType)
	}
}

func HandleRestart(submitter CommandSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submit(w, submitter, gametypes.CommandTypeRestart)
	}
}

func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"version": version.Get()})
	}
}

func submit(w http.ResponseWriter, submitter CommandSubmitter, commandType gametypes.CommandType) {
	if err := submitter.Submit(commandType); err != nil {
		if errors.Is(err, queue.ErrQueueFull) {
			http.Error(w, "Too many pending commands", http.StatusServiceUnavailable)
			return
		}
		log.Error("failed to submit command: %v", err)
		http.Error(w, "Failed to submit command", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
