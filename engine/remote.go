package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"surakarta/communication"
	"surakarta/game"
	"sync"
	"time"
)

// RemoteAgent asks an HTTP agent for its moves. The current board and the
// updates since the previous request are posted to <url>/findmove, which
// answers with a move document.
type RemoteAgent struct {
	url    string
	client *http.Client

	mu      sync.Mutex
	pending []communication.Update
}

func NewRemoteAgent(url string, timeout time.Duration) *RemoteAgent {
	return &RemoteAgent{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (a *RemoteAgent) Receive(u communication.Update) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = append(a.pending, u)
}

func (a *RemoteAgent) FindMove(ctx context.Context, b *game.Board) (game.Move, error) {
	a.mu.Lock()
	updates := a.pending
	a.mu.Unlock()

	body, err := json.Marshal(communication.FindMoveRequest{
		State:   b.Snapshot(),
		Updates: updates,
	})
	if err != nil {
		return game.Move{}, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url+"/findmove", bytes.NewReader(body))
	if err != nil {
		return game.Move{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return game.Move{}, fmt.Errorf("failed to reach agent: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent:
		return game.Move{}, ErrNoMove
	default:
		out, _ := io.ReadAll(resp.Body)
		return game.Move{}, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var m game.Move
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return game.Move{}, fmt.Errorf("failed to decode move: %w", err)
	}

	// the agent has seen everything it was sent
	a.mu.Lock()
	a.pending = a.pending[len(updates):]
	a.mu.Unlock()
	return m, nil
}
