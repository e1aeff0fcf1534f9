// Package client is a typed HTTP client for the game server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"surakarta/communication"
	"surakarta/game"
)

// StatusError is returned for every non-2xx reply.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned status %d: %s", e.Code, e.Message)
}

type Client struct {
	serverURL string
	http      *http.Client
}

// NewClient initializes and returns a new Client. A nil httpClient means
// http.DefaultClient.
func NewClient(serverURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		serverURL: serverURL,
		http:      httpClient,
	}
}

// CreateGame starts a game; nil cells mean the initial layout.
func (c *Client) CreateGame(ctx context.Context, cells []game.Pebble) (communication.GameView, error) {
	var view communication.GameView
	err := c.do(ctx, http.MethodPost, "/games", communication.CreateGameRequest{Cells: cells}, &view)
	return view, err
}

func (c *Client) ListGames(ctx context.Context) ([]communication.GameView, error) {
	var views []communication.GameView
	err := c.do(ctx, http.MethodGet, "/games", nil, &views)
	return views, err
}

func (c *Client) GetGame(ctx context.Context, id string) (communication.GameView, error) {
	var view communication.GameView
	err := c.do(ctx, http.MethodGet, "/games/"+id, nil, &view)
	return view, err
}

func (c *Client) LegalMoves(ctx context.Context, id string) ([]game.Move, error) {
	var moves []game.Move
	err := c.do(ctx, http.MethodGet, "/games/"+id+"/moves", nil, &moves)
	return moves, err
}

func (c *Client) Play(ctx context.Context, id string, move game.Move) (communication.PlayResponse, error) {
	var resp communication.PlayResponse
	err := c.do(ctx, http.MethodPost, "/games/"+id+"/moves", move, &resp)
	return resp, err
}

func (c *Client) Preview(ctx context.Context, id string, req communication.PreviewRequest) (communication.PreviewResponse, error) {
	var resp communication.PreviewResponse
	err := c.do(ctx, http.MethodPost, "/games/"+id+"/preview", req, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.serverURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e communication.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &StatusError{Code: resp.StatusCode, Message: e.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
