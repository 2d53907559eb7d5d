package tool

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/eyamansouri/matchboard/internal/domain/model"
	"github.com/eyamansouri/matchboard/internal/domain/view"
)

const requestTimeout = 10 * time.Second

// client is a thin wrapper over the matchboard HTTP API.
type client struct {
	base string
	http *http.Client
}

func newClient(base string) *client {
	return &client{
		base: base,
		http: &http.Client{Timeout: requestTimeout},
	}
}

// matchEnvelope mirrors the GET /api/match response.
type matchEnvelope struct {
	Match   *json.RawMessage `json:"match"`
	Players []model.Player   `json:"players"`
	Events  []model.Event    `json:"events"`
}

func (c *client) getMatch() (matchEnvelope, error) {
	var env matchEnvelope
	resp, err := c.http.Get(c.base + "/api/match")
	if err != nil {
		return env, fmt.Errorf("get match: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return env, fmt.Errorf("get match: unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return env, fmt.Errorf("get match: %w", err)
	}
	return env, nil
}

func (c *client) postEvent(e model.Event) (model.Event, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return model.Event{}, fmt.Errorf("post event: %w", err)
	}
	resp, err := c.http.Post(c.base+"/api/event", "application/json", bytes.NewReader(body))
	if err != nil {
		return model.Event{}, fmt.Errorf("post event: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return model.Event{}, fmt.Errorf("post event: unexpected status %s", resp.Status)
	}
	var saved model.Event
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		return model.Event{}, fmt.Errorf("post event: %w", err)
	}
	return saved, nil
}

func (c *client) getRows(minute int, team, sortKey, search string) ([]view.Row, error) {
	url := fmt.Sprintf("%s/api/rows?minute=%d&team=%s&sort=%s&q=%s", c.base, minute, team, sortKey, search)
	resp, err := c.http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get rows: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get rows: unexpected status %s", resp.Status)
	}
	var rows []view.Row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("get rows: %w", err)
	}
	return rows, nil
}
