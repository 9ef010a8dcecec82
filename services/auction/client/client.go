// Package client talks to a remote auction server over its HTTP API.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gift-auction/internal/auctionerrors"
	model "gift-auction/internal/models"
	"gift-auction/services/auction/helpers"
)

// ErrUnexpectedResponse is returned when the server answers with something
// that is not an auction envelope or carries an unknown error code.
var ErrUnexpectedResponse = errors.New("unexpected response from auction server")

// Client implements the auction contract against a remote server
type Client struct {
	baseURL string
	http    *http.Client
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a Client for the server at baseURL, e.g. http://localhost:8080
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Code    string          `json:"code"`
	Error   string          `json:"error"`
}

// Configure calls PUT /auction/config
func (c *Client) Configure(cfg model.Config) (model.Status, error) {
	req := helpers.ConfigureRequest{
		TotalGifts:       &cfg.TotalGifts,
		PerRound:         &cfg.PerRound,
		RoundDurationSec: &cfg.RoundDurationSec,
	}
	var st model.Status
	err := c.do(http.MethodPut, "/auction/config", req, &st)
	return st, err
}

// StartRound calls POST /auction/rounds/start
func (c *Client) StartRound() (model.Status, error) {
	var st model.Status
	err := c.do(http.MethodPost, "/auction/rounds/start", nil, &st)
	return st, err
}

// EndRound calls POST /auction/rounds/end
func (c *Client) EndRound() (model.RoundResult, error) {
	var res model.RoundResult
	err := c.do(http.MethodPost, "/auction/rounds/end", nil, &res)
	return res, err
}

// PlaceBid calls POST /bids
func (c *Client) PlaceBid(userID string, amount int64) (model.BidReceipt, error) {
	var receipt model.BidReceipt
	err := c.do(http.MethodPost, "/bids", helpers.PlaceBidRequest{UserID: userID, Amount: amount}, &receipt)
	return receipt, err
}

// Leaderboard calls GET /auction/leaderboard
func (c *Client) Leaderboard(limit int) (model.Leaderboard, error) {
	path := "/auction/leaderboard"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var board model.Leaderboard
	err := c.do(http.MethodGet, path, nil, &board)
	return board, err
}

// Status calls GET /auction/status
func (c *Client) Status() (model.Status, error) {
	var st model.Status
	err := c.do(http.MethodGet, "/auction/status", nil, &st)
	return st, err
}

// Winners calls GET /auction/winners
func (c *Client) Winners() ([]model.Winner, error) {
	var winners []model.Winner
	err := c.do(http.MethodGet, "/auction/winners", nil, &winners)
	return winners, err
}

// Refund calls GET /users/:user_id/refund
func (c *Client) Refund(userID string) (int64, error) {
	if userID == "" {
		return 0, fmt.Errorf("client: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}
	var resp helpers.RefundResponse
	if err := c.do(http.MethodGet, "/users/"+url.PathEscape(userID)+"/refund", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Refund, nil
}

// UserBid calls GET /users/:user_id/bid
func (c *Client) UserBid(userID string) (model.UserBid, error) {
	if userID == "" {
		return model.UserBid{}, fmt.Errorf("client: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}
	var ub model.UserBid
	err := c.do(http.MethodGet, "/users/"+url.PathEscape(userID)+"/bid", nil, &ub)
	return ub, err
}

func (c *Client) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("client: failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("client: %w - %s %s returned %d: %v", ErrUnexpectedResponse, method, path, resp.StatusCode, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, env)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("client: %w - failed to decode %s %s: %v", ErrUnexpectedResponse, method, path, err)
	}
	return nil
}

func decodeError(status int, env envelope) error {
	if sentinel := auctionerrors.FromCode(env.Code); sentinel != nil {
		return fmt.Errorf("client: %w - %s", sentinel, env.Error)
	}
	return fmt.Errorf("client: %w - status %d: %s", ErrUnexpectedResponse, status, env.Error)
}
