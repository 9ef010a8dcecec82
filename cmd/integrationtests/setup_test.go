package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	auction "gift-auction/internal/auctionService"
	model "gift-auction/internal/models"
	"gift-auction/internal/repository"
	"gift-auction/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// testClock is a manually advanced clock shared by the service under test
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// testEnv bundles everything a test drives
type testEnv struct {
	Router  *gin.Engine
	Service *auction.AuctionService
	Clock   *testClock
}

// SetupTestRouter initializes the router over an in-memory ledger and a fake clock.
func SetupTestRouter(t *testing.T, cfg model.Config, settings auction.Settings) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := &testClock{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	service, err := auction.NewAuctionService(cfg, repository.NewMemoryLedger(),
		auction.WithClock(clock.Now), auction.WithSettings(settings))
	require.NoError(t, err)

	return testEnv{
		Router:  server.SetupRouter(service),
		Service: service,
		Clock:   clock,
	}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the envelope.
// For successful requests the returned map is the "data" object when it is one.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code < 300 {
			if data, ok := resp["data"].(map[string]any); ok {
				resp = data
			}
		}
	}

	return resp, w
}

// ExecuteRequestForList is ExecuteRequestAndParse for endpoints whose data is an array.
func ExecuteRequestForList(t *testing.T, router *gin.Engine, method, url string) ([]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, nil)
	router.ServeHTTP(w, req)

	var resp struct {
		Data []any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp.Data, w
}
