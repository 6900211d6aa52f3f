package polymarket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/nba-probs/internal/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClientWithBaseURL(server.URL, &config.Settings{})
}

func TestFetchOrderbook(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/markets/mkt-123", r.URL.Path)
		w.Write([]byte(`{"id":"mkt-123","outcomePrices":{"yes":"0.62","no":"0.38"}}`))
	})

	orderbook, err := client.FetchOrderbook(context.Background(), "mkt-123")
	require.NoError(t, err)

	assert.Equal(t, "mkt-123", orderbook.MarketID)
	require.NotNil(t, orderbook.YesPrice)
	require.NotNil(t, orderbook.NoPrice)
	assert.InDelta(t, 0.62, *orderbook.YesPrice, 1e-9)
	assert.InDelta(t, 0.38, *orderbook.NoPrice, 1e-9)
	assert.Equal(t, orderbook.YesPrice, orderbook.ImpliedYesProbability())
}

func TestFetchOrderbookMissingPrices(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "absent keys", body: `{"id":"m"}`},
		{name: "unparseable price", body: `{"id":"m","outcomePrices":{"yes":"n/a"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			orderbook, err := client.FetchOrderbook(context.Background(), "m")
			require.NoError(t, err)
			assert.Nil(t, orderbook.YesPrice)
			assert.Nil(t, orderbook.NoPrice)
			assert.Nil(t, orderbook.ImpliedYesProbability())
			assert.Nil(t, orderbook.ImpliedNoProbability())
		})
	}
}

func TestRequestFailuresAreOpaque(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"id":`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, tt.handler)
			_, err := client.FetchOrderbook(context.Background(), "m")
			assert.ErrorIs(t, err, ErrRequestFailed)
		})
	}
}

func TestListNBAMarkets(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "NBA", r.URL.Query().Get("tag"))
		w.Write([]byte(`{"markets":[
			{"id":"m1","question":"Celtics to win?","status":"open","outcomePrices":{"yes":"0.55","no":"0.45"}},
			{"id":"m2","question":"Lakers to win?","status":"closed"}
		]}`))
	})

	markets, err := client.ListNBAMarkets(context.Background())
	require.NoError(t, err)
	require.Len(t, markets, 2)

	assert.Equal(t, "m1", markets[0].ID)
	require.NotNil(t, markets[0].OutcomeYes)
	assert.Equal(t, "0.55", *markets[0].OutcomeYes)
	assert.Nil(t, markets[1].OutcomeYes)
}
