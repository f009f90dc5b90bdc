package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerPublishReachesSubscribers(t *testing.T) {
	hub := NewTickerHub()
	client := &Client{Send: make(chan []byte, 4)}
	hub.Register(client)
	defer client.Close()

	hub.Publish(TickerItem{Kind: "announcement", ID: 7, Title: "Gram Sabha on Sunday"})

	select {
	case msg := <-client.Send:
		var payload struct {
			Type string     `json:"type"`
			Item TickerItem `json:"item"`
		}
		require.NoError(t, json.Unmarshal(msg, &payload))
		assert.Equal(t, "item", payload.Type)
		assert.Equal(t, uint(7), payload.Item.ID)
		assert.NotZero(t, payload.Item.CreatedAt)
	default:
		t.Fatal("no message delivered")
	}
}

func TestTickerBacklogIsCapped(t *testing.T) {
	hub := NewTickerHub()
	for i := 0; i < tickerBacklog+5; i++ {
		hub.Publish(TickerItem{Kind: "notice", ID: uint(i + 1)})
	}
	items := hub.backlog()
	require.Len(t, items, tickerBacklog)
	// Oldest entries are dropped first.
	assert.Equal(t, uint(6), items[0].ID)
	assert.Equal(t, uint(tickerBacklog+5), items[len(items)-1].ID)
}

func TestClientCloseUnregisters(t *testing.T) {
	hub := NewTickerHub()
	client := &Client{Send: make(chan []byte, 1)}
	hub.Register(client)
	assert.Equal(t, 1, hub.ClientCount())
	client.Close()
	assert.Equal(t, 0, hub.ClientCount())
	// Double close is safe.
	client.Close()
}
