package harness

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontlook-admin/mcp-contract-tests/protocol"
)

func makeReply(t *testing.T, id string, text string) protocol.Reply {
	line := fmt.Sprintf(`{"jsonrpc":"2.0","id":%q,"result":{"content":[{"type":"text","text":%q}]}}`, id, text)
	reply, ok := protocol.ParseReply([]byte(line))
	require.True(t, ok)
	return reply
}

func replyText(t *testing.T, reply protocol.Reply) string {
	text, ok := reply.ResultText()
	require.True(t, ok)
	return text
}

func TestStoreGetReturnsExactIDMatch(t *testing.T) {
	store := NewResultStore()
	store.Put(makeReply(t, "1", "first"))
	store.Put(makeReply(t, "2", "second"))

	reply, ok := store.Get("2")
	require.True(t, ok)
	assert.Equal(t, "second", replyText(t, reply))

	_, ok = store.Get("3")
	assert.False(t, ok)
}

func TestStoreLastWriteWins(t *testing.T) {
	store := NewResultStore()
	store.Put(makeReply(t, "2", "first"))
	store.Put(makeReply(t, "2", "second"))

	reply, ok := store.Get("2")
	require.True(t, ok)
	assert.Equal(t, "second", replyText(t, reply))
}

func TestAwaitReturnsEarlyWhenReplyArrives(t *testing.T) {
	store := NewResultStore()
	reply := makeReply(t, "2", "here")
	go func() {
		time.Sleep(50 * time.Millisecond)
		store.Put(reply)
	}()

	start := time.Now()
	got, ok := store.Await("2", 10*time.Second)
	require.True(t, ok)
	assert.Equal(t, "here", replyText(t, got))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestAwaitReturnsImmediatelyIfAlreadyStored(t *testing.T) {
	store := NewResultStore()
	store.Put(makeReply(t, "2", "early"))

	got, ok := store.Await("2", 10*time.Second)
	require.True(t, ok)
	assert.Equal(t, "early", replyText(t, got))
}

func TestAwaitTimesOut(t *testing.T) {
	store := NewResultStore()
	start := time.Now()
	_, ok := store.Await("2", 100*time.Millisecond)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestAwaitIgnoresOtherIDs(t *testing.T) {
	store := NewResultStore()
	store.Put(makeReply(t, "1", "wrong conversation"))
	_, ok := store.Await("2", 150*time.Millisecond)
	assert.False(t, ok)
}

func TestStoreConcurrentPuts(t *testing.T) {
	store := NewResultStore()
	replies := make([]protocol.Reply, 20)
	for i := range replies {
		replies[i] = makeReply(t, fmt.Sprintf("%d", i), "text")
	}

	var wg sync.WaitGroup
	for _, reply := range replies {
		wg.Add(1)
		go func(r protocol.Reply) {
			defer wg.Done()
			store.Put(r)
		}(reply)
	}
	wg.Wait()

	for i := range replies {
		_, ok := store.Get(fmt.Sprintf("%d", i))
		assert.True(t, ok)
	}
}
