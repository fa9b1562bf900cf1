package server

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/cloud"
	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/config"
)

// runServer feeds the encoded requests through a server instance and returns
// a decoder positioned after the ready frame.
func runServer(t *testing.T, cfg *config.Config, requests ...Request) *msgpack.Decoder {
	t.Helper()
	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		require.NoError(t, enc.Encode(req))
	}

	srv := NewServerIO(cloud.NewGenerator(), cfg, "", &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready map[string]string
	require.NoError(t, dec.Decode(&ready))
	require.Equal(t, "ready", ready["status"])
	return dec
}

func TestServerCloudRequest(t *testing.T) {
	dec := runServer(t, config.DefaultConfig(), Request{
		ID:    "req_1",
		Text:  "the cat the dog the cat",
		Title: "pets.txt",
		Count: 2,
		HTML:  true,
	})

	var resp CloudResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "req_1", resp.ID)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, CloudEntry{Word: "cat", Count: 2, Font: 11}, resp.Entries[0])
	assert.Equal(t, CloudEntry{Word: "the", Count: 3, Font: 48}, resp.Entries[1])
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 2, resp.MinCount)
	assert.Equal(t, 3, resp.MaxCount)
	assert.Contains(t, resp.HTML, "Top 2 words in pets.txt")
}

func TestServerEmptyTextIsValid(t *testing.T) {
	dec := runServer(t, config.DefaultConfig(), Request{ID: "req_2", Text: "", Count: 5})

	var resp CloudResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Entries)
}

func TestServerNegativeCount(t *testing.T) {
	dec := runServer(t, config.DefaultConfig(), Request{ID: "req_3", Text: "a b c", Count: -1})

	var errResp CloudError
	require.NoError(t, dec.Decode(&errResp))
	assert.Equal(t, "req_3", errResp.ID)
	assert.Equal(t, 400, errResp.Code)
}

func TestServerOversizedText(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxTextBytes = 8
	dec := runServer(t, cfg, Request{ID: "req_4", Text: "far too much text", Count: 3})

	var errResp CloudError
	require.NoError(t, dec.Decode(&errResp))
	assert.Equal(t, 413, errResp.Code)
}

func TestServerClampsCountToConfiguredMax(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxCount = 1
	dec := runServer(t, cfg, Request{ID: "req_5", Text: "a a b", Count: 50})

	var resp CloudResponse
	require.NoError(t, dec.Decode(&resp))
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "a", resp.Entries[0].Word)
}

func TestServerVocabAndPrefix(t *testing.T) {
	dec := runServer(t, config.DefaultConfig(),
		Request{ID: "voc_1", Action: "vocab", Text: "car cart dog car"},
		Request{ID: "pre_1", Action: "prefix", Text: "car cart dog car", Prefix: "car"},
		Request{ID: "pre_2", Action: "prefix", Text: "car cart dog"},
	)

	var vocab VocabResponse
	require.NoError(t, dec.Decode(&vocab))
	assert.Equal(t, "ok", vocab.Status)
	assert.Equal(t, 3, vocab.DistinctWords)
	assert.Equal(t, 4, vocab.TotalRuns)

	var prefix VocabResponse
	require.NoError(t, dec.Decode(&prefix))
	assert.Equal(t, 2, prefix.PrefixMatches)

	var missing CloudError
	require.NoError(t, dec.Decode(&missing))
	assert.Equal(t, 400, missing.Code)
}

func TestServerLimits(t *testing.T) {
	cfg := config.DefaultConfig()
	maxCount := 32
	dec := runServer(t, cfg,
		Request{ID: "lim_1", Action: "set_limits", MaxCount: &maxCount},
		Request{ID: "lim_2", Action: "get_limits"},
		Request{ID: "lim_3", Action: "set_limits"},
	)

	var set LimitsResponse
	require.NoError(t, dec.Decode(&set))
	assert.Equal(t, "ok", set.Status)
	assert.Equal(t, 32, set.MaxCount)
	assert.Equal(t, 32, cfg.Server.MaxCount)

	var get LimitsResponse
	require.NoError(t, dec.Decode(&get))
	assert.Equal(t, 32, get.MaxCount)

	var empty CloudError
	require.NoError(t, dec.Decode(&empty))
	assert.Equal(t, 400, empty.Code)
}

func TestServerUnknownAction(t *testing.T) {
	dec := runServer(t, config.DefaultConfig(), Request{ID: "bad_1", Action: "explode"})

	var errResp CloudError
	require.NoError(t, dec.Decode(&errResp))
	assert.Equal(t, 400, errResp.Code)
	assert.Contains(t, errResp.Error, "explode")
}

func TestServerAssignsMissingID(t *testing.T) {
	dec := runServer(t, config.DefaultConfig(), Request{Text: "a b a", Count: 1})

	var resp CloudResponse
	require.NoError(t, dec.Decode(&resp))
	assert.NotEmpty(t, resp.ID)
}

func TestServerHealth(t *testing.T) {
	dec := runServer(t, config.DefaultConfig(), Request{ID: "h_1", Action: "health"})

	var status map[string]string
	require.NoError(t, dec.Decode(&status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "h_1", status["id"])
}
