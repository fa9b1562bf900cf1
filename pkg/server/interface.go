/*
Package server implements msgpack IPC for tag cloud generation.

The server package provides a minimal interface for building tag clouds over
raw document text using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports cloud requests,
vocabulary queries, and server limit updates. Messages are processed
synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured
messages via stdin and receive responses through stdout. Each message
contains an ID field and other fields based on the operation type.

Cloud requests use mainly this structure:

	{"id": "req_001", "t": "the cat the dog the cat", "n": "pets.txt", "c": 10}

The server responds with the alphabetized subset, each word carrying its
occurrence count and computed font size:

	{"id": "req_001", "e": [{"w": "cat", "c": 2, "f": 11}, {"w": "the", "c": 3, "f": 48}], "c": 2, "lo": 2, "hi": 3, "t": 145}

Setting "h" on a request additionally returns the rendered HTML page in the
response. Vocabulary queries report table statistics and prefix match counts
without running selection:

	{"id": "voc_001", "action": "vocab", "t": "..."}
	{"id": "pre_001", "action": "prefix", "t": "...", "p": "ca"}

Limit messages allow adjustment of server parameters without restart.

Response structures include status information and error details when an op
fails. Error responses carry an HTTP-flavored code: 400 for invalid input,
413 for oversized text, 500 for internal failures.
*/
package server

// Request is the single frame shape read from clients. Action selects the
// operation; an empty Action means a cloud request.
type Request struct {
	ID           string `msgpack:"id"`
	Action       string `msgpack:"action,omitempty"` // "cloud", "vocab", "prefix", "get_limits", "set_limits", "health"
	Text         string `msgpack:"t,omitempty"`
	Title        string `msgpack:"n,omitempty"`
	Count        int    `msgpack:"c,omitempty"`
	Prefix       string `msgpack:"p,omitempty"`
	HTML         bool   `msgpack:"h,omitempty"`
	MaxCount     *int   `msgpack:"max_count,omitempty"`      // for "set_limits"
	MaxTextBytes *int   `msgpack:"max_text_bytes,omitempty"` // for "set_limits"
}

// CloudEntry - one selected word with count and font size
type CloudEntry struct {
	Word  string `msgpack:"w"`
	Count int    `msgpack:"c"`
	Font  int    `msgpack:"f"`
}

// CloudResponse - cloud request response
type CloudResponse struct {
	ID        string       `msgpack:"id"`
	Entries   []CloudEntry `msgpack:"e"`
	Count     int          `msgpack:"c"`
	MinCount  int          `msgpack:"lo"`
	MaxCount  int          `msgpack:"hi"`
	HTML      string       `msgpack:"html,omitempty"`
	TimeTaken int64        `msgpack:"t"`
}

// VocabResponse - vocabulary query response
type VocabResponse struct {
	ID            string `msgpack:"id"`
	Status        string `msgpack:"status"`
	DistinctWords int    `msgpack:"words,omitempty"`
	TotalRuns     int    `msgpack:"runs,omitempty"`
	PrefixMatches int    `msgpack:"matches,omitempty"`
}

// LimitsResponse - server limit operation response
type LimitsResponse struct {
	ID           string `msgpack:"id"`
	Status       string `msgpack:"status"`
	MaxCount     int    `msgpack:"max_count"`
	MaxTextBytes int    `msgpack:"max_text_bytes"`
}

// CloudError holds basic error information for failed requests
type CloudError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
