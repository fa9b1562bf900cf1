package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/cloud"
	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/config"
	"github.com/Lehman3D/Tag-Cloud-Generator/pkg/freq"
)

// Server handles the IPC for tag cloud generation
type Server struct {
	generator  cloud.IGenerator
	cfg        *config.Config
	configPath string
	decoder    *msgpack.Decoder
	encoder    *msgpack.Encoder
	requests   int
}

// NewServer creates a new cloud server using stdin/stdout for IPC.
// configPath may be empty, in which case limit updates are not persisted.
func NewServer(generator cloud.IGenerator, cfg *config.Config, configPath string) *Server {
	return NewServerIO(generator, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerIO is NewServer with explicit streams, used by tests.
func NewServerIO(generator cloud.IGenerator, cfg *config.Config, configPath string, in io.Reader, out io.Writer) *Server {
	return &Server{
		generator:  generator,
		cfg:        cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(in),
		encoder:    msgpack.NewEncoder(out),
	}
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	// Signal that the server is ready
	s.send(map[string]string{"status": "ready"})

	// incoming requests stdin
	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			// a binary stream cannot resync after a malformed frame
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid msgpack frame", 400)
			return fmt.Errorf("failed to decode request: %w", err)
		}
		s.handleRequest(request)
	}
}

// handleRequest processes one decoded request
func (s *Server) handleRequest(request Request) {
	if request.ID == "" {
		request.ID = uuid.NewString()
		log.Debugf("request without id assigned %s", request.ID)
	}
	s.requests++
	if s.requests%100 == 0 {
		log.Debugf("served %d requests", s.requests)
	}

	// based on action
	switch request.Action {
	case "", "cloud":
		s.handleCloud(request)
	case "vocab":
		s.handleVocab(request)
	case "prefix":
		s.handlePrefix(request)
	case "get_limits":
		s.sendLimits(request.ID)
	case "set_limits":
		s.handleSetLimits(request)
	case "health":
		s.send(map[string]string{"status": "ok", "id": request.ID})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

// handleCloud runs the pipeline and responds with the selected subset.
// Empty text is a valid degenerate request and yields an empty subset.
func (s *Server) handleCloud(request Request) {
	if s.cfg.Server.MaxTextBytes > 0 && len(request.Text) > s.cfg.Server.MaxTextBytes {
		s.sendError(request.ID, fmt.Sprintf("text exceeds %d bytes", s.cfg.Server.MaxTextBytes), 413)
		return
	}
	count := request.Count
	if s.cfg.Server.MaxCount > 0 && count > s.cfg.Server.MaxCount {
		log.Debugf("count %d clamped to configured maximum %d", count, s.cfg.Server.MaxCount)
		count = s.cfg.Server.MaxCount
	}

	start := time.Now()
	sub, err := s.generator.Subset(request.Text, count)
	if err != nil {
		if errors.Is(err, cloud.ErrNegativeCount) {
			s.sendError(request.ID, "Count must be non-negative", 400)
			return
		}
		log.Errorf("Selecting subset: %v", err)
		s.sendError(request.ID, "Internal server error", 500)
		return
	}
	elapsed := time.Since(start)

	scale := s.generator.Scale()
	entries := make([]CloudEntry, len(sub.Entries))
	for i, e := range sub.Entries {
		entries[i] = CloudEntry{
			Word:  e.Word,
			Count: e.Count,
			Font:  scale.Size(e.Count, sub.MinCount, sub.MaxCount),
		}
	}

	response := CloudResponse{
		ID:        request.ID,
		Entries:   entries,
		Count:     len(entries),
		MinCount:  sub.MinCount,
		MaxCount:  sub.MaxCount,
		TimeTaken: elapsed.Microseconds(),
	}
	if request.HTML {
		response.HTML = s.generator.Render(sub, request.Title, len(entries))
	}
	s.send(response)
}

// handleVocab reports frequency table statistics for the given text
func (s *Server) handleVocab(request Request) {
	if s.cfg.Server.MaxTextBytes > 0 && len(request.Text) > s.cfg.Server.MaxTextBytes {
		s.sendError(request.ID, fmt.Sprintf("text exceeds %d bytes", s.cfg.Server.MaxTextBytes), 413)
		return
	}
	table := freq.Build(request.Text, s.generator.Separators())
	s.send(VocabResponse{
		ID:            request.ID,
		Status:        "ok",
		DistinctWords: table.Len(),
		TotalRuns:     table.TotalRuns(),
	})
}

// handlePrefix counts distinct words sharing the requested prefix
func (s *Server) handlePrefix(request Request) {
	if request.Prefix == "" {
		s.sendError(request.ID, "Missing 'p' parameter", 400)
		return
	}
	if s.cfg.Server.MaxTextBytes > 0 && len(request.Text) > s.cfg.Server.MaxTextBytes {
		s.sendError(request.ID, fmt.Sprintf("text exceeds %d bytes", s.cfg.Server.MaxTextBytes), 413)
		return
	}
	table := freq.Build(request.Text, s.generator.Separators())
	s.send(VocabResponse{
		ID:            request.ID,
		Status:        "ok",
		PrefixMatches: table.CountPrefix(request.Prefix),
	})
}

// handleSetLimits updates server limits at runtime and persists them when a
// config path is known
func (s *Server) handleSetLimits(request Request) {
	if request.MaxCount == nil && request.MaxTextBytes == nil {
		s.sendError(request.ID, "No limits given", 400)
		return
	}
	if request.MaxCount != nil && *request.MaxCount < 0 {
		s.sendError(request.ID, "max_count must be non-negative", 400)
		return
	}
	if request.MaxTextBytes != nil && *request.MaxTextBytes < 0 {
		s.sendError(request.ID, "max_text_bytes must be non-negative", 400)
		return
	}

	if s.configPath == "" {
		if request.MaxCount != nil {
			s.cfg.Server.MaxCount = *request.MaxCount
		}
		if request.MaxTextBytes != nil {
			s.cfg.Server.MaxTextBytes = *request.MaxTextBytes
		}
	} else if err := s.cfg.Update(s.configPath, request.MaxCount, request.MaxTextBytes); err != nil {
		log.Errorf("Persisting limits: %v", err)
		s.sendError(request.ID, "Failed to persist limits", 500)
		return
	}
	s.sendLimits(request.ID)
}

// sendLimits reports the active server limits
func (s *Server) sendLimits(id string) {
	s.send(LimitsResponse{
		ID:           id,
		Status:       "ok",
		MaxCount:     s.cfg.Server.MaxCount,
		MaxTextBytes: s.cfg.Server.MaxTextBytes,
	})
}

// send encodes the given response as one msgpack frame on stdout
func (s *Server) send(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(CloudError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
