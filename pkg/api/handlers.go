package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ssargent/fixhub/pkg/dictionary"
	"github.com/ssargent/fixhub/pkg/fix"
	"github.com/ssargent/fixhub/pkg/journal"
)

// Server holds the API server state
type Server struct {
	parser    *fix.Parser
	validator *fix.Validator
	builder   *fix.Builder
	journal   *journal.Journal
	config    ServerConfig
	metrics   *Metrics
}

// diagSink routes parser diagnostics to the standard logger and, when
// metrics are wired, counts skipped fields.
type diagSink struct {
	metrics *Metrics
}

func (s *diagSink) Warnf(format string, args ...interface{}) {
	log.Printf("WARN: "+format, args...)
	if s.metrics != nil {
		s.metrics.RecordMalformedField()
	}
}

// NewServer creates a new API server. A nil catalog selects the built-in
// default; a nil journal disables message journaling; metrics may be nil in
// tests.
func NewServer(config ServerConfig, catalog dictionary.Catalog, jrnl *journal.Journal, metrics *Metrics) (*Server, error) {
	builder, err := fix.NewBuilder(config.Version)
	if err != nil {
		return nil, err
	}
	return &Server{
		parser:    fix.NewParser(fix.WithDiagnostics(&diagSink{metrics: metrics})),
		validator: fix.NewValidator(catalog),
		builder:   builder,
		journal:   jrnl,
		config:    config,
		metrics:   metrics,
	}, nil
}

// handleHealth reports service health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleParse normalizes and parses a raw message into tag-value fields.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	_, fields, ok := s.decodeAndParse(w, r)
	if !ok {
		return
	}

	names := make(map[int]string)
	for tag := range fields {
		if name, known := fix.TagName(tag); known {
			names[tag] = name
		}
	}

	sendSuccess(w, ParseResponse{Fields: fields, Names: names})
}

// handleValidate runs the full normalize/parse/validate pipeline and journals
// the outcome.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	req, fields, ok := s.decodeAndParse(w, r)
	if !ok {
		return
	}

	result := s.validator.Validate(fields)

	resp := ValidateResponse{
		Valid:  result.Valid,
		Fields: result.Fields,
	}
	if code, present := fields.MsgType(); present {
		resp.MsgType = code
		if name, known := s.validator.TypeName(code); known {
			resp.MsgTypeName = name
		}
	}
	if result.Err != nil {
		resp.Reason = result.Err.Error()
		var missing *fix.MissingTagsError
		if errors.As(result.Err, &missing) {
			resp.MissingTags = missing.Missing
		}
	}
	if s.metrics != nil {
		s.metrics.RecordValidation(result.Valid, reasonLabel(result.Err))
	}

	// Journal the inbound message in canonical form.
	if s.journal != nil {
		normalized, err := fix.Normalize(req.Message, delimiterOf(req))
		if err == nil {
			entry := journal.Entry{
				Direction: journal.DirectionInbound,
				MsgType:   resp.MsgType,
				Message:   normalized,
				Valid:     result.Valid,
				Reason:    resp.Reason,
			}
			id, err := s.journal.Append(entry)
			if s.metrics != nil {
				s.metrics.RecordJournalOperation("append", err == nil)
			}
			if err != nil {
				log.Printf("WARN: failed to journal message: %v", err)
			} else {
				resp.JournalID = id
			}
		}
	}

	sendSuccess(w, resp)
}

// handleBuild assembles a wire message from a message type and fields.
func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	var req BuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	if req.MsgType == "" {
		sendError(w, "msg_type is required", http.StatusBadRequest)
		return
	}

	fields := make(map[int]string, len(req.Fields))
	for key, value := range req.Fields {
		tag, err := strconv.Atoi(key)
		if err != nil || tag <= 0 {
			sendError(w, fmt.Sprintf("invalid tag %q: tags are positive integers", key), http.StatusBadRequest)
			return
		}
		fields[tag] = value
	}

	msg := s.builder.Build(req.MsgType, fields)
	parsed := s.parser.Parse(msg)
	bodyLength, _ := strconv.Atoi(parsed[fix.TagBodyLength])

	if s.metrics != nil {
		s.metrics.RecordBuild(req.MsgType)
	}

	resp := BuildResponse{
		Message:    fix.Display(msg, s.config.Delimiter),
		BodyLength: bodyLength,
		CheckSum:   parsed[fix.TagCheckSum],
	}

	if s.journal != nil {
		entry := journal.Entry{
			Direction: journal.DirectionOutbound,
			MsgType:   req.MsgType,
			Message:   msg,
			Valid:     true,
		}
		id, err := s.journal.Append(entry)
		if s.metrics != nil {
			s.metrics.RecordJournalOperation("append", err == nil)
		}
		if err != nil {
			log.Printf("WARN: failed to journal message: %v", err)
		} else {
			resp.JournalID = id
		}
	}

	sendSuccess(w, resp)
}

// handleListMessages returns journal entries, newest first.
func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	if s.journal == nil {
		sendError(w, "Journal is not enabled", http.StatusNotFound)
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			sendError(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := s.journal.List(limit)
	if s.metrics != nil {
		s.metrics.RecordJournalOperation("list", err == nil)
	}
	if err != nil {
		sendError(w, "Failed to list messages", http.StatusInternalServerError)
		return
	}

	records := make([]MessageRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, s.toRecord(entry))
	}
	sendSuccess(w, records)
}

// handleGetMessage returns a single journal entry by ID.
func (s *Server) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	if s.journal == nil {
		sendError(w, "Journal is not enabled", http.StatusNotFound)
		return
	}

	id := chi.URLParam(r, "id")
	entry, err := s.journal.Get(id)
	if s.metrics != nil {
		s.metrics.RecordJournalOperation("get", err == nil)
	}
	if err != nil {
		if errors.Is(err, journal.ErrNotFound) {
			sendError(w, "Message not found", http.StatusNotFound)
			return
		}
		sendError(w, fmt.Sprintf("Failed to read message: %v", err), http.StatusBadRequest)
		return
	}

	sendSuccess(w, s.toRecord(*entry))
}

// decodeAndParse handles the shared front half of parse/validate: decode the
// request, normalize the delimiter, parse into fields. Returns ok=false
// after writing an error response.
func (s *Server) decodeAndParse(w http.ResponseWriter, r *http.Request) (MessageRequest, fix.ParsedMessage, bool) {
	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return req, nil, false
	}
	if len(req.Delimiter) > 1 {
		sendError(w, "delimiter must be a single character", http.StatusBadRequest)
		return req, nil, false
	}

	normalized, err := fix.Normalize(req.Message, delimiterOf(req))
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return req, nil, false
	}

	fields := s.parser.Parse(normalized)
	if s.metrics != nil {
		s.metrics.RecordParse()
	}
	return req, fields, true
}

func (s *Server) toRecord(entry journal.Entry) MessageRecord {
	return MessageRecord{
		ID:         entry.ID,
		Direction:  entry.Direction,
		MsgType:    entry.MsgType,
		Message:    fix.Display(entry.Message, s.config.Delimiter),
		Valid:      entry.Valid,
		Reason:     entry.Reason,
		RecordedAt: entry.RecordedAt.Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

// delimiterOf extracts the declared delimiter from a request; zero means
// detect.
func delimiterOf(req MessageRequest) byte {
	if len(req.Delimiter) == 1 {
		return req.Delimiter[0]
	}
	return 0
}

// reasonLabel maps a validation error to a low-cardinality metric label.
func reasonLabel(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, fix.ErrEmptyMessage):
		return "empty_message"
	case errors.Is(err, fix.ErrMissingMsgType):
		return "missing_msg_type"
	default:
		var unknown *fix.UnknownMsgTypeError
		if errors.As(err, &unknown) {
			return "unknown_msg_type"
		}
		var missing *fix.MissingTagsError
		if errors.As(err, &missing) {
			return "missing_required_tags"
		}
		return "other"
	}
}
