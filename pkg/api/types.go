package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port      int
	Bind      string
	APIKey    string // empty disables authentication
	Version   string // FIX protocol version used by the builder
	Delimiter byte   // display delimiter for message fields in responses
}

// MessageRequest carries a raw message for parsing or validation. Delimiter
// is a single-character field separator; empty means detect it from the
// message.
type MessageRequest struct {
	Message   string `json:"message"`
	Delimiter string `json:"delimiter,omitempty"`
}

// ParseResponse is the result of parsing a message.
type ParseResponse struct {
	Fields map[int]string `json:"fields"`
	Names  map[int]string `json:"names,omitempty"`
}

// ValidateResponse is the result of validating a message. Fields carries
// whatever was recoverable even when the message is invalid.
type ValidateResponse struct {
	Valid       bool           `json:"valid"`
	MsgType     string         `json:"msg_type,omitempty"`
	MsgTypeName string         `json:"msg_type_name,omitempty"`
	Reason      string         `json:"reason,omitempty"`
	MissingTags []int          `json:"missing_tags,omitempty"`
	Fields      map[int]string `json:"fields,omitempty"`
	JournalID   string         `json:"journal_id,omitempty"`
}

// BuildRequest asks the builder for a wire message. Field keys are decimal
// tag numbers.
type BuildRequest struct {
	MsgType string            `json:"msg_type"`
	Fields  map[string]string `json:"fields"`
}

// BuildResponse carries the built message in display form plus the computed
// trailer values.
type BuildResponse struct {
	Message    string `json:"message"`
	BodyLength int    `json:"body_length"`
	CheckSum   string `json:"check_sum"`
	JournalID  string `json:"journal_id,omitempty"`
}

// MessageRecord is a journal entry rendered for API consumers, with the
// message in display form.
type MessageRecord struct {
	ID         string `json:"id"`
	Direction  string `json:"direction"`
	MsgType    string `json:"msg_type,omitempty"`
	Message    string `json:"message"`
	Valid      bool   `json:"valid"`
	Reason     string `json:"reason,omitempty"`
	RecordedAt string `json:"recorded_at"`
}
