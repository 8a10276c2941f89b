package citro

// CommandRequest is the body of POST /api/command.
type CommandRequest struct {
	Transcript    string `json:"transcript"`
	CurrentPage   string `json:"currentPage,omitempty"`
	UserID        string `json:"userId,omitempty"`
	Role          string `json:"role,omitempty"`
	Authenticated bool   `json:"isAuthenticated"`
}

// Action tells the hosting UI what to do with a response.
type Action struct {
	Type    string         `json:"type"`
	Target  string         `json:"target,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

// CommandResponse is the rendered result of one voice command.
type CommandResponse struct {
	Reply      string         `json:"reply"`
	Action     *Action        `json:"action"`
	Data       map[string]any `json:"data"`
	Intent     string         `json:"intent"`
	Confidence float64        `json:"confidence"`
}

// commandEnvelope is the wire envelope around a command response.
type commandEnvelope struct {
	Success bool             `json:"success"`
	Data    *CommandResponse `json:"data"`
	Error   string           `json:"error,omitempty"`
}

// Stats is the pipeline counter snapshot from GET /api/stats.
type Stats struct {
	TotalCommands  int64           `json:"total_commands"`
	CacheHits      int64           `json:"cache_hits"`
	LowConfidence  int64           `json:"low_confidence"`
	FailedCommands int64           `json:"failed_commands"`
	Recent         []CommandRecord `json:"recent"`
}

// CommandRecord is one recently processed command.
type CommandRecord struct {
	Transcript string  `json:"transcript"`
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	At         string  `json:"at"`
}
