package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/image-effects-mcp/internal/effects"
	"github.com/ironsheep/image-effects-mcp/internal/imaging"
)

// defaultPreviewMaxSize bounds the longest side of preview PNGs.
const defaultPreviewMaxSize = 512

// Config holds server settings.
type Config struct {
	// Debug enables per-call logging on stderr.
	Debug bool

	// PreviewMaxSize is the longest side, in pixels, of previews returned by
	// effect tools. Zero or less disables downscaling.
	PreviewMaxSize int
}

// ConfigFromEnv reads IMAGE_EFFECTS_LOG_LEVEL and IMAGE_EFFECTS_PREVIEW_MAX.
// Unparseable values fall back to the defaults.
func ConfigFromEnv() Config {
	cfg := Config{
		Debug:          os.Getenv("IMAGE_EFFECTS_LOG_LEVEL") == "debug",
		PreviewMaxSize: defaultPreviewMaxSize,
	}
	if v := os.Getenv("IMAGE_EFFECTS_PREVIEW_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PreviewMaxSize = n
		} else {
			log.Printf("Ignoring IMAGE_EFFECTS_PREVIEW_MAX=%q: %v", v, err)
		}
	}
	return cfg
}

// Server handles MCP protocol communication
type Server struct {
	workspace *imaging.Workspace
	cfg       Config
	preview   func(img *effects.Image, maxSize int) (*imaging.PreviewResult, error)
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a server configured from the environment.
func New() *Server {
	return NewWithConfig(ConfigFromEnv())
}

// NewWithConfig creates a server with an explicit configuration.
func NewWithConfig(cfg Config) *Server {
	return &Server{
		workspace: imaging.NewWorkspace(),
		cfg:       cfg,
		preview:   imaging.Preview,
	}
}

// Run serves MCP over stdin and stdout until stdin is closed.
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve reads one JSON-RPC request per line from in and writes responses to
// out. Lines that fail to parse are logged and skipped.
func (s *Server) Serve(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	// Previews can make tool calls large.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 16*1024*1024)

	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				log.Printf("Failed to encode response: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return s.errorResponse(req.ID, -32601, fmt.Sprintf("Method not found: %s", req.Method), "")
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "image-effects-mcp",
				"version": Version,
			},
		},
	}
}

// Version is reported in the initialize handshake; main overrides it from
// its ldflags.
var Version = "dev"
