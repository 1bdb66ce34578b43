package request

import domain "protoreq/internal/domain/request"

// RenderFormat selects the human-readable rendering of a decoded payload.
type RenderFormat string

const (
	// RenderText renders the payload in protobuf text format.
	RenderText RenderFormat = "text"
	// RenderJSON renders the payload in canonical protobuf JSON.
	RenderJSON RenderFormat = "json"
)

// EncodeRequest represents the payload to encode and where to put it.
// Username and email are passed through untouched; whether the values are
// acceptable is the receiving server's call, not the encoder's.
type EncodeRequest struct {
	Username   string
	Email      string
	Age        int32
	OutputPath string
}

// EncodeResponse represents the outcome of a successful encode.
type EncodeResponse struct {
	Path string // Where the payload was written
	Size int    // Encoded payload size in bytes
}

// DecodeRequest represents a request to decode one payload file.
// TypeName defaults to user.CreateUserRequest and Format to text.
type DecodeRequest struct {
	Path     string
	TypeName string
	Format   RenderFormat
}

// DecodeResponse represents a decoded payload.
type DecodeResponse struct {
	TypeName string                    // Fully qualified message type decoded as
	Size     int                       // Raw payload size in bytes
	Rendered string                    // Human-readable rendering per Format
	Fields   *domain.CreateUserRequest // Populated when decoding a create-user request
}

// DecodeBatchRequest represents a request to decode several payload files
// concurrently. Concurrency caps the number of files in flight; zero means
// the default cap.
type DecodeBatchRequest struct {
	Paths       []string
	TypeName    string
	Format      RenderFormat
	Concurrency int
}

// FileResult represents the per-file outcome of a batch decode.
type FileResult struct {
	Path   string
	Result *DecodeResponse
	Err    error
}

// DecodeBatchResponse represents the outcome of a batch decode. Results are
// in the same order as the requested paths.
type DecodeBatchResponse struct {
	Results []FileResult
	Failed  int
}

// LintRequest represents a decoded create-user request to check against the
// server-side acceptance rules. Linting is advisory and opt-in; encoding
// never runs it.
type LintRequest struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Age      int32  `validate:"gte=0"`
}

// LintResponse represents lint findings. An empty Findings slice means the
// payload would pass the server-side checks.
type LintResponse struct {
	Findings []string
}
