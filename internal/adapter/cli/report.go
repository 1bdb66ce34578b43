package cli

import (
	"fmt"
	"io"
	"strings"

	domain "protoreq/internal/domain/request"
	"protoreq/internal/usecase/request"
)

// Reporter writes the human-readable command output. Status lines go to a
// single writer so commands can keep stdout clean of log noise and tests can
// capture the exact text.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a new Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// EncodeReport prints the confirmation block for a written payload along
// with a copy-pasteable curl command for sending it to the create-user
// endpoint.
func (r *Reporter) EncodeReport(req domain.CreateUserRequest, resp *request.EncodeResponse, endpoint string) {
	fmt.Fprintf(r.out, "✓ Generated protobuf request file: %s (%d bytes)\n", resp.Path, resp.Size)
	fmt.Fprintf(r.out, "  username: %s\n", req.Username)
	fmt.Fprintf(r.out, "  email: %s\n", req.Email)
	fmt.Fprintf(r.out, "  age: %d\n", req.Age)
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Send the request with:")
	fmt.Fprintf(r.out, "  curl -X POST %s \\\n", endpoint)
	fmt.Fprintf(r.out, "  -H 'Content-Type: application/x-protobuf' \\\n")
	fmt.Fprintf(r.out, "  -H 'Accept: application/x-protobuf' \\\n")
	fmt.Fprintf(r.out, "  --data-binary @%s \\\n", resp.Path)
	fmt.Fprintf(r.out, "  --output response.bin\n")
}

// DumpReport prints per-file decode results in request order.
func (r *Reporter) DumpReport(resp *request.DecodeBatchResponse) {
	for i, res := range resp.Results {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		if res.Err != nil {
			fmt.Fprintf(r.out, "✗ %s: %v\n", res.Path, res.Err)
			continue
		}

		fmt.Fprintf(r.out, "✓ %s (%s, %d bytes)\n", res.Path, res.Result.TypeName, res.Result.Size)
		rendered := strings.TrimRight(res.Result.Rendered, "\n")
		if rendered == "" {
			fmt.Fprintln(r.out, "  (no fields set)")
			continue
		}
		for _, line := range strings.Split(rendered, "\n") {
			fmt.Fprintf(r.out, "  %s\n", line)
		}
	}
}

// LintReport prints lint findings for a decoded payload.
func (r *Reporter) LintReport(path string, resp *request.LintResponse) {
	if len(resp.Findings) == 0 {
		fmt.Fprintf(r.out, "✓ %s: payload passes server-side checks\n", path)
		return
	}

	fmt.Fprintf(r.out, "✗ %s: %d problem(s)\n", path, len(resp.Findings))
	for _, finding := range resp.Findings {
		fmt.Fprintf(r.out, "  - %s\n", finding)
	}
}
