package main

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"protoreq/internal/usecase/request"
)

// options holds the parsed command line for one protodump invocation.
type options struct {
	descriptorPath string
	typeName       string
	format         string
	jobs           int
	lint           bool
	verbose        bool
	files          []string
}

// parseFlags parses the protodump command line. Positional arguments are the
// payload files to decode; at least one is required.
func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("protodump", flag.ContinueOnError)

	opts := &options{}
	fs.StringVarP(&opts.descriptorPath, "descriptor-set", "d", "", "Path to the compiled descriptor set (defaults to SCHEMA_DESCRIPTOR_PATH)")
	fs.StringVarP(&opts.typeName, "type", "t", "user.CreateUserRequest", "Fully qualified message type to decode as")
	fs.StringVarP(&opts.format, "format", "f", "text", "Rendering of decoded payloads: text or json")
	fs.IntVarP(&opts.jobs, "jobs", "j", 0, "Number of files decoded concurrently (0 means the default)")
	fs.BoolVar(&opts.lint, "lint", false, "Check decoded create-user requests against the server-side acceptance rules")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug details")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.files = fs.Args()
	if len(opts.files) == 0 {
		return nil, fmt.Errorf("at least one payload file is required")
	}

	switch request.RenderFormat(opts.format) {
	case request.RenderText, request.RenderJSON:
	default:
		return nil, fmt.Errorf("unknown format %q (want text or json)", opts.format)
	}

	return opts, nil
}
