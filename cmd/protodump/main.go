// Command protodump decodes encoded create-user payload files back into
// readable form, the inverse of createuser. It exists for checking what a
// payload actually carries before sending it anywhere.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"protoreq/internal/adapter/cli"
	"protoreq/internal/app"
	"protoreq/internal/usecase/request"
	apperrors "protoreq/pkg/errors"
	"protoreq/pkg/logger"
)

func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "protodump: %v\n", err)

		var schemaErr *apperrors.SchemaError
		if errors.As(err, &schemaErr) {
			fmt.Fprintln(os.Stderr, schemaErr.Remediation)
		}
	}
	os.Exit(code)
}

// run decodes the requested payload files and reports per-file results.
// The exit code is 0 only when every file decoded and, with --lint, no
// findings were raised; usage errors exit 2.
func run(args []string, out io.Writer) (int, error) {
	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0, nil
		}
		return 2, err
	}

	ctx, stop := signal.NotifyContext(logger.WithRunID(context.Background()), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appOpts := []app.Option{app.WithDescriptorPath(opts.descriptorPath)}
	if opts.verbose {
		appOpts = append(appOpts, app.WithLogLevel("debug"))
	}

	a, err := app.New(ctx, appOpts...)
	if err != nil {
		return 1, err
	}
	defer a.Close()

	batch, err := a.Container.Requests.DecodeBatch(ctx, request.DecodeBatchRequest{
		Paths:       opts.files,
		TypeName:    opts.typeName,
		Format:      request.RenderFormat(opts.format),
		Concurrency: opts.jobs,
	})
	if err != nil {
		return 1, err
	}

	reporter := cli.NewReporter(out)
	reporter.DumpReport(batch)

	failed := batch.Failed
	if opts.lint {
		for _, res := range batch.Results {
			if res.Err != nil || res.Result.Fields == nil {
				continue
			}
			lint, err := a.Container.Requests.Lint(ctx, request.LintRequest{
				Username: res.Result.Fields.Username,
				Email:    res.Result.Fields.Email,
				Age:      res.Result.Fields.Age,
			})
			if err != nil {
				return 1, err
			}
			reporter.LintReport(res.Path, lint)
			failed += len(lint.Findings)
		}
	}

	if failed > 0 {
		return 1, nil
	}
	return 0, nil
}
