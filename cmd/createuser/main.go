package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"protoreq/internal/adapter/cli"
	"protoreq/internal/app"
	"protoreq/internal/usecase/request"
	apperrors "protoreq/pkg/errors"
	"protoreq/pkg/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "createuser: %v\n", err)

		var schemaErr *apperrors.SchemaError
		if errors.As(err, &schemaErr) {
			fmt.Fprintln(os.Stderr, schemaErr.Remediation)
		}
		os.Exit(1)
	}
}

// run encodes one create-user request: wire the app, resolve the input
// values, encode, report. The schema is loaded before the arguments are
// even looked at, so a missing descriptor set always wins.
func run(args []string, out io.Writer) error {
	ctx := logger.WithRunID(context.Background())

	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	req, usedDefaults, err := cli.ParseArgs(args, a.Defaults())
	if err != nil {
		return err
	}
	if usedDefaults && len(args) > 0 {
		a.Logger.Warn("argument count is not exactly three, using defaults",
			zap.Int("got", len(args)),
		)
	}

	resp, err := a.Container.Requests.Encode(ctx, request.EncodeRequest{
		Username:   req.Username,
		Email:      req.Email,
		Age:        req.Age,
		OutputPath: a.Config.Output.File,
	})
	if err != nil {
		return err
	}

	cli.NewReporter(out).EncodeReport(req, resp, a.Endpoint())
	return nil
}
