package request

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	domain "protoreq/internal/domain/request"
	apperrors "protoreq/pkg/errors"
)

// defaultConcurrency caps batch decodes when the caller does not set one.
const defaultConcurrency = 4

// Usecase implements the business logic for encoding and decoding
// create-user request payloads. It provides a clean separation between the
// command-line surface and the schema and storage layers.
type Usecase struct {
	schema   SchemaRegistry      // Registry for message type resolution
	store    Store               // Store for payload persistence
	log      *zap.Logger         // Logger for structured logging
	validate *validator.Validate // Validator for opt-in payload linting
}

// New creates a new instance of Usecase with the provided schema registry,
// payload store, and logger.
func New(schema SchemaRegistry, store Store, log *zap.Logger) *Usecase {
	return &Usecase{schema: schema, store: store, log: log, validate: validator.New()}
}

// Encode builds a user.CreateUserRequest from the input, serializes it in
// deterministic field-number order, verifies the bytes decode back to the
// same message, and persists them at the requested path. The input values
// are encoded exactly as given.
func (uc *Usecase) Encode(ctx context.Context, in EncodeRequest) (*EncodeResponse, error) {
	uc.log.Info("encoding create user request",
		zap.String("username", in.Username),
		zap.String("email", in.Email),
		zap.Int32("age", in.Age),
		zap.String("output", in.OutputPath),
	)

	msg, err := uc.schema.NewMessage(domain.CreateUserRequestName)
	if err != nil {
		return nil, err
	}

	if err := uc.setField(msg, domain.FieldUsername, protoreflect.StringKind, protoreflect.ValueOfString(in.Username)); err != nil {
		return nil, err
	}
	if err := uc.setField(msg, domain.FieldEmail, protoreflect.StringKind, protoreflect.ValueOfString(in.Email)); err != nil {
		return nil, err
	}
	if err := uc.setField(msg, domain.FieldAge, protoreflect.Int32Kind, protoreflect.ValueOfInt32(in.Age)); err != nil {
		return nil, err
	}

	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(msg)
	if err != nil {
		uc.log.Error("failed to serialize request", zap.Error(err))
		return nil, apperrors.NewInternalError("failed to serialize request", err)
	}

	if err := verifyRoundTrip(data, msg); err != nil {
		uc.log.Error("round-trip verification failed", zap.Error(err))
		return nil, err
	}

	if err := uc.store.Write(in.OutputPath, data); err != nil {
		return nil, err
	}

	uc.log.Info("request encoded", zap.String("path", in.OutputPath), zap.Int("bytes", len(data)))
	return &EncodeResponse{Path: in.OutputPath, Size: len(data)}, nil
}

// Decode reads a payload file and renders it as the named message type.
// When the payload is a create-user request, the individual fields are
// extracted alongside the rendering.
func (uc *Usecase) Decode(ctx context.Context, in DecodeRequest) (*DecodeResponse, error) {
	typeName := protoreflect.FullName(in.TypeName)
	if typeName == "" {
		typeName = domain.CreateUserRequestName
	}

	data, err := uc.store.Read(in.Path)
	if err != nil {
		return nil, err
	}

	msg, err := uc.schema.NewMessage(typeName)
	if err != nil {
		return nil, err
	}
	if err := proto.Unmarshal(data, msg); err != nil {
		uc.log.Warn("payload does not decode",
			zap.String("path", in.Path),
			zap.String("type", string(typeName)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to decode %s as %s: %w", in.Path, typeName, err)
	}

	var rendered []byte
	switch in.Format {
	case RenderText, "":
		rendered, err = prototext.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
	case RenderJSON:
		rendered, err = protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}.Marshal(msg)
	default:
		return nil, apperrors.NewValidationError("format", fmt.Sprintf("unknown render format %q (want text or json)", in.Format))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to render decoded payload", err)
	}

	resp := &DecodeResponse{
		TypeName: string(typeName),
		Size:     len(data),
		Rendered: string(rendered),
	}
	if typeName == domain.CreateUserRequestName {
		resp.Fields = extractCreateUserRequest(msg)
	}

	uc.log.Debug("payload decoded",
		zap.String("path", in.Path),
		zap.String("type", string(typeName)),
		zap.Int("bytes", len(data)),
	)
	return resp, nil
}

// DecodeBatch decodes several payload files concurrently. Per-file failures
// are captured in the results rather than aborting the batch; only context
// cancellation stops it early.
func (uc *Usecase) DecodeBatch(ctx context.Context, in DecodeBatchRequest) (*DecodeBatchResponse, error) {
	limit := in.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}

	uc.log.Info("decoding payload batch", zap.Int("files", len(in.Paths)), zap.Int("concurrency", limit))

	results := make([]FileResult, len(in.Paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range in.Paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			res, err := uc.Decode(ctx, DecodeRequest{Path: path, TypeName: in.TypeName, Format: in.Format})
			results[i] = FileResult{Path: path, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		uc.log.Warn("batch finished with failures", zap.Int("failed", failed), zap.Int("files", len(in.Paths)))
	}

	return &DecodeBatchResponse{Results: results, Failed: failed}, nil
}

// Lint checks a decoded create-user request against the acceptance rules the
// receiving server applies. Findings are advisory; an empty list means the
// payload would pass.
func (uc *Usecase) Lint(ctx context.Context, in LintRequest) (*LintResponse, error) {
	err := uc.validate.StructCtx(ctx, in)
	if err == nil {
		return &LintResponse{}, nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, apperrors.NewInternalError("lint failed", err)
	}

	findings := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		findings = append(findings, formatFinding(e))
	}
	uc.log.Warn("lint found problems", zap.Strings("findings", findings))
	return &LintResponse{Findings: findings}, nil
}

// formatFinding converts a validator.FieldError into a human-readable finding.
func formatFinding(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", e.Field())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}

// setField populates a message field after checking it exists with the
// expected kind, so a drifted descriptor set surfaces as a schema error
// instead of a reflection panic.
func (uc *Usecase) setField(msg *dynamicpb.Message, name protoreflect.Name, want protoreflect.Kind, v protoreflect.Value) error {
	fd := msg.Descriptor().Fields().ByName(name)
	if fd == nil {
		return apperrors.NewSchemaError(uc.schema.Path(),
			fmt.Sprintf("field %q is not defined on %s", name, msg.Descriptor().FullName()), nil)
	}
	if fd.Kind() != want {
		return apperrors.NewSchemaError(uc.schema.Path(),
			fmt.Sprintf("field %q on %s has kind %s, want %s", name, msg.Descriptor().FullName(), fd.Kind(), want), nil)
	}
	msg.Set(fd, v)
	return nil
}

// verifyRoundTrip decodes the serialized bytes into a fresh message and
// compares it with the original, guaranteeing the persisted payload carries
// exactly the requested values.
func verifyRoundTrip(data []byte, want *dynamicpb.Message) error {
	got := dynamicpb.NewMessage(want.Descriptor())
	if err := proto.Unmarshal(data, got); err != nil {
		return apperrors.NewInternalError("encoded payload does not decode back", err)
	}
	if !proto.Equal(want, got) {
		return apperrors.NewInternalError("encoded payload does not round-trip to the original request", nil)
	}
	return nil
}

// extractCreateUserRequest pulls the known fields out of a decoded
// create-user request message.
func extractCreateUserRequest(msg *dynamicpb.Message) *domain.CreateUserRequest {
	fields := msg.Descriptor().Fields()
	out := &domain.CreateUserRequest{}
	if fd := fields.ByName(domain.FieldUsername); fd != nil {
		out.Username = msg.Get(fd).String()
	}
	if fd := fields.ByName(domain.FieldEmail); fd != nil {
		out.Email = msg.Get(fd).String()
	}
	if fd := fields.ByName(domain.FieldAge); fd != nil {
		out.Age = int32(msg.Get(fd).Int())
	}
	return out
}
