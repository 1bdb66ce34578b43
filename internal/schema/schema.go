package schema

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"

	apperrors "protoreq/pkg/errors"
)

// Registry resolves protobuf message types from a compiled descriptor set
// (the output of protoc --descriptor_set_out). It is the runtime stand-in
// for statically generated bindings: the schema is loaded, not compiled in,
// and a missing descriptor set must stop the tool before any encoding.
type Registry struct {
	files *protoregistry.Files
	path  string
	log   *zap.Logger
}

// Load reads a FileDescriptorSet from path and builds a registry of the
// message types it declares. Any failure is a SchemaError carrying
// remediation instructions for the operator.
func Load(fs afero.Fs, path string, log *zap.Logger) (*Registry, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Error("schema descriptor set not found", zap.String("path", path))
			return nil, apperrors.NewSchemaError(path, "schema descriptor set not found", err)
		}
		return nil, apperrors.NewSchemaError(path, "failed to read schema descriptor set", err)
	}

	var set descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &set); err != nil {
		return nil, apperrors.NewSchemaError(path, "descriptor set is not a valid FileDescriptorSet", err)
	}
	if len(set.GetFile()) == 0 {
		return nil, apperrors.NewSchemaError(path, "descriptor set declares no files", nil)
	}

	files, err := protodesc.NewFiles(&set)
	if err != nil {
		return nil, apperrors.NewSchemaError(path, "failed to build type registry from descriptor set", err)
	}

	log.Debug("schema descriptor set loaded",
		zap.String("path", path),
		zap.Int("files", files.NumFiles()),
	)

	return &Registry{files: files, path: path, log: log}, nil
}

// Path returns the descriptor set location the registry was loaded from.
func (r *Registry) Path() string {
	return r.path
}

// MessageDescriptor resolves the descriptor for a fully qualified message name.
func (r *Registry) MessageDescriptor(name protoreflect.FullName) (protoreflect.MessageDescriptor, error) {
	desc, err := r.files.FindDescriptorByName(name)
	if err != nil {
		return nil, apperrors.NewSchemaError(r.path,
			fmt.Sprintf("message %s is not defined in the descriptor set", name), err)
	}
	md, ok := desc.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, apperrors.NewSchemaError(r.path,
			fmt.Sprintf("%s is not a message type", name), nil)
	}
	return md, nil
}

// NewMessage returns an empty dynamic message of the named type, ready for
// population through protobuf reflection.
func (r *Registry) NewMessage(name protoreflect.FullName) (*dynamicpb.Message, error) {
	md, err := r.MessageDescriptor(name)
	if err != nil {
		return nil, err
	}
	return dynamicpb.NewMessage(md), nil
}
