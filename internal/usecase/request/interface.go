package request

import (
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// SchemaRegistry defines the interface for resolving message types from the
// loaded descriptor set. It abstracts the schema layer, allowing tests to
// supply hand-built registries instead of files produced by protoc.
type SchemaRegistry interface {
	MessageDescriptor(name protoreflect.FullName) (protoreflect.MessageDescriptor, error) // Resolve a message descriptor by full name
	NewMessage(name protoreflect.FullName) (*dynamicpb.Message, error)                    // Build an empty dynamic message of the named type
	Path() string                                                                         // Descriptor set location, for error reporting
}

// Store defines the interface for payload persistence. It abstracts the
// filesystem so the usecase can be tested against an in-memory store.
type Store interface {
	Write(path string, data []byte) error // Persist a payload, replacing any previous one
	Read(path string) ([]byte, error)     // Load a previously persisted payload
}
