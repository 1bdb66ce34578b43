// Package schematest provides the compiled form of api/proto/user.proto for
// tests, so they never have to shell out to protoc. A drift test in the
// schema package pins it against the checked-in schema definition.
package schematest

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// FileDescriptorSet returns the descriptor set protoc produces for
// api/proto/user.proto with --descriptor_set_out.
func FileDescriptorSet() *descriptorpb.FileDescriptorSet {
	return &descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{userFile()},
	}
}

// Bytes returns the wire form of the descriptor set.
func Bytes(tb testing.TB) []byte {
	tb.Helper()
	data, err := proto.Marshal(FileDescriptorSet())
	require.NoError(tb, err)
	return data
}

// Write places the compiled descriptor set at path on fs.
func Write(tb testing.TB, fs afero.Fs, path string) {
	tb.Helper()
	require.NoError(tb, afero.WriteFile(fs, path, Bytes(tb), 0o644))
}

func userFile() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("api/proto/user.proto"),
		Package: proto.String("user"),
		Syntax:  proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("protoreq/api/gen/go/user;userpb"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("User"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalarField("id", 1, descriptorpb.FieldDescriptorProto_TYPE_INT64),
					scalarField("username", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					scalarField("email", 3, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					scalarField("age", 4, descriptorpb.FieldDescriptorProto_TYPE_INT32),
					scalarField("active", 5, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
					repeatedField("tags", 6, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					mapField("metadata", 7, ".user.User.MetadataEntry"),
				},
				NestedType: []*descriptorpb.DescriptorProto{
					{
						Name: proto.String("MetadataEntry"),
						Field: []*descriptorpb.FieldDescriptorProto{
							scalarField("key", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
							scalarField("value", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
						},
						Options: &descriptorpb.MessageOptions{MapEntry: proto.Bool(true)},
					},
				},
			},
			{
				Name: proto.String("UserList"),
				Field: []*descriptorpb.FieldDescriptorProto{
					repeatedMessageField("users", 1, ".user.User"),
					scalarField("total", 2, descriptorpb.FieldDescriptorProto_TYPE_INT32),
				},
			},
			{
				Name: proto.String("CreateUserRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalarField("username", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					scalarField("email", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
					scalarField("age", 3, descriptorpb.FieldDescriptorProto_TYPE_INT32),
				},
			},
			{
				Name: proto.String("CreateUserResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					messageField("user", 1, ".user.User"),
					scalarField("success", 2, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
					scalarField("message", 3, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				},
			},
		},
	}
}

func scalarField(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(number),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     typ.Enum(),
		JsonName: proto.String(name),
	}
}

func repeatedField(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	f := scalarField(name, number, typ)
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

func messageField(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := scalarField(name, number, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
	f.TypeName = proto.String(typeName)
	return f
}

func repeatedMessageField(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := messageField(name, number, typeName)
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

func mapField(name string, number int32, entryTypeName string) *descriptorpb.FieldDescriptorProto {
	return repeatedMessageField(name, number, entryTypeName)
}
