package request

import "google.golang.org/protobuf/reflect/protoreflect"

// CreateUserRequestName is the fully qualified name of the request message
// in api/proto/user.proto. The descriptor set loaded at runtime must
// declare it.
const CreateUserRequestName protoreflect.FullName = "user.CreateUserRequest"

// Field names within user.CreateUserRequest.
const (
	FieldUsername protoreflect.Name = "username"
	FieldEmail    protoreflect.Name = "email"
	FieldAge      protoreflect.Name = "age"
)

// CreateUserRequest represents a create-user request before encoding.
type CreateUserRequest struct {
	Username string // Username is the account name to create
	Email    string // Email is the contact address for the account
	Age      int32  // Age in years; accepted as-is, integer parsing aside
}
