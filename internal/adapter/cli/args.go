package cli

import (
	"fmt"
	"strconv"

	domain "protoreq/internal/domain/request"
	apperrors "protoreq/pkg/errors"
)

// ParseArgs maps positional arguments onto a create-user request. The
// argument contract is exact-count: three arguments override the defaults,
// any other count (including one or two) keeps the defaults untouched and
// is reported through the second return value rather than as an error.
func ParseArgs(args []string, defaults domain.CreateUserRequest) (domain.CreateUserRequest, bool, error) {
	if len(args) != 3 {
		return defaults, true, nil
	}

	age, err := strconv.ParseInt(args[2], 10, 32)
	if err != nil {
		return domain.CreateUserRequest{}, false,
			apperrors.NewValidationError("age", fmt.Sprintf("age must be an integer, got %q", args[2]))
	}

	return domain.CreateUserRequest{
		Username: args[0],
		Email:    args[1],
		Age:      int32(age),
	}, false, nil
}
