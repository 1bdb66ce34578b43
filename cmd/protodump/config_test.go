package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    *options
		expectError string
	}{
		{
			name: "files only gets defaults",
			args: []string{"create_user.bin"},
			expected: &options{
				typeName: "user.CreateUserRequest",
				format:   "text",
				files:    []string{"create_user.bin"},
			},
		},
		{
			name: "all flags",
			args: []string{"-d", "schemas/user.protoset", "-t", "user.User", "-f", "json", "-j", "8", "--lint", "-v", "a.bin", "b.bin"},
			expected: &options{
				descriptorPath: "schemas/user.protoset",
				typeName:       "user.User",
				format:         "json",
				jobs:           8,
				lint:           true,
				verbose:        true,
				files:          []string{"a.bin", "b.bin"},
			},
		},
		{
			name: "flags after files still parse",
			args: []string{"a.bin", "--format", "json"},
			expected: &options{
				typeName: "user.CreateUserRequest",
				format:   "json",
				files:    []string{"a.bin"},
			},
		},
		{
			name:        "no files",
			args:        []string{"-f", "json"},
			expectError: "at least one payload file",
		},
		{
			name:        "unknown format",
			args:        []string{"-f", "yaml", "a.bin"},
			expectError: "unknown format",
		},
		{
			name:        "unknown flag",
			args:        []string{"--nope", "a.bin"},
			expectError: "unknown flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseFlags(tt.args)

			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts)
		})
	}
}
