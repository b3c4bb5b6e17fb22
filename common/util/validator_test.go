package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/koa-member-api/type/payload"
)

type templateSettings struct {
	PublicURL string  `validate:"required,url"`
	Path      *string `validate:"required_without=Object"`
	Bucket    *string `validate:"required_with=Object"`
	Object    *string
	Version   int `validate:"min=1,max=40"`
}

func ptr(s string) *string { return &s }

// TestValidateStruct_MailPayload tests the optional email override
func TestValidateStruct_MailPayload(t *testing.T) {
	testCases := []struct {
		name       string
		payload    payload.MailBadgePayload
		shouldFail bool
	}{
		{"No override", payload.MailBadgePayload{}, false},
		{"Valid override", payload.MailBadgePayload{Email: "member@example.com"}, false},
		{"Invalid override", payload.MailBadgePayload{Email: "not-an-email"}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(tc.payload)
			if tc.shouldFail {
				assert.Error(t, err, "Should fail validation")
			} else {
				assert.NoError(t, err, "Should pass validation")
			}
		})
	}
}

// TestGetValidationErrors tests the readable messages per tag
func TestGetValidationErrors(t *testing.T) {
	testCases := []struct {
		name     string
		settings templateSettings
		expected []string
	}{
		{
			name:     "Valid with path",
			settings: templateSettings{PublicURL: "https://koa.org.in/member", Path: ptr("badge.pdf"), Version: 4},
			expected: nil,
		},
		{
			name:     "Missing URL",
			settings: templateSettings{Path: ptr("badge.pdf"), Version: 4},
			expected: []string{"PublicURL is required"},
		},
		{
			name:     "Not a URL",
			settings: templateSettings{PublicURL: "koa", Path: ptr("badge.pdf"), Version: 4},
			expected: []string{"PublicURL must be a valid URL"},
		},
		{
			name:     "Neither path nor object",
			settings: templateSettings{PublicURL: "https://koa.org.in/member", Version: 4},
			expected: []string{"Path is required when Object is not set"},
		},
		{
			name:     "Object without bucket",
			settings: templateSettings{PublicURL: "https://koa.org.in/member", Object: ptr("badge.pdf"), Version: 4},
			expected: []string{"Bucket is required when Object is set"},
		},
		{
			name:     "Version out of range",
			settings: templateSettings{PublicURL: "https://koa.org.in/member", Path: ptr("badge.pdf"), Version: 41},
			expected: []string{"Version must be at most 40"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(tc.settings)
			if tc.expected == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.expected, GetValidationErrors(err))
		})
	}
}

// TestGetValidationErrors_TagNames tests that messages use the yaml or json key
func TestGetValidationErrors_TagNames(t *testing.T) {
	type tokenRequest struct {
		Koalm string `yaml:"koalm_number" validate:"required"`
		Role  string `json:"role,omitempty" validate:"oneof=member admin"`
	}

	err := ValidateStruct(tokenRequest{Role: "owner"})
	require.Error(t, err)
	assert.Equal(t, []string{
		"koalm_number is required",
		"role must be one of [member admin]",
	}, GetValidationErrors(err))

	err = ValidateStruct(payload.MailBadgePayload{Email: "nope"})
	require.Error(t, err)
	assert.Equal(t, []string{"email must be a valid email"}, GetValidationErrors(err))
}

// TestGetValidationErrors_NonValidationError tests that unrelated errors yield no messages
func TestGetValidationErrors_NonValidationError(t *testing.T) {
	assert.Empty(t, GetValidationErrors(assert.AnError))
}
