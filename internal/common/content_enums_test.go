package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentStatus_String(t *testing.T) {
	assert.Equal(t, "active", ContentStatusActive.String())
	assert.Equal(t, "archived", ContentStatusArchived.String())
}

func TestContentStatus_IsValid(t *testing.T) {
	assert.True(t, ContentStatusActive.IsValid())
	assert.True(t, ContentStatusArchived.IsValid())

	invalidStatus := ContentStatus("deleted")
	assert.False(t, invalidStatus.IsValid())
}

func TestContentType_IsValid(t *testing.T) {
	validTypes := []ContentType{
		ContentTypeVideo,
		ContentTypePost,
		ContentTypeStory,
		ContentTypeReel,
		ContentTypeLiveStream,
		ContentTypeOther,
	}

	for _, contentType := range validTypes {
		assert.True(t, contentType.IsValid(), "Failed for content type: %s", contentType)
	}
	assert.False(t, ContentType("podcast").IsValid())
	assert.False(t, ContentType("").IsValid())
}

func TestParseSocialMediaType(t *testing.T) {
	cases := []struct {
		input     string
		expected  SocialMediaType
		wantValid bool
	}{
		{"youtube", SocialMediaYouTube, true},
		{"YouTube", SocialMediaYouTube, true},
		{"  telegram ", SocialMediaTelegram, true},
		{"TIKTOK", SocialMediaTikTok, true},
		{"Other", SocialMediaOther, true},
		{"youtbe", SocialMediaType("youtbe"), false},
		{"", SocialMediaType(""), false},
	}

	for _, testCase := range cases {
		result := ParseSocialMediaType(testCase.input)
		assert.Equal(t, testCase.expected, result, "Failed for input: %s", testCase.input)
		assert.Equal(t, testCase.wantValid, result.IsValid(), "Failed for input: %s", testCase.input)
	}
}

func TestParseContentType(t *testing.T) {
	assert.Equal(t, ContentTypeLiveStream, ParseContentType(" Live_Stream "))
	assert.True(t, ParseContentType("VIDEO").IsValid())
	assert.False(t, ParseContentType("vidoe").IsValid())
}

func TestBillEnums_IsValid(t *testing.T) {
	assert.True(t, PaymentStatusPaid.IsValid())
	assert.True(t, PaymentStatusNotPaid.IsValid())
	assert.False(t, PaymentStatus("partially").IsValid())

	assert.True(t, BillTypeContent.IsValid())
	assert.False(t, BillType("refund").IsValid())

	assert.True(t, BillStatusActive.IsValid())
	assert.True(t, BillStatusArchived.IsValid())
	assert.False(t, BillStatus("closed").IsValid())

	assert.True(t, PaymentTypeBankTransfer.IsValid())
	assert.False(t, PaymentType("barter").IsValid())

	assert.True(t, ContactTypeTelegram.IsValid())
	assert.False(t, ContactType("fax").IsValid())
}

func TestLifecycleError_MatchesKind(t *testing.T) {
	err := NewLifecycleError("edit", ErrInvalidState, "archived content %s cannot be edited", "abc")

	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "edit: archived content abc cannot be edited", err.Error())

	wrapped := fmt.Errorf("handler: %w", err)
	var lifecycleErr *LifecycleError
	assert.True(t, errors.As(wrapped, &lifecycleErr))
	assert.Equal(t, "edit", lifecycleErr.Op)
}

func TestLifecycleError_EmptyMessage(t *testing.T) {
	err := &LifecycleError{Op: "delete", Kind: ErrNotFound}
	assert.Equal(t, "delete: not found", err.Error())
}
