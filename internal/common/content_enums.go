package common

import "strings"

// ContentStatus is the lifecycle state of a content item
type ContentStatus string

const (
	ContentStatusActive   ContentStatus = "active"
	ContentStatusArchived ContentStatus = "archived"
)

func (s ContentStatus) String() string {
	return string(s)
}

func (s ContentStatus) IsValid() bool {
	return s == ContentStatusActive || s == ContentStatusArchived
}

// ContentType is the format of the produced material
type ContentType string

const (
	ContentTypeVideo      ContentType = "video"
	ContentTypePost       ContentType = "post"
	ContentTypeStory      ContentType = "story"
	ContentTypeReel       ContentType = "reel"
	ContentTypeLiveStream ContentType = "live_stream"
	ContentTypeOther      ContentType = "other"
)

func (t ContentType) String() string {
	return string(t)
}

func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeVideo, ContentTypePost, ContentTypeStory, ContentTypeReel, ContentTypeLiveStream, ContentTypeOther:
		return true
	}
	return false
}

// SocialMediaType is where the content gets published
type SocialMediaType string

const (
	SocialMediaYouTube   SocialMediaType = "youtube"
	SocialMediaInstagram SocialMediaType = "instagram"
	SocialMediaTelegram  SocialMediaType = "telegram"
	SocialMediaTikTok    SocialMediaType = "tiktok"
	SocialMediaVK        SocialMediaType = "vk"
	SocialMediaOther     SocialMediaType = "other"
)

func (s SocialMediaType) String() string {
	return string(s)
}

func (s SocialMediaType) IsValid() bool {
	switch s {
	case SocialMediaYouTube, SocialMediaInstagram, SocialMediaTelegram, SocialMediaTikTok, SocialMediaVK, SocialMediaOther:
		return true
	}
	return false
}

// ParseContentType normalizes case and spaces. Unknown values are kept as given
// so IsValid rejects them.
func ParseContentType(raw string) ContentType {
	return ContentType(strings.ToLower(strings.TrimSpace(raw)))
}

// ParseSocialMediaType normalizes case and spaces. Unknown values are kept as given
// so IsValid rejects them; "other" must be chosen explicitly.
func ParseSocialMediaType(raw string) SocialMediaType {
	return SocialMediaType(strings.ToLower(strings.TrimSpace(raw)))
}
