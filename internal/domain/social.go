package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Recognized social platforms. Only these count towards a request's priority.
const (
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
)

// SocialPlatforms records which platforms a requester declares to follow the
// performer on. Unrecognized keys are kept verbatim in Extra so that they
// round-trip, but they never affect priority.
type SocialPlatforms struct {
	Instagram bool
	TikTok    bool
	YouTube   bool
	Extra     map[string]json.RawMessage
}

// Follows returns the number of recognized platforms marked as followed.
func (p SocialPlatforms) Follows() int {
	n := 0
	for _, v := range []bool{p.Instagram, p.TikTok, p.YouTube} {
		if v {
			n++
		}
	}
	return n
}

// UnmarshalJSON accepts any JSON object. Recognized keys must be booleans
// (null counts as false).
func (p *SocialPlatforms) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("social_platforms must be an object: %w", err)
	}
	if raw == nil {
		return errors.New("social_platforms must be an object")
	}

	out := SocialPlatforms{}
	for k, v := range raw {
		var dst *bool
		switch k {
		case PlatformInstagram:
			dst = &out.Instagram
		case PlatformTikTok:
			dst = &out.TikTok
		case PlatformYouTube:
			dst = &out.YouTube
		default:
			if out.Extra == nil {
				out.Extra = make(map[string]json.RawMessage)
			}
			out.Extra[k] = v
			continue
		}
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("social_platforms.%s must be a boolean", k)
		}
	}
	*p = out
	return nil
}

// MarshalJSON writes the platforms as a flat object.
func (p SocialPlatforms) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(p.Extra)+3)
	for k, v := range p.Extra {
		m[k] = v
	}
	m[PlatformInstagram] = p.Instagram
	m[PlatformTikTok] = p.TikTok
	m[PlatformYouTube] = p.YouTube
	return json.Marshal(m)
}

// Value implements driver.Valuer; the column holds the JSON text.
func (p SocialPlatforms) Value() (driver.Value, error) {
	b, err := p.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (p *SocialPlatforms) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = SocialPlatforms{}
		return nil
	case string:
		if v == "" {
			*p = SocialPlatforms{}
			return nil
		}
		return p.UnmarshalJSON([]byte(v))
	case []byte:
		if len(v) == 0 {
			*p = SocialPlatforms{}
			return nil
		}
		return p.UnmarshalJSON(v)
	default:
		return fmt.Errorf("social_platforms: unsupported column type %T", src)
	}
}
