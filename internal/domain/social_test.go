package domain

import (
	"encoding/json"
	"testing"
)

func TestSocialPlatforms_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		follows int
		wantErr bool
	}{
		{"all three", `{"instagram":true,"tiktok":true,"youtube":true}`, 3, false},
		{"two of three", `{"instagram":true,"tiktok":true,"youtube":false}`, 2, false},
		{"empty object", `{}`, 0, false},
		{"null values", `{"instagram":null,"tiktok":true}`, 1, false},
		{"unknown keys ignored", `{"twitch":true,"facebook":"yes","youtube":true}`, 1, false},
		{"not an object", `["instagram"]`, 0, true},
		{"null document", `null`, 0, true},
		{"non-bool recognized key", `{"instagram":"yes"}`, 0, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var p SocialPlatforms
			err := json.Unmarshal([]byte(tc.in), &p)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := p.Follows(); got != tc.follows {
				t.Fatalf("Follows() = %d; want %d", got, tc.follows)
			}
		})
	}
}

func TestSocialPlatforms_MarshalKeepsExtras(t *testing.T) {
	var p SocialPlatforms
	if err := json.Unmarshal([]byte(`{"tiktok":true,"twitch":{"handle":"x"}}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal out: %v", err)
	}
	if got["tiktok"] != true || got["instagram"] != false || got["youtube"] != false {
		t.Fatalf("recognized keys wrong: %v", got)
	}
	tw, ok := got["twitch"].(map[string]any)
	if !ok || tw["handle"] != "x" {
		t.Fatalf("extra key lost: %v", got)
	}
}

func TestSocialPlatforms_ValueScan(t *testing.T) {
	in := SocialPlatforms{Instagram: true, YouTube: true}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	s, ok := v.(string)
	if !ok {
		t.Fatalf("Value should be a string, got %T", v)
	}

	var fromString, fromBytes, fromNil SocialPlatforms
	if err := fromString.Scan(s); err != nil {
		t.Fatalf("Scan(string): %v", err)
	}
	if err := fromBytes.Scan([]byte(s)); err != nil {
		t.Fatalf("Scan([]byte): %v", err)
	}
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if fromString.Follows() != 2 || fromBytes.Follows() != 2 || fromNil.Follows() != 0 {
		t.Fatalf("unexpected scans: %+v %+v %+v", fromString, fromBytes, fromNil)
	}
	if err := fromNil.Scan(42); err == nil {
		t.Fatalf("Scan(int) should fail")
	}
}
