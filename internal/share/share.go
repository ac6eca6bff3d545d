// Package share converts a Configuration to and from JSON and a compact
// URL-safe share link. Every decode path returns a nil/empty sentinel on
// failure; nothing here panics or raises.
package share

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/hyperifyio/medprompt/internal/config"
)

// ParamName is the single query parameter carrying the encoded configuration.
const ParamName = "c"

// MaxShareLinkLength is a soft browser-compatibility guard, not a hard limit.
const MaxShareLinkLength = 2000

// ToJSON renders a stable pretty-printed JSON form of the configuration.
func ToJSON(cfg config.Config) string {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

// FromJSON parses a configuration, returning nil on malformed JSON or when
// the minimal shape marker (the activeTab key) is absent. Deep schema
// validation belongs to the validate package, not here.
func FromJSON(s string) *config.Config {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &probe); err != nil {
		return nil
	}
	if _, ok := probe["activeTab"]; !ok {
		return nil
	}
	var cfg config.Config
	if err := json.Unmarshal([]byte(s), &cfg); err != nil {
		return nil
	}
	return &cfg
}

// EncodeShareLink produces baseURL?c=base64(percent-encode(JSON(cfg))).
// Returns "" on any failure. Oversized payloads are not an error here; see
// TooLong.
func EncodeShareLink(cfg config.Config, baseURL string) string {
	b, err := json.Marshal(cfg)
	if err != nil {
		return ""
	}
	encoded := base64.URLEncoding.EncodeToString([]byte(url.QueryEscape(string(b))))
	base := strings.TrimRight(baseURL, "?&")
	if base == "" {
		return ""
	}
	return base + "?" + ParamName + "=" + encoded
}

// DecodeShareLink is the inverse transform. Nil on failure at any stage:
// unparsable URL, missing parameter, bad base64, bad percent-encoding, or
// invalid configuration JSON.
func DecodeShareLink(link string) *config.Config {
	u, err := url.Parse(link)
	if err != nil {
		return nil
	}
	encoded := u.Query().Get(ParamName)
	if encoded == "" {
		return nil
	}
	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}
	jsonStr, err := url.QueryUnescape(string(raw))
	if err != nil {
		return nil
	}
	return FromJSON(jsonStr)
}

// TooLong reports whether the encoded share link exceeds the soft length
// guard most browsers tolerate.
func TooLong(cfg config.Config, baseURL string) bool {
	return len(EncodeShareLink(cfg, baseURL)) > MaxShareLinkLength
}
