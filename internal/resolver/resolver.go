// Package resolver classifies and normalizes YouTube URLs. All
// functions are pure; resolving a channel handle to a numeric ID is an
// I/O operation and belongs to the gather service.
package resolver

import (
	"net/url"
	"strings"
)

// Kind identifies what a classified URL points at.
type Kind string

const (
	KindVideo       Kind = "video"
	KindChannel     Kind = "channel"
	KindUnsupported Kind = "unsupported"
)

// Target is a classified URL. For KindChannel either ChannelID is set
// (taken verbatim from a /channel/ path) or Handle is set (an @name
// that still needs a remote lookup to resolve).
type Target struct {
	Kind      Kind
	VideoID   string
	ChannelID string
	Handle    string
}

const (
	watchMarker     = "watch?v="
	shortLinkMarker = "youtu.be/"
	channelMarker   = "/channel/"
	handleMarker    = "/@"
)

// IsYouTubeURL reports whether the raw string plausibly points at
// YouTube at all. Anything else is rejected before any remote call.
func IsYouTubeURL(raw string) bool {
	return strings.Contains(raw, "youtube.com") || strings.Contains(raw, "youtu.be")
}

// Normalize rewrites equivalent URL forms to one canonical string so
// that identical targets always produce the same cache key: short
// links become watch links and the mobile host becomes the canonical
// host. Unrecognized inputs pass through unchanged.
func Normalize(raw string) string {
	if idx := strings.Index(raw, shortLinkMarker); idx != -1 {
		id := raw[idx+len(shortLinkMarker):]
		if q := strings.Index(id, "?"); q != -1 {
			id = id[:q]
		}
		return "https://www.youtube.com/watch?v=" + id
	}
	return strings.Replace(raw, "m.youtube.com", "www.youtube.com", 1)
}

// Classify maps a raw URL to a Target. It is total: any string input,
// including the empty string, yields exactly one of the three kinds.
// Precedence: video markers, then channel ID, then handle.
func Classify(raw string) Target {
	switch {
	case strings.Contains(raw, watchMarker):
		return Target{Kind: KindVideo, VideoID: watchVideoID(raw)}
	case strings.Contains(raw, shortLinkMarker):
		id := segmentAfter(raw, shortLinkMarker)
		if q := strings.Index(id, "?"); q != -1 {
			id = id[:q]
		}
		return Target{Kind: KindVideo, VideoID: id}
	case strings.Contains(raw, channelMarker):
		return Target{Kind: KindChannel, ChannelID: firstSegment(segmentAfter(raw, channelMarker))}
	case strings.Contains(raw, handleMarker):
		return Target{Kind: KindChannel, Handle: firstSegment(segmentAfter(raw, handleMarker))}
	default:
		return Target{Kind: KindUnsupported}
	}
}

// watchVideoID extracts the v query parameter from a watch-style link,
// falling back to manual slicing when the URL does not parse.
func watchVideoID(raw string) string {
	if u, err := url.Parse(raw); err == nil {
		if v := u.Query().Get("v"); v != "" {
			return v
		}
	}
	id := segmentAfter(raw, watchMarker)
	if amp := strings.Index(id, "&"); amp != -1 {
		id = id[:amp]
	}
	return id
}

func segmentAfter(raw, marker string) string {
	return raw[strings.Index(raw, marker)+len(marker):]
}

func firstSegment(s string) string {
	if slash := strings.Index(s, "/"); slash != -1 {
		return s[:slash]
	}
	return s
}
