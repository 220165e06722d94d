// Package markdown renders author markup to HTML. Standard constructs go
// through goldmark; the platform's own shortcodes (youtube and generic
// embeds) are rewritten in a regex pre-pass first, since goldmark would
// otherwise treat them as plain links.
package markdown

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

var (
	youtubePattern = regexp.MustCompile(`\[youtube\]\((?:https?://)?(?:www\.)?(?:youtube\.com/watch\?v=|youtu\.be/)?([a-zA-Z0-9_-]{11})\)`)
	embedPattern   = regexp.MustCompile(`\[embed\]\((https?://[^)]+)\)`)
)

var engine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Strikethrough,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
		// The pre-pass injects iframes, so raw HTML must survive rendering.
		htmlrenderer.WithUnsafe(),
	),
)

// Render converts raw post markup to HTML.
func Render(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", nil
	}

	text = replaceYouTube(text)
	text = replaceEmbeds(text)

	var buf bytes.Buffer
	if err := engine.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("failed to render content: %w", err)
	}

	return buf.String(), nil
}

func replaceYouTube(text string) string {
	return youtubePattern.ReplaceAllString(text, `<iframe src="https://www.youtube.com/embed/$1" allowfullscreen></iframe>`)
}

func replaceEmbeds(text string) string {
	return embedPattern.ReplaceAllString(text, `<iframe src="$1" allowfullscreen></iframe>`)
}
