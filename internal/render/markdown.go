package render

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

const extensions = blackfriday.CommonExtensions |
	blackfriday.AutoHeadingIDs |
	blackfriday.HardLineBreak |
	blackfriday.Footnotes

var ugc = bluemonday.UGCPolicy()

// Markdown renders article markdown to HTML that is safe to embed in feeds.
func Markdown(src string) string {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.CommonHTMLFlags | blackfriday.HrefTargetBlank,
	})
	unsafe := blackfriday.Run([]byte(src),
		blackfriday.WithExtensions(extensions),
		blackfriday.WithRenderer(renderer),
	)
	return string(ugc.SanitizeBytes(unsafe))
}
