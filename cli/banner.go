package cli

import (
	"fmt"
	"io"
	"strings"
)

const bannerDefaultWidth = 50

// PrintBanner renders a box-drawing banner around a title using the default width.
func PrintBanner(w io.Writer, title string) {
	PrintBannerWidth(w, title, bannerDefaultWidth)
}

// PrintBannerWidth renders a box-drawing banner around a title.
// The banner grows when the title does not fit the inner width.
func PrintBannerWidth(w io.Writer, title string, width int) {
	if width < 10 {
		width = bannerDefaultWidth
	}

	inner := width - 2
	if len(title)+2 > inner {
		inner = len(title) + 2
	}

	topBottom := strings.Repeat("═", inner)

	fmt.Fprintf(w, "╔%s╗\n", topBottom)
	fmt.Fprintf(w, "║%s║\n", padCenter(title, inner))
	fmt.Fprintf(w, "╚%s╝\n", topBottom)
}

func padCenter(text string, width int) string {
	if len(text) >= width {
		return text[:width]
	}
	padTotal := width - len(text)
	left := padTotal / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", padTotal-left)
}
