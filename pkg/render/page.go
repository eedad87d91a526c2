package render

import (
	"fmt"
	"io"

	"github.com/vango-dev/colorctx/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content
	Body *vdom.VNode

	// BodyHTML is pre-rendered content used instead of Body when non-empty.
	BodyHTML string

	// Title is the page title
	Title string

	// Styles contains inline CSS styles
	Styles []string

	// Script is inline JavaScript appended to the body
	Script string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", escapeAttr(lang)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<meta charset=\"utf-8\">\n"); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	for _, style := range page.Styles {
		if _, err := fmt.Fprintf(w, "<style>%s</style>\n", style); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</head>\n<body>\n<div id=\"app\">"); err != nil {
		return err
	}

	if page.BodyHTML != "" {
		if _, err := io.WriteString(w, page.BodyHTML); err != nil {
			return err
		}
	} else if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "</div>\n"); err != nil {
		return err
	}
	if page.Script != "" {
		if _, err := fmt.Fprintf(w, "<script>%s</script>\n", page.Script); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}
