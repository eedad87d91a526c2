package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/colorctx/pkg/vdom"
)

func TestRenderPage(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Title:  "colors & more",
		Body:   vdom.Div(vdom.Text("body")),
		Styles: []string{".a{color:red}"},
		Script: "console.log(1)",
	})
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>colors &amp; more</title>",
		"<style>.a{color:red}</style>",
		`<div id="app"><div>body</div></div>`,
		"<script>console.log(1)</script>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in:\n%s", want, html)
		}
	}
}

func TestRenderPageBodyHTML(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	renderer.RenderPage(&buf, PageData{
		Body:     vdom.Text("ignored"),
		BodyHTML: "<main>live</main>",
		Lang:     "fr",
	})
	html := buf.String()

	if !strings.Contains(html, `<div id="app"><main>live</main></div>`) {
		t.Errorf("pre-rendered body missing:\n%s", html)
	}
	if strings.Contains(html, "ignored") {
		t.Error("Body should be ignored when BodyHTML is set")
	}
	if !strings.Contains(html, `<html lang="fr">`) {
		t.Error("custom lang missing")
	}
	if strings.Contains(html, "<title>") || strings.Contains(html, "<script>") {
		t.Error("empty title and script should be omitted")
	}
}
