// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown renders content fields to sanitized HTML.
type Markdown struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewMarkdown creates a renderer. Output passes bluemonday's UGC policy, so
// raw HTML in the source cannot inject scripts or event handlers.
func NewMarkdown() *Markdown {
	return &Markdown{
		md:     goldmark.New(goldmark.WithExtensions(extension.Strikethrough, extension.Linkify)),
		policy: bluemonday.UGCPolicy(),
	}
}

// Block renders src as block-level HTML.
func (m *Markdown) Block(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	safe := m.policy.SanitizeBytes(buf.Bytes())
	return template.HTML(safe), nil //nolint:gosec // sanitized by bluemonday
}

// Inline renders src and unwraps a single enclosing paragraph, for fields
// that sit inside an existing <p> or <h3>.
func (m *Markdown) Inline(src string) (template.HTML, error) {
	html, err := m.Block(src)
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(html))
	if strings.HasPrefix(s, "<p>") && strings.HasSuffix(s, "</p>") && strings.Count(s, "<p>") == 1 {
		s = s[len("<p>") : len(s)-len("</p>")]
	}
	return template.HTML(s), nil //nolint:gosec // sanitized in Block
}
