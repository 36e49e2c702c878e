// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content loads the portfolio text from YAML. A default portfolio
// is embedded in the binary; an override file can replace it at startup.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/olegiv/folio/internal/util"
)

//go:embed portfolio.yaml
var defaultPortfolio []byte

// ErrInvalid is wrapped by every validation error from Parse.
var ErrInvalid = errors.New("invalid portfolio content")

var upper = cases.Upper(language.English)

// DefaultFormNotice is used when the content leaves form.notice empty.
const DefaultFormNotice = "Received. This demo form does not forward messages; " +
	"please use one of the channels listed."

// Default returns the embedded portfolio.
func Default() (*Portfolio, error) {
	return Parse(defaultPortfolio)
}

// Load reads the portfolio from path, or returns the embedded one when path
// is empty.
func Load(path string) (*Portfolio, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes, validates and prepares a portfolio. Unknown keys are
// rejected so typos in an override file surface at startup.
func Parse(data []byte) (*Portfolio, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Portfolio
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: decoding yaml: %w", ErrInvalid, err)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := p.prepare(NewMarkdown()); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Portfolio) validate() error {
	var problems []string
	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			problems = append(problems, field+" is required")
		}
	}

	require("profile.name", p.Profile.Name)
	require("profile.headline", p.Profile.Headline)
	for i, job := range p.Experience.Entries {
		require(fmt.Sprintf("experience.entries[%d].role", i), job.Role)
		require(fmt.Sprintf("experience.entries[%d].company", i), job.Company)
	}

	anchors := make(map[string]int, len(p.Projects.Cards))
	for i, card := range p.Projects.Cards {
		require(fmt.Sprintf("projects.cards[%d].title", i), card.Title)
		anchor := util.Anchor("project", card.Title)
		if prev, dup := anchors[anchor]; dup && card.Title != "" {
			problems = append(problems, fmt.Sprintf("projects.cards[%d] duplicates the anchor of projects.cards[%d]", i, prev))
		}
		anchors[anchor] = i
	}
	for i, ch := range p.Contact.Channels {
		require(fmt.Sprintf("contact.channels[%d].href", i), ch.Href)
	}
	for i, phase := range p.CaseStudy.Phases {
		require(fmt.Sprintf("case_study.phases[%d].title", i), phase.Title)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// prepare fills the derived fields: rendered markdown, anchors and
// upper-cased watermarks.
func (p *Portfolio) prepare(md *Markdown) error {
	var err error

	for _, h := range []*Header{
		&p.Experience.Header, &p.Projects.Header, &p.Skills.Header,
		&p.About.Header, &p.Methodology.Header, &p.Contact.Header,
	} {
		h.Watermark = upper.String(h.Watermark)
	}

	for i := range p.Experience.Entries {
		job := &p.Experience.Entries[i]
		job.SummaryHTML = make([]template.HTML, 0, len(job.Summary))
		for _, para := range job.Summary {
			html, rerr := md.Inline(para)
			if rerr != nil {
				return rerr
			}
			job.SummaryHTML = append(job.SummaryHTML, html)
		}
	}

	for i := range p.Projects.Cards {
		card := &p.Projects.Cards[i]
		card.Anchor = util.Anchor("project", card.Title)
		if card.DescriptionHTML, err = md.Inline(card.Description); err != nil {
			return err
		}
	}

	p.About.ParagraphsHTML = make([]template.HTML, 0, len(p.About.Paragraphs))
	for _, para := range p.About.Paragraphs {
		html, rerr := md.Inline(para)
		if rerr != nil {
			return rerr
		}
		p.About.ParagraphsHTML = append(p.About.ParagraphsHTML, html)
	}

	if p.Methodology.StatementHTML, err = md.Inline(p.Methodology.Statement); err != nil {
		return err
	}
	if strings.TrimSpace(p.Contact.Form.Notice) == "" {
		p.Contact.Form.Notice = DefaultFormNotice
	}
	return nil
}

// Featured returns the cards that carry a screenshot.
func (p *Portfolio) Featured() []Project {
	var out []Project
	for _, c := range p.Projects.Cards {
		if c.HasImage() {
			out = append(out, c)
		}
	}
	return out
}

// Technical returns the cards without a screenshot.
func (p *Portfolio) Technical() []Project {
	var out []Project
	for _, c := range p.Projects.Cards {
		if !c.HasImage() {
			out = append(out, c)
		}
	}
	return out
}
