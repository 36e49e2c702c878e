// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import "html/template"

// Portfolio is everything the landing page and the case study display.
type Portfolio struct {
	Profile     Profile     `yaml:"profile"`
	Stats       []Stat      `yaml:"stats"`
	Experience  Experience  `yaml:"experience"`
	Projects    Projects    `yaml:"projects"`
	Skills      Skills      `yaml:"skills"`
	About       About       `yaml:"about"`
	Methodology Methodology `yaml:"methodology"`
	Contact     Contact     `yaml:"contact"`
	Footer      Footer      `yaml:"footer"`
	CaseStudy   CaseStudy   `yaml:"case_study"`
}

// Header is a numbered section heading with a large faint watermark.
type Header struct {
	Index     string `yaml:"index"`
	Title     string `yaml:"title"`
	Watermark string `yaml:"watermark"`
}

// Profile is the hero block.
type Profile struct {
	Name       string   `yaml:"name"`
	Headline   string   `yaml:"headline"`
	FocusAreas []string `yaml:"focus_areas"`
	Tagline    string   `yaml:"tagline"`
	Resume     Resume   `yaml:"resume"`
	Socials    []Link   `yaml:"socials"`
}

// Resume is the downloadable CV in the assets directory.
type Resume struct {
	Asset        string `yaml:"asset"`
	DownloadName string `yaml:"download_name"`
}

// Link is an outbound link with an icon kind (email, linkedin, github).
type Link struct {
	Kind  string `yaml:"kind"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Href  string `yaml:"href"`
}

// Stat is one entry of the achievements bar under the hero.
type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Sub   string `yaml:"sub"`
}

// Experience is the timeline section.
type Experience struct {
	Header  Header `yaml:"header"`
	Entries []Job  `yaml:"entries"`
}

// Job is one timeline entry.
type Job struct {
	Role             string   `yaml:"role"`
	Company          string   `yaml:"company"`
	Period           string   `yaml:"period"`
	Icon             string   `yaml:"icon"`
	Responsibilities []Item   `yaml:"responsibilities"`
	Achievements     []Item   `yaml:"achievements"`
	Summary          []string `yaml:"summary"` // markdown, one paragraph each

	SummaryHTML []template.HTML `yaml:"-"`
}

// Item is a labelled bullet.
type Item struct {
	Label string `yaml:"label"`
	Text  string `yaml:"text"`
}

// Projects is the project cards section.
type Projects struct {
	Header Header    `yaml:"header"`
	Cards  []Project `yaml:"cards"`
}

// Project is one card. Cards with an image render in the dashboard row,
// cards without one render in the technical row with Icon instead.
type Project struct {
	Title       string   `yaml:"title"`
	Badge       string   `yaml:"badge"`
	Image       string   `yaml:"image"`
	ImageAlt    string   `yaml:"image_alt"`
	Icon        string   `yaml:"icon"`
	Description string   `yaml:"description"` // markdown
	Tech        []string `yaml:"tech"`
	Repository  string   `yaml:"repository"`

	Anchor          string        `yaml:"-"`
	DescriptionHTML template.HTML `yaml:"-"`
}

// HasImage reports whether the card shows a screenshot.
func (p Project) HasImage() bool {
	return p.Image != ""
}

// Skills is the expertise section.
type Skills struct {
	Header Header       `yaml:"header"`
	Groups []SkillGroup `yaml:"groups"`
	Tools  []string     `yaml:"tools"`
}

// SkillGroup is one tile of the skills grid.
type SkillGroup struct {
	Icon  string  `yaml:"icon"`
	Title string  `yaml:"title"`
	Items []Skill `yaml:"items"`
}

// Skill is a skill with an optional detail line.
type Skill struct {
	Label  string `yaml:"label"`
	Detail string `yaml:"detail"`
}

// About is the profile section.
type About struct {
	Header      Header      `yaml:"header"`
	Paragraphs  []string    `yaml:"paragraphs"` // markdown
	Image       string      `yaml:"image"`
	ImageAlt    string      `yaml:"image_alt"`
	Placeholder Placeholder `yaml:"placeholder"`
	WhatIDo     []string    `yaml:"what_i_do"`

	ParagraphsHTML []template.HTML `yaml:"-"`
}

// Placeholder is shown in place of a profile image that cannot be displayed.
type Placeholder struct {
	Title string `yaml:"title"`
	Note  string `yaml:"note"`
}

// Methodology is the anchored but untracked approach section.
type Methodology struct {
	Header    Header `yaml:"header"`
	Statement string `yaml:"statement"` // markdown
	Intro     string `yaml:"intro"`
	Steps     []Step `yaml:"steps"`

	StatementHTML template.HTML `yaml:"-"`
}

// Step is one stage of the analytical lifecycle.
type Step struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Contact is the contact section.
type Contact struct {
	Header        Header      `yaml:"header"`
	Heading       string      `yaml:"heading"`
	HeadingAccent string      `yaml:"heading_accent"`
	Intro         string      `yaml:"intro"`
	Channels      []Link      `yaml:"channels"`
	Availability  string      `yaml:"availability"`
	Form          ContactForm `yaml:"form"`
}

// ContactForm holds the form placeholders and button label.
type ContactForm struct {
	NamePlaceholder    string `yaml:"name_placeholder"`
	EmailPlaceholder   string `yaml:"email_placeholder"`
	SubjectPlaceholder string `yaml:"subject_placeholder"`
	MessagePlaceholder string `yaml:"message_placeholder"`
	Submit             string `yaml:"submit"`
	// Notice is shown after a submission. The form is a sink, so it must
	// not suggest the message was delivered.
	Notice string `yaml:"notice"`
}

// Footer is the page footer. The year is filled in at render time.
type Footer struct {
	Owner  string `yaml:"owner"`
	Credit string `yaml:"credit"`
}

// CaseStudy is the full-screen overlay.
type CaseStudy struct {
	Kicker       string    `yaml:"kicker"`
	Label        string    `yaml:"label"`
	Title        string    `yaml:"title"`
	TitleAccent  string    `yaml:"title_accent"`
	Summary      string    `yaml:"summary"`
	Problem      string    `yaml:"problem"`
	Impact       string    `yaml:"impact"`
	Phases       []Phase   `yaml:"phases"`
	OutcomeTitle string    `yaml:"outcome_title"`
	Findings     []Finding `yaml:"findings"`
	CTA          CTA       `yaml:"cta"`
}

// Phase is one methodology phase of the case study.
type Phase struct {
	Title string    `yaml:"title"`
	Icon  string    `yaml:"icon"`
	Lead  string    `yaml:"lead"`
	Quote bool      `yaml:"quote"`
	Code  CodeBlock `yaml:"code"`
}

// CodeBlock is a titled code listing.
type CodeBlock struct {
	Title    string `yaml:"title"`
	Language string `yaml:"language"`
	Source   string `yaml:"source"`
}

// Finding is one outcome card.
type Finding struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// CTA closes the case study.
type CTA struct {
	Prompt string `yaml:"prompt"`
	Button string `yaml:"button"`
}
