// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package seo

import (
	"strings"
	"time"

	"github.com/olegiv/folio/internal/content"
)

// SecurityTxtConfig holds configuration for security.txt generation (RFC 9116).
type SecurityTxtConfig struct {
	// Contact is required. mailto: or https: URIs, in order of preference.
	Contact []string

	// Expires is required. Zero means one year after Now.
	Expires time.Time

	PreferredLanguages string
	Canonical          string

	// Now is used for the default expiry; time.Now when nil.
	Now func() time.Time
}

// BuildSecurityTxt generates the security.txt content. It returns the empty
// string when there is no contact, since the file is invalid without one.
func BuildSecurityTxt(config SecurityTxtConfig) string {
	var contacts []string
	for _, c := range config.Contact {
		if c != "" {
			contacts = append(contacts, c)
		}
	}
	if len(contacts) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, c := range contacts {
		sb.WriteString("Contact: ")
		sb.WriteString(c)
		sb.WriteString("\n")
	}

	expires := config.Expires
	if expires.IsZero() {
		now := time.Now
		if config.Now != nil {
			now = config.Now
		}
		expires = now().AddDate(1, 0, 0)
	}
	sb.WriteString("Expires: ")
	sb.WriteString(expires.UTC().Format(time.RFC3339))
	sb.WriteString("\n")

	if config.PreferredLanguages != "" {
		sb.WriteString("Preferred-Languages: ")
		sb.WriteString(config.PreferredLanguages)
		sb.WriteString("\n")
	}
	if config.Canonical != "" {
		sb.WriteString("Canonical: ")
		sb.WriteString(config.Canonical)
		sb.WriteString("\n")
	}

	return sb.String()
}

// PortfolioContacts returns the mailto channels of p, followed by its
// https profile links.
func PortfolioContacts(p *content.Portfolio) []string {
	if p == nil {
		return nil
	}
	var mail, web []string
	for _, ch := range p.Contact.Channels {
		switch {
		case strings.HasPrefix(ch.Href, "mailto:"):
			mail = append(mail, ch.Href)
		case strings.HasPrefix(ch.Href, "https://"):
			web = append(web, ch.Href)
		}
	}
	return append(mail, web...)
}
