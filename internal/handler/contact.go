// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/olegiv/folio/internal/util"
)

// Contact form limits, in characters.
const (
	maxContactName    = 100
	maxContactEmail   = 254
	maxContactSubject = 150
	maxContactMessage = 5000

	maxContactBody = 64 << 10
)

// ContactSubmission is a parsed contact form.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`

	// Website is a honeypot field hidden from humans.
	Website string `json:"_website"`
}

// ContactHandler accepts contact form posts. Nothing is delivered: the
// submission is validated, logged under a reference id and dropped.
type ContactHandler struct {
	logger    *slog.Logger
	countries CountryResolver
}

// CountryResolver maps a client IP to an ISO country code.
type CountryResolver interface {
	Country(ip string) string
}

// NewContactHandler creates a ContactHandler. countries may be nil.
func NewContactHandler(logger *slog.Logger, countries CountryResolver) *ContactHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactHandler{logger: logger, countries: countries}
}

// Submit handles POST /contact. It answers 204 so the page stays where it
// is, 422 with per-field messages for invalid input.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	sub, err := parseContact(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "contact form unreadable", "error", err)
		writeJSONError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	if sub.Website != "" {
		h.logger.InfoContext(r.Context(), "contact honeypot triggered")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if fields := validateContact(&sub); len(fields) > 0 {
		writeJSONFieldErrors(w, fields)
		return
	}

	ref := uuid.New().String()
	attrs := []any{
		"reference", ref,
		"email_domain", emailDomain(sub.Email),
		"subject_len", utf8.RuneCountInString(sub.Subject),
		"message_len", utf8.RuneCountInString(sub.Message),
	}
	if h.countries != nil {
		if country := h.countries.Country(util.ClientIP(r)); country != "" {
			attrs = append(attrs, "country", country)
		}
	}
	h.logger.InfoContext(r.Context(), "contact submission discarded", attrs...)

	w.Header().Set("X-Contact-Reference", ref)
	w.WriteHeader(http.StatusNoContent)
}

// parseContact reads a JSON body or a url-encoded / multipart form.
func parseContact(r *http.Request) (ContactSubmission, error) {
	var sub ContactSubmission

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			return sub, err
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxContactBody); err != nil {
			return sub, err
		}
		sub = contactFromForm(r)
	default:
		if err := r.ParseForm(); err != nil {
			return sub, err
		}
		sub = contactFromForm(r)
	}

	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Subject = strings.TrimSpace(sub.Subject)
	sub.Message = strings.TrimSpace(sub.Message)
	return sub, nil
}

func contactFromForm(r *http.Request) ContactSubmission {
	return ContactSubmission{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
		Website: r.PostFormValue("_website"),
	}
}

// validateContact returns a message per invalid field.
func validateContact(sub *ContactSubmission) map[string]string {
	errs := make(map[string]string)

	checkLen := func(field, label, value string, limit int, required bool) bool {
		n := utf8.RuneCountInString(value)
		switch {
		case required && n == 0:
			errs[field] = label + " is required"
		case n > limit:
			errs[field] = label + " is too long"
		default:
			return true
		}
		return false
	}

	checkLen("name", "Name", sub.Name, maxContactName, true)
	if checkLen("email", "Email", sub.Email, maxContactEmail, true) && !isValidEmail(sub.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	checkLen("subject", "Subject", sub.Subject, maxContactSubject, false)
	checkLen("message", "Message", sub.Message, maxContactMessage, true)

	return errs
}

// isValidEmail accepts a bare address only, not "Name <addr>".
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func emailDomain(email string) string {
	if i := strings.LastIndexByte(email, '@'); i >= 0 {
		return strings.ToLower(email[i+1:])
	}
	return ""
}
