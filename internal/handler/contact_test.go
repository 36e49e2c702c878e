// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func newContactHandler(buf *bytes.Buffer) *ContactHandler {
	return NewContactHandler(slog.New(slog.NewTextHandler(buf, nil)), nil)
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func validContact() url.Values {
	return url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@Example.com"},
		"subject": {"Collaboration"},
		"message": {"Let's talk about analytical engines."},
	}
}

func TestContactHandler_Submit_Form(t *testing.T) {
	var logs bytes.Buffer
	h := newContactHandler(&logs)

	w := httptest.NewRecorder()
	h.Submit(w, postForm(validContact()))

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusNoContent, w.Body.String())
	}
	if w.Header().Get("X-Contact-Reference") == "" {
		t.Error("missing X-Contact-Reference header")
	}
	out := logs.String()
	if !strings.Contains(out, "contact submission discarded") || !strings.Contains(out, "email_domain=example.com") {
		t.Errorf("log output = %q", out)
	}
	if strings.Contains(out, "Lovelace") || strings.Contains(out, "analytical") {
		t.Error("submission content must not be logged")
	}
}

type staticCountries map[string]string

func (c staticCountries) Country(ip string) string { return c[ip] }

func TestContactHandler_Submit_Country(t *testing.T) {
	var logs bytes.Buffer
	h := NewContactHandler(slog.New(slog.NewTextHandler(&logs, nil)), staticCountries{"203.0.113.7": "IN"})

	req := postForm(validContact())
	req.RemoteAddr = "203.0.113.7:51234"
	w := httptest.NewRecorder()
	h.Submit(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if !strings.Contains(logs.String(), "country=IN") {
		t.Errorf("log output = %q, want country", logs.String())
	}

	logs.Reset()
	req = postForm(validContact())
	req.RemoteAddr = "198.51.100.1:1"
	h.Submit(httptest.NewRecorder(), req)
	if strings.Contains(logs.String(), "country=") {
		t.Errorf("unknown country should be omitted: %q", logs.String())
	}
}

func TestContactHandler_Submit_JSON(t *testing.T) {
	h := newContactHandler(&bytes.Buffer{})

	body := `{"name":"Ada","email":"ada@example.com","message":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	w := httptest.NewRecorder()
	h.Submit(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d: %s", w.Code, http.StatusNoContent, w.Body.String())
	}
}

func TestContactHandler_Submit_Multipart(t *testing.T) {
	h := newContactHandler(&bytes.Buffer{})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range validContact() {
		_ = mw.WriteField(k, v[0])
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/contact", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	h.Submit(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d: %s", w.Code, http.StatusNoContent, w.Body.String())
	}
}

func TestContactHandler_Submit_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(v url.Values)
		wantField string
	}{
		{"missing name", func(v url.Values) { v.Set("name", "   ") }, "name"},
		{"missing email", func(v url.Values) { v.Del("email") }, "email"},
		{"bad email", func(v url.Values) { v.Set("email", "not-an-email") }, "email"},
		{"display name email", func(v url.Values) { v.Set("email", "Ada <ada@example.com>") }, "email"},
		{"long subject", func(v url.Values) { v.Set("subject", strings.Repeat("s", maxContactSubject+1)) }, "subject"},
		{"missing message", func(v url.Values) { v.Set("message", "") }, "message"},
		{"long message", func(v url.Values) { v.Set("message", strings.Repeat("m", maxContactMessage+1)) }, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newContactHandler(&bytes.Buffer{})
			values := validContact()
			tt.mutate(values)

			w := httptest.NewRecorder()
			h.Submit(w, postForm(values))

			resp := assertJSONResponse(t, w, http.StatusUnprocessableEntity, false)
			fields, _ := resp["fields"].(map[string]any)
			if _, ok := fields[tt.wantField]; !ok {
				t.Errorf("fields = %v, want %q", fields, tt.wantField)
			}
			if len(fields) != 1 {
				t.Errorf("fields = %v, want exactly one", fields)
			}
		})
	}
}

func TestContactHandler_Submit_Honeypot(t *testing.T) {
	var logs bytes.Buffer
	h := newContactHandler(&logs)

	values := validContact()
	values.Set("_website", "http://spam.example")

	w := httptest.NewRecorder()
	h.Submit(w, postForm(values))

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if w.Header().Get("X-Contact-Reference") != "" {
		t.Error("honeypot hits must not get a reference")
	}
	if !strings.Contains(logs.String(), "honeypot") {
		t.Errorf("log output = %q", logs.String())
	}
}

func TestContactHandler_Submit_BadBody(t *testing.T) {
	h := newContactHandler(&bytes.Buffer{})

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"name":`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	h.Submit(w, req)

	assertJSONResponse(t, w, http.StatusBadRequest, false)
}

func TestContactHandler_Submit_TooLarge(t *testing.T) {
	h := newContactHandler(&bytes.Buffer{})

	values := validContact()
	values.Set("message", strings.Repeat("x", maxContactBody+1))

	w := httptest.NewRecorder()
	h.Submit(w, postForm(values))

	assertJSONResponse(t, w, http.StatusBadRequest, false)
}

func TestEmailDomain(t *testing.T) {
	tests := map[string]string{
		"a@Example.COM": "example.com",
		"a@b@c.io":      "c.io",
		"nobody":        "",
	}
	for in, want := range tests {
		if got := emailDomain(in); got != want {
			t.Errorf("emailDomain(%q) = %q, want %q", in, got, want)
		}
	}
}
