// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"testing"

	"github.com/olegiv/folio/internal/dotgrid"
)

const (
	uaDesktop = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	uaIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1"
	uaIPad    = "Mozilla/5.0 (iPad; CPU OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1"
	uaBot     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func TestDeviceFromUserAgent(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want DeviceClass
	}{
		{"desktop chrome", uaDesktop, DeviceDesktop},
		{"iphone", uaIPhone, DeviceMobile},
		{"android", "Mozilla/5.0 (Linux; Android 14; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36", DeviceMobile},
		{"ipad", uaIPad, DeviceTablet},
		{"googlebot", uaBot, DeviceBot},
		{"curl", "curl/8.1.2", DeviceDesktop},
		{"empty", "", DeviceDesktop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeviceFromUserAgent(tt.ua); got != tt.want {
				t.Errorf("DeviceFromUserAgent(%q) = %q, want %q", tt.ua, got, tt.want)
			}
		})
	}
}

func TestDeviceClass_Viewport(t *testing.T) {
	tests := []struct {
		class DeviceClass
		want  int
	}{
		{DeviceMobile, dotgrid.MobileViewport.Width},
		{DeviceTablet, dotgrid.TabletViewport.Width},
		{DeviceDesktop, dotgrid.DesktopViewport.Width},
		{DeviceBot, dotgrid.DesktopViewport.Width},
		{DeviceClass("fridge"), dotgrid.DesktopViewport.Width},
	}
	for _, tt := range tests {
		if got := tt.class.Viewport().Width; got != tt.want {
			t.Errorf("%q.Viewport().Width = %d, want %d", tt.class, got, tt.want)
		}
	}
}
