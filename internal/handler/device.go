// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"github.com/mileusna/useragent"

	"github.com/olegiv/folio/internal/dotgrid"
	"github.com/olegiv/folio/internal/viewport"
)

// DeviceClass is the coarse device type derived from a User-Agent.
type DeviceClass string

// Device classes.
const (
	DeviceMobile  DeviceClass = "mobile"
	DeviceTablet  DeviceClass = "tablet"
	DeviceDesktop DeviceClass = "desktop"
	DeviceBot     DeviceClass = "bot"
)

// DeviceFromUserAgent classifies a User-Agent string. Unknown agents count
// as desktop.
func DeviceFromUserAgent(uaString string) DeviceClass {
	ua := useragent.Parse(uaString)

	switch {
	case ua.Mobile:
		return DeviceMobile
	case ua.Tablet:
		return DeviceTablet
	case ua.Bot:
		return DeviceBot
	default:
		return DeviceDesktop
	}
}

// Viewport returns the preset viewport assumed for the class before the
// browser reports its real size. Bots get the desktop layout.
func (d DeviceClass) Viewport() viewport.Viewport {
	switch d {
	case DeviceMobile:
		return dotgrid.MobileViewport
	case DeviceTablet:
		return dotgrid.TabletViewport
	default:
		return dotgrid.DesktopViewport
	}
}
