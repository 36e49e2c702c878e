// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/olegiv/folio/internal/content"
	"github.com/olegiv/folio/internal/dotgrid"
	"github.com/olegiv/folio/internal/imaging"
	"github.com/olegiv/folio/internal/page"
	"github.com/olegiv/folio/internal/render"
	"github.com/olegiv/folio/internal/section"
	"github.com/olegiv/folio/internal/seo"
	"github.com/olegiv/folio/internal/viewport"
)

// Page template names.
const (
	TemplateHome = "home"
)

// PageView is the data the page templates render.
type PageView struct {
	Portfolio *content.Portfolio
	State     page.State
	Nav       []section.RenderedNavItem
	Featured  []content.Project
	Technical []content.Project
	Layout    Layout

	// ProfileImage is false when the configured photo is missing on disk;
	// the template then renders the placeholder instead of an <img>.
	ProfileImage bool
	// Resume is false when the resume PDF is missing; the download button
	// is hidden.
	Resume bool

	BackdropURL string
	Device      DeviceClass
}

// PortfolioHandler renders the landing page and the case study overlay.
type PortfolioHandler struct {
	renderer  *render.Renderer
	portfolio *content.Portfolio
	assets    *imaging.Processor
	threshold float64
	grid      dotgrid.Config
	siteURL   string
	indexable bool
	logger    *slog.Logger
}

// PortfolioConfig configures a PortfolioHandler.
type PortfolioConfig struct {
	Renderer  *render.Renderer
	Portfolio *content.Portfolio
	Assets    *imaging.Processor
	Threshold float64
	Grid      dotgrid.Config
	// SiteURL and Indexable feed the canonical and robots meta tags.
	SiteURL   string
	Indexable bool
	Logger    *slog.Logger
}

// NewPortfolioHandler creates a PortfolioHandler. The grid config must
// already be valid.
func NewPortfolioHandler(cfg PortfolioConfig) (*PortfolioHandler, error) {
	if err := cfg.Grid.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &PortfolioHandler{
		renderer:  cfg.Renderer,
		portfolio: cfg.Portfolio,
		assets:    cfg.Assets,
		threshold: cfg.Threshold,
		grid:      cfg.Grid,
		siteURL:   cfg.SiteURL,
		indexable: cfg.Indexable,
		logger:    logger,
	}, nil
}

// Home handles GET /.
func (h *PortfolioHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, false)
}

// CaseStudy handles GET /case-study: the landing page with the overlay open.
func (h *PortfolioHandler) CaseStudy(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, true)
}

func (h *PortfolioHandler) serve(w http.ResponseWriter, r *http.Request, overlay bool) {
	device := DeviceFromUserAgent(r.UserAgent())
	vp := device.Viewport()

	state, err := h.initialState(vp, overlay)
	if err != nil {
		logAndInternalError(w, r, "building page state failed", "error", err)
		return
	}

	p := h.portfolio
	view := PageView{
		Portfolio:    p,
		State:        state,
		Nav:          section.BuildNav(state.Active),
		Featured:     p.Featured(),
		Technical:    p.Technical(),
		Layout:       NewLayout(h.threshold, h.grid),
		ProfileImage: h.assetExists(p.About.Image),
		Resume:       h.assetExists(p.Profile.Resume.Asset),
		BackdropURL:  fmt.Sprintf("/backdrop.png?w=%d&h=%d", vp.Width, vp.Height),
		Device:       device,
	}

	title, description, path := p.Profile.Name+" | "+p.Profile.Headline, p.Profile.Tagline, "/"
	if overlay {
		title = p.CaseStudy.Title + " " + p.CaseStudy.TitleAccent + " | " + p.Profile.Name
		description, path = p.CaseStudy.Summary, "/case-study"
	}

	site := seo.Site{URL: siteURL(h.siteURL, r), Name: p.Profile.Name, Indexable: h.indexable}
	var photo string
	if view.ProfileImage {
		photo = (&url.URL{Path: "/media/thumb/" + p.About.Image, RawQuery: "w=640"}).String()
	}
	meta := seo.BuildMeta(seo.Page{Title: title, Description: description, Path: path, Image: photo}, site)
	meta.Schema = seo.BuildPersonSchema(p, site, photo)

	if err := h.renderer.Render(w, r, TemplateHome, render.TemplateData{
		Title:       title,
		Description: meta.Description,
		SEO:         meta,
		Data:        view,
	}); err != nil {
		logAndInternalError(w, r, "rendering page failed", "error", err, "overlay", overlay)
	}
}

// initialState mounts a page for the viewport the client most likely has
// and snapshots it. On the server nothing is scrolled, so the tracker
// resolves to the first section; the browser script takes over from there.
func (h *PortfolioHandler) initialState(vp viewport.Viewport, overlay bool) (page.State, error) {
	grid, err := dotgrid.NewRenderer(h.grid, h.logger)
	if err != nil {
		return page.State{}, err
	}
	tracker := section.NewTracker(section.TrackerConfig{
		Threshold: h.threshold,
		Logger:    h.logger,
	})

	c := page.NewContainer(page.Config{Tracker: tracker, Renderer: grid, Logger: h.logger})
	c.Mount(vp)
	defer c.Unmount()

	if overlay {
		c.OpenCaseStudy()
	}
	return c.Snapshot(), nil
}

func (h *PortfolioHandler) assetExists(name string) bool {
	return name != "" && h.assets != nil && h.assets.Exists(name)
}
