// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package models

import "time"

// PageContent is the open-ended content document for one fixed page,
// keyed by page id ("home", "about", ...). Each recognized top-level
// block gates the rendering of one structural block: a nil block means
// that block is omitted entirely, not rendered empty.
type PageContent struct {
	Hero     *HeroBlock     `json:"hero,omitempty"`
	Intro    *IntroBlock    `json:"intro,omitempty"`
	Services *CardListBlock `json:"services,omitempty"`
	Features *CardListBlock `json:"features,omitempty"`
	Stats    *StatsBlock    `json:"stats,omitempty"`
	CTA      *CTABlock      `json:"cta,omitempty"`
	Benefits *BenefitsBlock `json:"benefits,omitempty"`
	Form     *FormBlock     `json:"form,omitempty"`
}

// HeroBlock is the page's lead banner.
type HeroBlock struct {
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle,omitempty"`
	Image          string `json:"image,omitempty"`
	PrimaryLabel   string `json:"primaryLabel,omitempty"`
	PrimaryHref    string `json:"primaryHref,omitempty"`
	SecondaryLabel string `json:"secondaryLabel,omitempty"`
	SecondaryHref  string `json:"secondaryHref,omitempty"`
}

// IntroBlock is a title plus free-form body copy.
type IntroBlock struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

// CardListBlock backs both the services and features blocks: a heading
// over a list of icon cards.
type CardListBlock struct {
	Title string     `json:"title"`
	Items []CardItem `json:"items"`
}

// CardItem is one icon card in a services or features grid.
type CardItem struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// StatsBlock is a heading over number/label pairs.
type StatsBlock struct {
	Title string `json:"title"`
	Items []Stat `json:"items"`
}

// Stat is one number/label pair in a stats grid.
type Stat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

// CTABlock is the call-to-action banner.
type CTABlock struct {
	Title       string `json:"title"`
	Body        string `json:"body,omitempty"`
	ButtonLabel string `json:"buttonLabel,omitempty"`
	ButtonHref  string `json:"buttonHref,omitempty"`
}

// BenefitsBlock is a heading over a plain list of benefit lines.
type BenefitsBlock struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// FormBlock carries the copy shown around a page's contact or
// membership form. The form fields themselves are fixed per form type.
type FormBlock struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// HasBlock reports whether the named structural block is present. The
// composition engine walks the website template's section order and
// skips absent blocks.
func (p *PageContent) HasBlock(name string) bool {
	if p == nil {
		return false
	}
	switch name {
	case "hero":
		return p.Hero != nil
	case "intro":
		return p.Intro != nil
	case "services":
		return p.Services != nil
	case "features":
		return p.Features != nil
	case "stats":
		return p.Stats != nil
	case "cta":
		return p.CTA != nil
	case "benefits":
		return p.Benefits != nil
	case "form":
		return p.Form != nil
	default:
		return false
	}
}

// PageDocument pairs a page id with its content document as stored.
type PageDocument struct {
	PageID    string       `json:"page_id"`
	Content   *PageContent `json:"content"`
	UpdatedAt time.Time    `json:"updated_at"`
}
