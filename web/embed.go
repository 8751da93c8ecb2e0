// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

// Package web provides embedded static assets for the public site and
// the admin interface. In development the admin loads its styling from
// CDN; in production the stylesheets embedded here are served at /static/.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree: the public site
// stylesheet and the admin stylesheet.
//
//go:embed all:static
var StaticFS embed.FS
