// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package engine

import "html/template"

// tmpl holds the page chrome and every structural block template.
// Parsed once at startup; composition only executes.
var tmpl = template.Must(template.New("engine").Parse(`
{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} | {{.SiteName}}</title>
{{if .MetaDescription}}<meta name="description" content="{{.MetaDescription}}">{{end}}
<link rel="stylesheet" href="/static/site.css">
<link rel="stylesheet" href="{{.ThemeCSSHref}}">
</head>
<body class="layout-{{.Layout}} nav-{{.NavPlacement}}{{range .Markers}} {{.}}{{end}}">
<header class="site-header">
<a class="site-brand" href="/">{{.SiteName}}</a>
<nav class="site-nav">
{{range .Nav}}<a href="{{.Href}}">{{.Label}}</a>
{{end}}</nav>
</header>
<main class="page page-{{.PageID}} page-variant-{{.Variant}}">
{{range .Blocks}}{{.}}{{end}}
</main>
<footer class="site-footer">
<p>&copy; {{.Year}} {{.SiteName}}</p>
</footer>
</body>
</html>{{end}}

{{define "not-configured"}}<section class="section section-empty">
<h1>No Content Available</h1>
<p>This page has not been set up yet. Sign in to the admin panel to add content.</p>
</section>{{end}}

{{define "error"}}<section class="section section-error">
<h1>Something went wrong</h1>
<p>The page could not be loaded. Please try again shortly.</p>
</section>{{end}}

{{define "hero"}}<section class="block block-hero hero-{{.HeroKind}}"{{if .Block.Image}} style="background-image: url('{{.Block.Image}}')"{{end}}>
<h1>{{.Block.Title}}</h1>
{{if .Block.Subtitle}}<p class="hero-subtitle">{{.Block.Subtitle}}</p>{{end}}
<div class="hero-actions">
{{if .Block.PrimaryLabel}}<a class="btn btn-primary" href="{{.Block.PrimaryHref}}">{{.Block.PrimaryLabel}}</a>{{end}}
{{if .Block.SecondaryLabel}}<a class="btn btn-secondary" href="{{.Block.SecondaryHref}}">{{.Block.SecondaryLabel}}</a>{{end}}
</div>
</section>{{end}}

{{define "intro"}}<section class="block block-intro">
<h2>{{.Block.Title}}</h2>
{{if .Block.Body}}<div class="intro-body">{{.Body}}</div>{{end}}
</section>{{end}}

{{define "cards"}}<section class="block block-{{.Name}}">
<h2>{{.Block.Title}}</h2>
<div class="card-grid">
{{range .Block.Items}}<div class="card">
{{if .Icon}}<span class="card-icon">{{.Icon}}</span>{{end}}
<h3>{{.Title}}</h3>
{{if .Description}}<p>{{.Description}}</p>{{end}}
</div>
{{end}}</div>
</section>{{end}}

{{define "stats"}}<section class="block block-stats">
{{if .Block.Title}}<h2>{{.Block.Title}}</h2>{{end}}
<div class="stats-grid">
{{range .Block.Items}}<div class="stat">
<span class="stat-number">{{.Number}}</span>
<span class="stat-label">{{.Label}}</span>
</div>
{{end}}</div>
</section>{{end}}

{{define "cta"}}<section class="block block-cta">
<h2>{{.Block.Title}}</h2>
{{if .Block.Body}}<p>{{.Block.Body}}</p>{{end}}
{{if .Block.ButtonLabel}}<a class="btn btn-primary" href="{{.Block.ButtonHref}}">{{.Block.ButtonLabel}}</a>{{end}}
</section>{{end}}

{{define "benefits"}}<section class="block block-benefits">
<h2>{{.Block.Title}}</h2>
<ul class="benefits-list">
{{range .Block.Items}}<li>{{.}}</li>
{{end}}</ul>
</section>{{end}}

{{define "form"}}<section class="block block-form form-style-{{.FormStyle}}">
<h2>{{.Block.Title}}</h2>
{{if .Block.Description}}<p>{{.Block.Description}}</p>{{end}}
{{if eq .FormType "membership"}}<form method="post" action="/join" class="site-form">
<input type="text" name="name" placeholder="Your name" required>
<input type="email" name="email" placeholder="Email address" required>
<input type="tel" name="phone" placeholder="Phone">
<select name="goal">
<option value="">What is your goal?</option>
<option value="weight-loss">Weight loss</option>
<option value="muscle-gain">Muscle gain</option>
<option value="endurance">Endurance</option>
<option value="general-fitness">General fitness</option>
</select>
<textarea name="notes" placeholder="Anything we should know?"></textarea>
<button type="submit" class="btn btn-primary">Join Now</button>
</form>{{else}}<form method="post" action="/contact" class="site-form">
<input type="text" name="name" placeholder="Your name" required>
<input type="email" name="email" placeholder="Email address" required>
<input type="tel" name="phone" placeholder="Phone">
<textarea name="message" placeholder="Your message" required></textarea>
<button type="submit" class="btn btn-primary">Send Message</button>
</form>{{end}}
</section>{{end}}
`))
