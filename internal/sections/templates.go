// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package sections

import "html/template"

// tmpl holds one named template per section type, parsed once at init.
// Markup stays deliberately structural: visual treatment comes from the
// style namespace (CSS custom properties + body marker classes).
var tmpl = template.Must(template.New("sections").Parse(`
{{define "wrapper-open"}}<section class="section section-{{.Section.Type}}"{{if .Section.BackgroundColor}} style="background-color: {{.Section.BackgroundColor}}"{{end}}>{{end}}

{{define "text"}}{{template "wrapper-open" .}}
  {{if .Title}}<h2 class="section-title">{{.Title}}</h2>{{end}}
  {{if .Content}}<div class="rich-text">{{.Content}}</div>{{end}}
</section>{{end}}

{{define "image-text"}}{{template "wrapper-open" .}}
  <div class="image-text image-{{.Position}}">
    <img src="{{.Image}}" alt="{{.Title}}">
    <div class="image-text-copy">
      {{if .Title}}<h2 class="section-title">{{.Title}}</h2>{{end}}
      {{if .Content}}<div class="rich-text">{{.Content}}</div>{{end}}
    </div>
  </div>
</section>{{end}}

{{define "features"}}{{template "wrapper-open" .}}
  {{if .Title}}<h2 class="section-title">{{.Title}}</h2>{{end}}
  <div class="card-grid">
    {{range .Features}}<div class="card">
      {{if .Icon}}<span class="card-icon">{{.Icon}}</span>{{end}}
      <h3>{{.Title}}</h3>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
    </div>{{end}}
  </div>
</section>{{end}}

{{define "stats"}}{{template "wrapper-open" .}}
  {{if .Title}}<h2 class="section-title">{{.Title}}</h2>{{end}}
  <div class="stats-grid">
    {{range .Stats}}<div class="stat">
      <span class="stat-number">{{.Number}}</span>
      <span class="stat-label">{{.Label}}</span>
    </div>{{end}}
  </div>
</section>{{end}}

{{define "video"}}{{template "wrapper-open" .}}
  {{if .Title}}<h2 class="section-title">{{.Title}}</h2>{{end}}
  <div class="video-layout video-{{.Layout}}">
    {{range .Videos}}<figure class="video">
      <iframe src="{{.URL}}" title="{{.Title}}" loading="lazy" allowfullscreen></iframe>
      {{if .Title}}<figcaption>{{.Title}}</figcaption>{{end}}
    </figure>{{end}}
  </div>
</section>{{end}}

{{define "testimonials"}}{{template "wrapper-open" .}}
  {{if .Title}}<h2 class="section-title">{{.Title}}</h2>{{end}}
  <div class="testimonial-grid">
    {{range .Testimonials}}<blockquote class="testimonial">
      <p>{{.Quote}}</p>
      <footer>{{.Author}}{{if .Role}}<span class="testimonial-role">{{.Role}}</span>{{end}}</footer>
    </blockquote>{{end}}
  </div>
</section>{{end}}
`))
