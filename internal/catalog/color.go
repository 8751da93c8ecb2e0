// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package catalog

// ColorTheme is a named palette applied site-wide: four color tokens and
// two gradient expressions derived from them.
type ColorTheme struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Primary      string `json:"primary"`
	PrimaryHover string `json:"primaryHover"`
	PrimaryLight string `json:"primaryLight"`
	PrimaryDark  string `json:"primaryDark"`
	Gradient     string `json:"gradient"`
	GradientSoft string `json:"gradientSoft"`
}

func (t ColorTheme) Key() string   { return t.ID }
func (t ColorTheme) Label() string { return t.Name }

// ColorThemes is the ordered color theme catalog. The first entry is the
// fallback for unknown selection ids.
var ColorThemes = []ColorTheme{
	{
		ID:           "orange-red",
		Name:         "Orange Red",
		Primary:      "#f97316",
		PrimaryHover: "#ea580c",
		PrimaryLight: "#ffedd5",
		PrimaryDark:  "#9a3412",
		Gradient:     "linear-gradient(135deg, #f97316 0%, #dc2626 100%)",
		GradientSoft: "linear-gradient(135deg, #ffedd5 0%, #fee2e2 100%)",
	},
	{
		ID:           "ocean-blue",
		Name:         "Ocean Blue",
		Primary:      "#0ea5e9",
		PrimaryHover: "#0284c7",
		PrimaryLight: "#e0f2fe",
		PrimaryDark:  "#075985",
		Gradient:     "linear-gradient(135deg, #0ea5e9 0%, #2563eb 100%)",
		GradientSoft: "linear-gradient(135deg, #e0f2fe 0%, #dbeafe 100%)",
	},
	{
		ID:           "forest-green",
		Name:         "Forest Green",
		Primary:      "#16a34a",
		PrimaryHover: "#15803d",
		PrimaryLight: "#dcfce7",
		PrimaryDark:  "#14532d",
		Gradient:     "linear-gradient(135deg, #16a34a 0%, #0d9488 100%)",
		GradientSoft: "linear-gradient(135deg, #dcfce7 0%, #ccfbf1 100%)",
	},
	{
		ID:           "royal-purple",
		Name:         "Royal Purple",
		Primary:      "#9333ea",
		PrimaryHover: "#7e22ce",
		PrimaryLight: "#f3e8ff",
		PrimaryDark:  "#581c87",
		Gradient:     "linear-gradient(135deg, #9333ea 0%, #db2777 100%)",
		GradientSoft: "linear-gradient(135deg, #f3e8ff 0%, #fce7f3 100%)",
	},
	{
		ID:           "sunset-gold",
		Name:         "Sunset Gold",
		Primary:      "#d97706",
		PrimaryHover: "#b45309",
		PrimaryLight: "#fef3c7",
		PrimaryDark:  "#78350f",
		Gradient:     "linear-gradient(135deg, #d97706 0%, #c2410c 100%)",
		GradientSoft: "linear-gradient(135deg, #fef3c7 0%, #ffedd5 100%)",
	},
	{
		ID:           "slate-mono",
		Name:         "Slate Mono",
		Primary:      "#475569",
		PrimaryHover: "#334155",
		PrimaryLight: "#f1f5f9",
		PrimaryDark:  "#0f172a",
		Gradient:     "linear-gradient(135deg, #475569 0%, #0f172a 100%)",
		GradientSoft: "linear-gradient(135deg, #f1f5f9 0%, #e2e8f0 100%)",
	},
}
