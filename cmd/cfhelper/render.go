package main

import (
	"fmt"
	"os"
	"strings"

	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
	"github.com/mikepilat/chrome-cloudflare-helper/clipboard"
	"github.com/mikepilat/chrome-cloudflare-helper/goquery"
)

// Run extracts every record row from a saved dashboard HTML file and prints
// the rendered resource and import blocks. With --copy the combined output is
// also written to the OS clipboard.
func (c *RenderCmd) Run(deps *Dependencies) error {
	html, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("reading %q: %w", c.File, err)
	}

	extractor := goquery.NewExtractor()
	nodes, err := extractor.Discover(string(html))
	if err != nil {
		return fmt.Errorf("parsing %q: %w", c.File, err)
	}

	var records []cfhelper.Record
	for _, row := range nodes.Rows {
		if rec, ok := extractor.Extract(row, c.Zone); ok {
			records = append(records, rec)
		}
	}
	if len(records) == 0 {
		return fmt.Errorf("no DNS record rows found in %q", c.File)
	}

	stored, err := deps.Templates.Get(deps.Ctx, cfhelper.TemplateSlots)
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}
	templates := make(map[cfhelper.TemplateSlot]string, len(cfhelper.TemplateSlots))
	for _, slot := range cfhelper.TemplateSlots {
		if value, ok := stored[slot]; ok {
			templates[slot] = value
		} else {
			templates[slot] = cfhelper.DefaultTemplate(slot)
		}
	}

	var out strings.Builder
	for i, rec := range records {
		if i > 0 {
			out.WriteString("\n")
		}
		vars := cfhelper.NewTemplateVars(rec)
		out.WriteString(cfhelper.Render(templates[cfhelper.TemplateResource], vars))
		out.WriteString("\n\n")
		out.WriteString(cfhelper.Render(templates[cfhelper.TemplateImport], vars))
		out.WriteString("\n")
	}

	fmt.Fprint(deps.Stdout, out.String())

	if c.Copy {
		if err := clipboard.NewWriter().WriteText(deps.Ctx, out.String()); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintf(deps.Stderr, "Copied %d rendered blocks to the clipboard\n", len(records)*2)
	}
	return nil
}
