package main

import (
	"fmt"
	"io"
	"os"

	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
)

// slotTitles maps slots to the names shown to the user.
var slotTitles = map[cfhelper.TemplateSlot]string{
	cfhelper.TemplateResource: "resource",
	cfhelper.TemplateImport:   "import",
}

// Run prints each template, annotating slots that still carry the built-in
// default.
func (c *TemplatesShowCmd) Run(deps *Dependencies) error {
	stored, err := deps.Templates.Get(deps.Ctx, cfhelper.TemplateSlots)
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	for i, slot := range cfhelper.TemplateSlots {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		value, ok := stored[slot]
		if !ok {
			value = cfhelper.DefaultTemplate(slot)
			fmt.Fprintf(deps.Stdout, "# %s template (default)\n", slotTitles[slot])
		} else {
			fmt.Fprintf(deps.Stdout, "# %s template\n", slotTitles[slot])
		}
		fmt.Fprintln(deps.Stdout, value)
	}
	return nil
}

// Run stores a template read from the given file, or from stdin when no file
// is given.
func (c *TemplatesSetCmd) Run(deps *Dependencies) error {
	var (
		text []byte
		err  error
	)
	if c.File != "" {
		text, err = os.ReadFile(c.File)
	} else {
		text, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}

	slot := slotFromName(c.Slot)[0]
	if err := deps.Templates.Set(deps.Ctx, map[cfhelper.TemplateSlot]string{slot: string(text)}); err != nil {
		fmt.Fprintf(deps.Stderr, "Failed to save template: %v\n", err)
		return fmt.Errorf("saving template: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Saved %s template (%d bytes)\n", c.Slot, len(text))
	return nil
}

// Run removes the stored values for the chosen slots, reverting them to the
// built-in defaults.
func (c *TemplatesResetCmd) Run(deps *Dependencies) error {
	slots := slotFromName(c.Slot)
	if err := deps.Templates.Reset(deps.Ctx, slots); err != nil {
		fmt.Fprintf(deps.Stderr, "Failed to reset templates: %v\n", err)
		return fmt.Errorf("resetting templates: %w", err)
	}

	for _, slot := range slots {
		fmt.Fprintf(deps.Stdout, "Reset %s template to default\n", slotTitles[slot])
	}
	return nil
}
