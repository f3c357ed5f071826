package main

import (
	"context"
	"io"
	"log/slog"

	cfhelper "github.com/mikepilat/chrome-cloudflare-helper"
	"github.com/mikepilat/chrome-cloudflare-helper/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Templates cfhelper.TemplateStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Watch     WatchCmd     `cmd:"" help:"Attach to the dashboard and augment the DNS records table"`
	Templates TemplatesCmd `cmd:"" help:"Manage the stored templates"`
	Render    RenderCmd    `cmd:"" help:"Render templates from a saved dashboard HTML file"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	URL        string `arg:"" help:"Dashboard DNS records page URL"`
	ControlURL string `help:"Attach to a running browser via its DevTools control URL instead of launching one"`
}

// TemplatesCmd groups the template management subcommands.
type TemplatesCmd struct {
	Show  TemplatesShowCmd  `cmd:"" help:"Print the current templates"`
	Set   TemplatesSetCmd   `cmd:"" help:"Store a template from a file or stdin"`
	Reset TemplatesResetCmd `cmd:"" help:"Revert templates to the built-in defaults"`
}

// TemplatesShowCmd is the "templates show" subcommand.
type TemplatesShowCmd struct{}

// TemplatesSetCmd is the "templates set" subcommand.
type TemplatesSetCmd struct {
	Slot string `arg:"" enum:"resource,import" help:"Template slot (resource or import)"`
	File string `arg:"" optional:"" type:"existingfile" help:"Template file (defaults to stdin)"`
}

// TemplatesResetCmd is the "templates reset" subcommand.
type TemplatesResetCmd struct {
	Slot string `arg:"" optional:"" enum:"resource,import,all" default:"all" help:"Slot to reset"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	File string `arg:"" type:"existingfile" help:"Saved dashboard HTML file"`
	Zone string `required:"" help:"Zone name to embed in the rendered blocks"`
	Copy bool   `help:"Also write the combined output to the OS clipboard"`
}

// slotFromName maps the CLI slot names to template slots.
func slotFromName(name string) []cfhelper.TemplateSlot {
	switch name {
	case "resource":
		return []cfhelper.TemplateSlot{cfhelper.TemplateResource}
	case "import":
		return []cfhelper.TemplateSlot{cfhelper.TemplateImport}
	default:
		return cfhelper.TemplateSlots
	}
}
