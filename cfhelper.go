// Package cfhelper augments the Cloudflare dashboard's DNS records table with
// copy-ready Terraform snippets. It watches a live page for table rows, extracts
// the DNS record embedded in each row's markup, and renders the record through
// user-customizable text templates (a resource block and an import block).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named after
// their primary dependency (e.g., goquery/, rod/, sqlite/).
package cfhelper
