// Package mcp holds the read-only tool catalog and the selection strategies
// that narrow it per task. The catalog maps server ids to tool schemas; the
// core never mutates it, only refreshes snapshots from the tool registry.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"
)

// ToolSchema describes one tool exposed by a server.
type ToolSchema struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Parameters is a JSON Schema document.
	Parameters json.RawMessage `json:"parameters,omitempty"`
}

// NamedTool is a tool with its fully qualified "server.tool" name.
type NamedTool struct {
	Server string     `json:"server"`
	Schema ToolSchema `json:"schema"`
}

// QualifiedName returns the canonical "server.tool" name.
func (t NamedTool) QualifiedName() string {
	return t.Server + "." + t.Schema.Name
}

// Catalog is a versioned snapshot map of server → tools. Reads see a
// consistent snapshot; Refresh swaps the whole snapshot atomically.
type Catalog struct {
	mu      sync.RWMutex
	servers map[string][]ToolSchema
	version string
}

// catalogDocument is the wire format served by the tool registry.
type catalogDocument struct {
	Version string                  `json:"version"`
	Servers map[string][]ToolSchema `json:"servers"`
}

// NewStaticCatalog builds a catalog from configuration.
func NewStaticCatalog(version string, servers map[string][]ToolSchema) *Catalog {
	c := &Catalog{}
	c.replace(version, servers)
	return c
}

// NewCatalogFromRegistry fetches the initial snapshot from the tool registry
// endpoint.
func NewCatalogFromRegistry(ctx context.Context, registryURL string) (*Catalog, error) {
	c := &Catalog{servers: map[string][]ToolSchema{}}
	if err := c.RefreshFromRegistry(ctx, registryURL); err != nil {
		return nil, err
	}
	return c, nil
}

// RefreshFromRegistry replaces the snapshot with the registry's current
// catalog document.
func (c *Catalog) RefreshFromRegistry(ctx context.Context, registryURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, registryURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build catalog request: %w", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch tool catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tool registry returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 50<<20))
	if err != nil {
		return fmt.Errorf("failed to read tool catalog: %w", err)
	}

	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode tool catalog: %w", err)
	}

	c.replace(doc.Version, doc.Servers)
	slog.Info("Tool catalog refreshed",
		"version", doc.Version, "servers", len(doc.Servers))
	return nil
}

func (c *Catalog) replace(version string, servers map[string][]ToolSchema) {
	snapshot := make(map[string][]ToolSchema, len(servers))
	for server, tools := range servers {
		copied := make([]ToolSchema, len(tools))
		copy(copied, tools)
		snapshot[server] = copied
	}

	c.mu.Lock()
	c.servers = snapshot
	c.version = version
	c.mu.Unlock()
}

// Version returns the catalog version string.
func (c *Catalog) Version() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Servers returns the known server ids, sorted.
func (c *Catalog) Servers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.servers))
	for s := range c.servers {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Tools returns the tools of one server, in catalog order.
func (c *Catalog) Tools(server string) []ToolSchema {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tools := c.servers[server]
	out := make([]ToolSchema, len(tools))
	copy(out, tools)
	return out
}

// AllTools returns every tool with qualified names, servers sorted, tools in
// catalog order within a server.
func (c *Catalog) AllTools() []NamedTool {
	var out []NamedTool
	for _, server := range c.Servers() {
		for _, tool := range c.Tools(server) {
			out = append(out, NamedTool{Server: server, Schema: tool})
		}
	}
	return out
}
