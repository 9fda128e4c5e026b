package provider

import (
	"net/http"

	"golang.org/x/oauth2"

	"familybridge/internal/calsync"
)

// Config wires the provider clients.
type Config struct {
	// Google refreshes user tokens. Nil disables the google client.
	Google *oauth2.Config
	// CalDAVEndpoint is the Apple CalDAV server.
	CalDAVEndpoint string
	// Transport is the base round tripper for all provider traffic. Nil uses http.DefaultTransport.
	Transport http.RoundTripper
}

// New returns the clients by provider. Outlook has no client, so its connections
// are stored but every push reports calsync.ErrUnsupportedProvider.
func New(cfg Config) map[calsync.Provider]calsync.Client {
	clients := map[calsync.Provider]calsync.Client{
		calsync.ProviderApple: NewApple(cfg.CalDAVEndpoint, cfg.Transport),
	}
	if cfg.Google != nil {
		clients[calsync.ProviderGoogle] = NewGoogle(cfg.Google, cfg.Transport)
	}
	return clients
}
