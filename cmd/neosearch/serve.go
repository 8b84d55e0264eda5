package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/neosearch"
	"github.com/a-h/neosearch/auth"
	"github.com/a-h/neosearch/neocities"
	"github.com/a-h/neosearch/routes"
)

type ServeCommand struct {
	NeocitiesAPIKey          string `help:"The Neocities API key of the site to search." env:"NEOCITIES_API_KEY" default:""`
	NeocitiesAPIURL          string `help:"The base URL of the Neocities API." env:"NEOCITIES_API_URL" default:"${neocities_api_url}"`
	NeocitiesSiteURLTemplate string `help:"Template of the public URL of a site, %s is replaced by the site name." env:"NEOCITIES_SITE_URL_TEMPLATE" default:"${neocities_site_url_template}"`
	MCPPath                  string `help:"Serve an MCP search tool at this path, e.g. /mcp. Disabled when empty." env:"MCP_PATH" default:""`
	ListenAddr               string `help:"The address to listen on." env:"LISTEN_ADDR" default:"localhost:9020"`
	TLSCertFile              string `help:"The TLS certificate file." env:"TLS_CERT_FILE" default:""`
	TLSKeyFile               string `help:"The TLS key file." env:"TLS_KEY_FILE" default:""`
	APIKeysFile              string `help:"A file containing a JSON map of API keys to usernames. Callers are not authenticated when empty." env:"API_KEYS_FILE" default:""`
	LogLevel                 string `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (c ServeCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)

	if c.NeocitiesAPIKey == "" {
		log.Warn("NEOCITIES_API_KEY is not set, search requests will fail")
	}

	var apiKeyToUserName map[string]string
	if c.APIKeysFile != "" {
		apiKeyToUserName, err = auth.LoadFromFile(c.APIKeysFile)
		if err != nil {
			return fmt.Errorf("failed to load API keys: %w", err)
		}
		log.Info("Authentication enabled", slog.Int("keys", len(apiKeyToUserName)))
	}

	h := routes.New(log, routes.Config{
		NeocitiesAPIKey:          c.NeocitiesAPIKey,
		NeocitiesAPIURL:          c.NeocitiesAPIURL,
		NeocitiesSiteURLTemplate: c.NeocitiesSiteURLTemplate,
		MCPPath:                  c.MCPPath,
		APIKeyToUserName:         apiKeyToUserName,
		Version:                  neosearch.Version,
	})
	if c.MCPPath != "" {
		log.Info("MCP enabled", slog.String("path", c.MCPPath))
	}

	log.Info("Listening", slog.String("addr", c.ListenAddr))
	s := &http.Server{
		Addr:    c.ListenAddr,
		Handler: h,
	}
	if c.TLSCertFile != "" && c.TLSKeyFile != "" {
		log.Info("Enabling TLS mode")
		var cert tls.Certificate
		cert, err = tls.LoadX509KeyPair(c.TLSCertFile, c.TLSKeyFile)
		if err != nil {
			return fmt.Errorf("failed to load cert: %w", err)
		}
		s.TLSConfig = &tls.Config{
			MinVersion:   tls.VersionTLS12,
			Certificates: []tls.Certificate{cert},
		}
		return s.ListenAndServeTLS(c.TLSCertFile, c.TLSKeyFile)
	}
	return s.ListenAndServe()
}

var kongVars = map[string]string{
	"neocities_api_url":           neocities.DefaultAPIURL,
	"neocities_site_url_template": neocities.DefaultSiteURLTemplate,
}
