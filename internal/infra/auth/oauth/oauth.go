// Package oauth implements the authorization code flow of the federated identity providers.
package oauth

import (
	"chaski/config"
	"chaski/internal/domain/service"

	"golang.org/x/oauth2"
)

// NewServices returns one OAuthService per configured provider.
func NewServices(cfg *config.Config) []service.OAuthService {
	var services []service.OAuthService
	if isConfigured(cfg.OAuth.Google) {
		services = append(services, NewGoogleService(cfg.OAuth.Google))
	}
	if isConfigured(cfg.OAuth.Apple) {
		services = append(services, NewAppleService(cfg.OAuth.Apple))
	}

	return services
}

func isConfigured(provider *config.OAuthProviderConfig) bool {
	return provider != nil && provider.ClientID != ""
}

func newOAuth2Config(provider *config.OAuthProviderConfig, endpoint oauth2.Endpoint, defaultScopes []string) *oauth2.Config {
	scopes := provider.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}

	return &oauth2.Config{
		ClientID:     provider.ClientID,
		ClientSecret: provider.ClientSecret,
		RedirectURL:  provider.RedirectURL,
		Scopes:       scopes,
		Endpoint:     endpoint,
	}
}

// idTokenOf extracts the OpenID Connect id_token returned next to the access token.
func idTokenOf(token *oauth2.Token) string {
	raw, _ := token.Extra("id_token").(string)

	return raw
}
