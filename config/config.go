// Package config loads runtime configuration from the environment.
package config

import "os"

// Config holds the external-service and dashboard settings.
type Config struct {
	// RelayURL is the third-party intake endpoint for form submissions.
	RelayURL string

	// EmailJS credentials for owner replies. All three are required before
	// a reply can be sent; they have no usable defaults.
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string

	// DashboardPassword gates the owner dashboard. The default is a
	// development placeholder, not a security boundary.
	DashboardPassword string
}

// Load reads configuration from the environment, falling back to documented
// defaults.
func Load() Config {
	return Config{
		RelayURL:          env("RELAY_URL", "https://formspree.io/f/xnjqegdj"),
		EmailJSServiceID:  env("EMAILJS_SERVICE_ID", ""),
		EmailJSTemplateID: env("EMAILJS_TEMPLATE_ID", ""),
		EmailJSPublicKey:  env("EMAILJS_PUBLIC_KEY", ""),
		DashboardPassword: env("DASHBOARD_PASSWORD", "printpro2024"),
	}
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
