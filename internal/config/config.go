// Package config loads the briefing configuration from a YAML file and
// resolves delivery settings against environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the full run configuration. Load fills absent keys with
// defaults; the pipeline itself never reads the environment.
type Config struct {
	Regions         []string `yaml:"regions"`
	Sectors         []Sector `yaml:"sectors"`
	Queries         []string `yaml:"queries"`
	KeywordsInclude []string `yaml:"keywords_include"`
	KeywordsExclude []string `yaml:"keywords_exclude"`
	MaxItems        int      `yaml:"max_items"`
	DaysWindow      int      `yaml:"days_window"`
	GroupBy         string   `yaml:"group_by"` // "sector", "region", or "none"
	Subject         string   `yaml:"subject"`
	Email           Email    `yaml:"email"`
}

// Sector is a named group of search queries.
type Sector struct {
	Name    string   `yaml:"name"`
	Queries []string `yaml:"queries"`
}

// Email holds file-configured delivery settings. Environment variables
// of the same (upper-cased) name take precedence; see SMTP.
type Email struct {
	SMTPServer string `yaml:"smtp_server"`
	SMTPPort   int    `yaml:"smtp_port"`
	SMTPUser   string `yaml:"smtp_user"`
	SMTPPass   string `yaml:"smtp_pass"`
	ToEmail    string `yaml:"to_email"`
	FromEmail  string `yaml:"from_email"`
}

// SMTP is the fully resolved delivery configuration.
type SMTP struct {
	Server string
	Port   int
	User   string
	Pass   string
	To     string
	From   string
}

// Load reads and parses the configuration file. Defaults are seeded
// before parsing, so an absent key falls back while an explicitly
// configured value survives even when it is zero: `max_items: 0` means
// an empty digest, not 40 items.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Config{
		Regions:    []string{"US"},
		MaxItems:   40,
		DaysWindow: 1,
		GroupBy:    "sector",
		Subject:    "Your Daily News Digest",
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Resolve returns the first non-empty of an explicit override, a
// configured value, and a fallback. Callers pass environment lookups in
// as the override so precedence is visible at the call site rather than
// hidden inside this package.
func Resolve(override, configured, fallback string) string {
	if override != "" {
		return override
	}
	if configured != "" {
		return configured
	}
	return fallback
}

// SMTP resolves delivery settings: environment variable over configured
// value over built-in default. It fails when the credentials or
// addresses a send needs are missing, so a misconfigured run stops
// before any feeds are fetched.
func (c *Config) SMTP() (SMTP, error) {
	s := SMTP{
		Server: Resolve(os.Getenv("SMTP_SERVER"), c.Email.SMTPServer, "smtp.gmail.com"),
		Port:   resolvePort(os.Getenv("SMTP_PORT"), c.Email.SMTPPort, 465),
		User:   Resolve(os.Getenv("SMTP_USER"), c.Email.SMTPUser, ""),
		Pass:   Resolve(os.Getenv("SMTP_PASS"), c.Email.SMTPPass, ""),
		To:     Resolve(os.Getenv("TO_EMAIL"), c.Email.ToEmail, ""),
	}
	s.From = Resolve(os.Getenv("FROM_EMAIL"), c.Email.FromEmail, s.User)

	if s.User == "" || s.Pass == "" || s.To == "" || s.From == "" {
		return SMTP{}, fmt.Errorf("missing SMTP credentials or addresses: set SMTP_USER, SMTP_PASS, FROM_EMAIL, TO_EMAIL")
	}
	return s, nil
}

func resolvePort(override string, configured, fallback int) int {
	if override != "" {
		if n, err := strconv.Atoi(override); err == nil {
			return n
		}
	}
	if configured != 0 {
		return configured
	}
	return fallback
}
