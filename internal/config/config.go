package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Tomas-vilte/DoraPulse/internal/domain/models"
)

// Config holds everything the server needs, built once at startup. Nothing
// reads the process environment after Load returns.
type Config struct {
	Port     int
	Language string

	// One secret per credential family. Absence is a valid state: the
	// model stays visible but requests against it are rejected before
	// any network call.
	OpenAIAPIKey    string
	FireworksAPIKey string
	GeminiAPIKey    string

	GitHubToken string

	TeamsFile string

	// Outbound hardening knobs.
	CompletionTimeout time.Duration
	RequestsPerMinute float64
}

const (
	defaultPort              = 8080
	defaultLang              = "en"
	defaultTeamsFile         = "teams.toml"
	defaultCompletionTimeout = 60 * time.Second
	defaultRequestsPerMinute = 60
)

// Load builds the config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:              defaultPort,
		Language:          getEnvOrDefault("LANGUAGE", defaultLang),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		FireworksAPIKey:   os.Getenv("FIREWORKS_API_KEY"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GitHubToken:       os.Getenv("GITHUB_TOKEN"),
		TeamsFile:         getEnvOrDefault("TEAMS_FILE", defaultTeamsFile),
		CompletionTimeout: defaultCompletionTimeout,
		RequestsPerMinute: defaultRequestsPerMinute,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("PORT invalido '%s': %w", portStr, err)
		}
		cfg.Port = port
	}

	if timeoutStr := os.Getenv("COMPLETION_TIMEOUT_SECONDS"); timeoutStr != "" {
		secs, err := strconv.Atoi(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("COMPLETION_TIMEOUT_SECONDS invalido '%s': %w", timeoutStr, err)
		}
		cfg.CompletionTimeout = time.Duration(secs) * time.Second
	}

	if rpmStr := os.Getenv("REQUESTS_PER_MINUTE"); rpmStr != "" {
		rpm, err := strconv.ParseFloat(rpmStr, 64)
		if err != nil || rpm <= 0 {
			return nil, fmt.Errorf("REQUESTS_PER_MINUTE invalido '%s'", rpmStr)
		}
		cfg.RequestsPerMinute = rpm
	}

	return cfg, nil
}

// Credential returns the secret for a credential family. The second return
// reports whether a non-empty secret is configured.
func (c *Config) Credential(family models.Family) (string, bool) {
	var key string
	switch family {
	case models.FamilyOpenAI:
		key = c.OpenAIAPIKey
	case models.FamilyFireworks:
		key = c.FireworksAPIKey
	case models.FamilyGemini:
		key = c.GeminiAPIKey
	}
	return key, key != ""
}

// HasGitHubConfig returns true if a GitHub token is configured.
func (c *Config) HasGitHubConfig() bool {
	return c.GitHubToken != ""
}

type teamsFile struct {
	Teams []models.Team `toml:"teams"`
}

// LoadTeams reads the team definitions from the TOML file. A missing file is
// not an error: the server runs with no teams defined.
func LoadTeams(path string) ([]models.Team, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var tf teamsFile
	if _, err := toml.DecodeFile(path, &tf); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo de equipos '%s': %w", path, err)
	}

	seen := make(map[string]bool, len(tf.Teams))
	for _, team := range tf.Teams {
		if team.ID == "" {
			return nil, fmt.Errorf("archivo de equipos '%s': un equipo no tiene id", path)
		}
		if seen[team.ID] {
			return nil, fmt.Errorf("archivo de equipos '%s': id de equipo duplicado '%s'", path, team.ID)
		}
		seen[team.ID] = true
	}

	return tf.Teams, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
