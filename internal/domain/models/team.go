package models

// RepoProvider identifies the source-control host of a team repository.
type RepoProvider string

const (
	RepoProviderGitHub RepoProvider = "github"
	RepoProviderGitLab RepoProvider = "gitlab"
)

// TeamRepo is a repository linked to a team.
type TeamRepo struct {
	Org      string       `toml:"org"`
	Name     string       `toml:"name"`
	Provider RepoProvider `toml:"provider"`
}

// Team agrupa los repositorios sobre los que se agregan colaboradores.
type Team struct {
	ID    string     `toml:"id"`
	Name  string     `toml:"name"`
	Repos []TeamRepo `toml:"repos"`
}
