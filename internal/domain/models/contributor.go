package models

// RepoContribution is one per-repository entry in a contributor's breakdown.
type RepoContribution struct {
	Name          string `json:"name"`
	Contributions int    `json:"contributions"`
}

// Contributor es la vista agregada de un colaborador a través de los
// repositorios de un equipo.
type Contributor struct {
	Login         string             `json:"login"`
	ID            int64              `json:"id"`
	AvatarURL     string             `json:"avatar_url"`
	HTMLURL       string             `json:"html_url"`
	Type          string             `json:"type"`
	Contributions int                `json:"contributions"`
	Repositories  []RepoContribution `json:"repositories"`
}
