package contributors

import (
	"context"
	"fmt"
	"testing"

	"github.com/Tomas-vilte/DoraPulse/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSource devuelve listas fijas por repositorio
type mockSource struct {
	byRepo  map[string][]models.Contributor
	failing map[string]bool
}

func (m *mockSource) ListContributors(_ context.Context, org, repo string) ([]models.Contributor, error) {
	key := org + "/" + repo
	if m.failing[key] {
		return nil, fmt.Errorf("fetch de %s fallo", key)
	}
	return m.byRepo[key], nil
}

func contributor(login string, id int64, contributions int) models.Contributor {
	return models.Contributor{
		Login:         login,
		ID:            id,
		AvatarURL:     "https://avatars.test/" + login,
		HTMLURL:       "https://github.test/" + login,
		Type:          "User",
		Contributions: contributions,
	}
}

func githubRepo(name string) models.TeamRepo {
	return models.TeamRepo{Org: "acme", Name: name, Provider: models.RepoProviderGitHub}
}

func TestTeamContributorsMergesAcrossRepos(t *testing.T) {
	source := &mockSource{
		byRepo: map[string][]models.Contributor{
			"acme/api":    {contributor("alice", 1, 5), contributor("bob", 2, 2)},
			"acme/webapp": {contributor("alice", 1, 3)},
		},
	}
	aggregator := NewAggregator(source)

	team := models.Team{ID: "platform", Repos: []models.TeamRepo{githubRepo("api"), githubRepo("webapp")}}
	ranked := aggregator.TeamContributors(context.Background(), team)

	require.Len(t, ranked, 2)

	// alice: 5 + 3 = 8, con dos entradas de breakdown.
	alice := ranked[0]
	assert.Equal(t, "alice", alice.Login)
	assert.Equal(t, 8, alice.Contributions)
	require.Len(t, alice.Repositories, 2)
	assert.Equal(t, models.RepoContribution{Name: "api", Contributions: 5}, alice.Repositories[0])
	assert.Equal(t, models.RepoContribution{Name: "webapp", Contributions: 3}, alice.Repositories[1])

	assert.Equal(t, "bob", ranked[1].Login)
	assert.Equal(t, 2, ranked[1].Contributions)
}

func TestTeamContributorsOrderCommutative(t *testing.T) {
	byRepo := map[string][]models.Contributor{
		"acme/a": {contributor("alice", 1, 5), contributor("bob", 2, 7)},
		"acme/b": {contributor("alice", 1, 3), contributor("carol", 3, 1)},
	}

	totals := func(repos ...models.TeamRepo) map[string]int {
		aggregator := NewAggregator(&mockSource{byRepo: byRepo})
		ranked := aggregator.TeamContributors(context.Background(), models.Team{ID: "t", Repos: repos})
		out := make(map[string]int)
		for _, c := range ranked {
			out[c.Login] = c.Contributions
		}
		return out
	}

	ab := totals(githubRepo("a"), githubRepo("b"))
	ba := totals(githubRepo("b"), githubRepo("a"))

	// Los totales por colaborador no dependen del orden de procesamiento.
	assert.Equal(t, ab, ba)
	assert.Equal(t, 8, ab["alice"])
	assert.Equal(t, 7, ab["bob"])
	assert.Equal(t, 1, ab["carol"])
}

func TestTeamContributorsSkipsFailingRepo(t *testing.T) {
	source := &mockSource{
		byRepo: map[string][]models.Contributor{
			"acme/ok": {contributor("alice", 1, 4)},
		},
		failing: map[string]bool{"acme/broken": true},
	}
	aggregator := NewAggregator(source)

	team := models.Team{ID: "t", Repos: []models.TeamRepo{githubRepo("broken"), githubRepo("ok")}}
	ranked := aggregator.TeamContributors(context.Background(), team)

	// La falla de un repo nunca aborta la agregacion completa.
	require.Len(t, ranked, 1)
	assert.Equal(t, "alice", ranked[0].Login)
}

func TestTeamContributorsAllReposFailing(t *testing.T) {
	source := &mockSource{failing: map[string]bool{"acme/a": true, "acme/b": true}}
	aggregator := NewAggregator(source)

	team := models.Team{ID: "t", Repos: []models.TeamRepo{githubRepo("a"), githubRepo("b")}}
	ranked := aggregator.TeamContributors(context.Background(), team)

	// Lista vacia, no un error.
	assert.Empty(t, ranked)
}

func TestTeamContributorsSkipsNonGitHubRepos(t *testing.T) {
	calls := &mockSource{byRepo: map[string][]models.Contributor{
		"acme/gh": {contributor("alice", 1, 2)},
	}}
	aggregator := NewAggregator(calls)

	team := models.Team{ID: "t", Repos: []models.TeamRepo{
		{Org: "acme", Name: "gl", Provider: models.RepoProviderGitLab},
		githubRepo("gh"),
	}}
	ranked := aggregator.TeamContributors(context.Background(), team)

	require.Len(t, ranked, 1)
	assert.Equal(t, "alice", ranked[0].Login)
}

func TestTeamContributorsRankingStableTies(t *testing.T) {
	source := &mockSource{
		byRepo: map[string][]models.Contributor{
			"acme/a": {contributor("zoe", 1, 3), contributor("amy", 2, 3), contributor("max", 3, 9)},
		},
	}
	aggregator := NewAggregator(source)

	ranked := aggregator.TeamContributors(context.Background(), models.Team{ID: "t", Repos: []models.TeamRepo{githubRepo("a")}})

	require.Len(t, ranked, 3)
	assert.Equal(t, "max", ranked[0].Login)
	// Empate 3-3: se mantiene el orden de primer encuentro.
	assert.Equal(t, "zoe", ranked[1].Login)
	assert.Equal(t, "amy", ranked[2].Login)
}

func TestTeamContributorsEmptyTeam(t *testing.T) {
	aggregator := NewAggregator(&mockSource{})
	ranked := aggregator.TeamContributors(context.Background(), models.Team{ID: "t"})
	assert.Empty(t, ranked)
}

func TestTeamContributorsManyRepos(t *testing.T) {
	// Mas repos que workers: el pool acota la concurrencia y el fold
	// serializado mantiene los totales correctos.
	byRepo := make(map[string][]models.Contributor)
	var repos []models.TeamRepo
	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("repo-%d", i)
		byRepo["acme/"+name] = []models.Contributor{contributor("alice", 1, 1)}
		repos = append(repos, githubRepo(name))
	}

	aggregator := NewAggregator(&mockSource{byRepo: byRepo})
	ranked := aggregator.TeamContributors(context.Background(), models.Team{ID: "t", Repos: repos})

	require.Len(t, ranked, 1)
	assert.Equal(t, 10, ranked[0].Contributions)
	assert.Len(t, ranked[0].Repositories, 10)
}
