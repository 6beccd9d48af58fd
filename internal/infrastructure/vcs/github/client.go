package github

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Tomas-vilte/DoraPulse/internal/domain/models"
	"github.com/Tomas-vilte/DoraPulse/internal/domain/ports"
	"github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

const contributorsPerPage = 100

var _ ports.ContributorSource = (*Client)(nil)

// Client lista colaboradores contra la API de GitHub.
type Client struct {
	client *github.Client
}

// NewClient crea un cliente de GitHub. El token puede estar vacio: la API
// publica responde igual, con limites de rate mas bajos.
func NewClient(token string) *Client {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	return &Client{client: github.NewClient(httpClient)}
}

// ListContributors returns every contributor of org/repo, walking all pages.
func (c *Client) ListContributors(ctx context.Context, org, repo string) ([]models.Contributor, error) {
	opts := &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: contributorsPerPage},
	}

	var all []models.Contributor
	for {
		contributors, resp, err := c.client.Repositories.ListContributors(ctx, org, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("error al listar colaboradores de %s/%s: %w", org, repo, err)
		}

		for _, gc := range contributors {
			all = append(all, models.Contributor{
				Login:         gc.GetLogin(),
				ID:            gc.GetID(),
				AvatarURL:     gc.GetAvatarURL(),
				HTMLURL:       gc.GetHTMLURL(),
				Type:          gc.GetType(),
				Contributions: gc.GetContributions(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}
