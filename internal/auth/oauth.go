package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

// githubUserURL is the endpoint the access token is redeemed against.
// Overridable in tests.
var githubUserURL = "https://api.github.com/user"

// GitHubUser is the slice of GitHub's /user response this service needs.
// GitHub returns a far larger object; everything else is ignored.
type GitHubUser struct {
	ID    int64  `json:"id"`    // numeric GitHub user ID — stable across renames
	Login string `json:"login"` // GitHub username
	Email string `json:"email"` // primary public email; empty if hidden
}

// GitHubProvider runs the GitHub Authorization Code flow on top of
// golang.org/x/oauth2. The code-for-token exchange happens server-to-server
// with the client secret, so the access token never reaches the browser; the
// token itself is discarded as soon as the profile has been fetched, because
// sessions — not GitHub tokens — are this service's credential.
type GitHubProvider struct {
	config *oauth2.Config
}

// NewGitHubProvider builds a provider for the registered OAuth app.
// callbackURL must exactly match the app's configured authorization callback.
// The user:email scope is requested so first login can capture the address.
func NewGitHubProvider(clientID, clientSecret, callbackURL string) *GitHubProvider {
	return &GitHubProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"user:email"},
			Endpoint:     github.Endpoint,
		},
	}
}

// Configured reports whether OAuth credentials were provided. When they
// weren't, the login route fails up front instead of bouncing the user to a
// GitHub error page.
func (p *GitHubProvider) Configured() bool {
	return p.config.ClientID != "" && p.config.ClientSecret != ""
}

// AuthURL returns the GitHub authorization URL for a login attempt. The
// state nonce is verified on callback against a cookie to stop CSRF-initiated
// flows.
func (p *GitHubProvider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the callback code for the user's GitHub profile: code →
// access token (server-to-server), then token → /user profile.
func (p *GitHubProvider) Exchange(ctx context.Context, code string) (*GitHubUser, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("auth: exchanging OAuth code: %w", err)
	}

	// config.Client attaches the bearer token to every request.
	resp, err := p.config.Client(ctx, token).Get(githubUserURL)
	if err != nil {
		return nil, fmt.Errorf("auth: fetching GitHub user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth: GitHub /user returned status %d", resp.StatusCode)
	}

	var ghUser GitHubUser
	if err := json.NewDecoder(resp.Body).Decode(&ghUser); err != nil {
		return nil, fmt.Errorf("auth: decoding GitHub user: %w", err)
	}
	if ghUser.ID == 0 {
		return nil, fmt.Errorf("auth: GitHub returned an invalid user")
	}

	return &ghUser, nil
}
