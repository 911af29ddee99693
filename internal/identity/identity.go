// Package identity resolves the user behind the presented credential
package identity

import (
	"context"
	"fmt"

	"github.com/pipewatch/cli/internal/api"
	"github.com/pipewatch/cli/internal/models"
)

// Whoami performs the authentication smoke test: one GET against the
// identity endpoint, returning who the API believes the credential
// belongs to
func Whoami(ctx context.Context, client *api.Client) (*models.Identity, error) {
	var identity models.Identity
	if err := client.Get(ctx, "/me", &identity); err != nil {
		return nil, fmt.Errorf("checking credential against identity endpoint: %w", err)
	}
	return &identity, nil
}
