package factory

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/spf13/afero"

	"github.com/pipewatch/cli/internal/api"
	"github.com/pipewatch/cli/internal/config"
)

// Factory carries the shared collaborators every command needs
type Factory struct {
	Config     *config.Config
	Fs         afero.Fs
	HTTPClient *http.Client
	Version    string
}

func New(version string) *Factory {
	return &Factory{
		Config:     config.Load(),
		Fs:         afero.NewOsFs(),
		HTTPClient: http.DefaultClient,
		Version:    version,
	}
}

// APIClient builds an authenticated client for the configured endpoint.
// The token reaches the client through memory only; it is never part of
// the process arguments or environment.
func (f *Factory) APIClient(token string) *api.Client {
	return api.NewClient(token,
		api.WithBaseURL(f.Config.APIEndpoint()),
		api.WithUserAgent(fmt.Sprintf("pipewatch-cli/%s (%s/%s)", f.Version, runtime.GOOS, runtime.GOARCH)),
		api.WithHTTPClient(f.HTTPClient),
	)
}
