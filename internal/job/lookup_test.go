package job

import (
	"context"
	"net/http"
	"testing"

	"github.com/pipewatch/cli/internal/api"
	"github.com/pipewatch/cli/internal/errors"
	"github.com/pipewatch/cli/internal/models"
	"github.com/pipewatch/cli/internal/testutil"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	t.Run("resolves a job by project slug and number", func(t *testing.T) {
		t.Parallel()

		server := testutil.MockAPIServer(t, testutil.RouteMap(map[string]string{
			"/project/gh/acme/widgets/job/123": `{
				"number": 123,
				"name": "unit-tests",
				"status": "failed",
				"started_at": "2026-08-27T10:00:00Z",
				"stopped_at": "2026-08-27T10:04:00Z"
			}`,
		}))

		client := api.NewClient("token", api.WithBaseURL(server.URL))
		result, err := Lookup(context.Background(), client, "gh/acme/widgets", 123)
		if err != nil {
			t.Fatal(err)
		}

		testutil.AssertEqual(t, result.ProjectSlug, "gh/acme/widgets", "project slug")
		testutil.AssertEqual(t, result.JobNumber, 123, "job number")
		if result.Job == nil {
			t.Fatal("expected a resolved job")
		}
		testutil.AssertEqual(t, result.Job.Name, "unit-tests", "job name")
		testutil.AssertEqual(t, result.Job.Status, models.StatusFailed, "job status")
		testutil.AssertEqual(t, *result.Job.StartedAt, "2026-08-27T10:00:00Z", "started at")
	})

	t.Run("empty record resolves to a null job", func(t *testing.T) {
		t.Parallel()

		server := testutil.MockAPIServer(t, testutil.RouteMap(map[string]string{
			"/project/gh/acme/widgets/job/9": `{}`,
		}))

		client := api.NewClient("token", api.WithBaseURL(server.URL))
		result, err := Lookup(context.Background(), client, "gh/acme/widgets", 9)
		if err != nil {
			t.Fatal(err)
		}

		if result.Job != nil {
			t.Errorf("expected null job, got %+v", result.Job)
		}
	})

	t.Run("404 surfaces as an API error", func(t *testing.T) {
		t.Parallel()

		server := testutil.MockAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Job not found"}`))
		})

		client := api.NewClient("token", api.WithBaseURL(server.URL))
		_, err := Lookup(context.Background(), client, "gh/acme/widgets", 404)

		testutil.AssertErrorIs(t, err, errors.ErrAPI)
		testutil.AssertContains(t, err.Error(), "Job not found")
	})
}
