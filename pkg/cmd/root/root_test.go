package root_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/pipewatch/cli/internal/config"
	"github.com/pipewatch/cli/internal/errors"
	"github.com/pipewatch/cli/internal/testutil"
	"github.com/pipewatch/cli/pkg/cmd/factory"
	"github.com/pipewatch/cli/pkg/cmd/root"
)

const testToken = "tok-8d03fe-value"

// testFactory builds a factory against a scratch secrets dir and a test
// server, mirroring how main wires the real one
func testFactory(t *testing.T, endpoint string) *factory.Factory {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "api_token"), []byte(testToken+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	v.Set(config.SecretsDirKey, dir)
	v.Set(config.APIEndpointKey, endpoint)

	return &factory.Factory{
		Config:     config.New(v),
		Fs:         afero.NewOsFs(),
		HTTPClient: http.DefaultClient,
		Version:    "testing",
	}
}

func execute(t *testing.T, f *factory.Factory, args ...string) (string, error) {
	t.Helper()

	cmd := root.NewCmdRoot(f)
	cmd.SetArgs(args)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	return out.String(), err
}

func TestRootUsageErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		args []string
	}{
		{"no mode selected", []string{}},
		{"two modes selected", []string{"--auth-smoke-test", "--pipeline-id", "p1"}},
		{"project slug without job number", []string{"--project-slug", "gh/acme/widgets"}},
		{"job number without project slug", []string{"--job-number", "7"}},
		{"unknown flag", []string{"--auth-smoke-test", "--nope"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := testFactory(t, "http://127.0.0.1:1")
			_, err := execute(t, f, tc.args...)

			if err == nil {
				t.Fatal("expected an error")
			}
			if errors.ExitCode(err) != errors.ExitUsage {
				t.Errorf("ExitCode(%v) = %d, want %d", err, errors.ExitCode(err), errors.ExitUsage)
			}
		})
	}

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		f := testFactory(t, "http://127.0.0.1:1")
		_, err := execute(t, f, "--auth-smoke-test", "--format", "xml")

		testutil.AssertErrorIs(t, err, errors.ErrUsage)
	})
}

func TestRootAuthSmokeTest(t *testing.T) {
	t.Parallel()

	t.Run("prints the identity without the token", func(t *testing.T) {
		t.Parallel()

		server := testutil.MockAPIServer(t, testutil.RouteMap(map[string]string{
			"/me": `{"id":"u-1","login":"alice","name":"Alice Example"}`,
		}))

		f := testFactory(t, server.URL)
		out, err := execute(t, f, "--auth-smoke-test")

		testutil.AssertNoError(t, err)
		testutil.AssertContains(t, out, "login=alice")
		testutil.AssertNotContains(t, out, testToken)
	})

	t.Run("json format emits the fixed schema", func(t *testing.T) {
		t.Parallel()

		server := testutil.MockAPIServer(t, testutil.RouteMap(map[string]string{
			"/me": `{"login":"alice"}`,
		}))

		f := testFactory(t, server.URL)
		out, err := execute(t, f, "--auth-smoke-test", "--format", "json")
		testutil.AssertNoError(t, err)

		var decoded map[string]interface{}
		if err := json.Unmarshal([]byte(out), &decoded); err != nil {
			t.Fatalf("stdout is not a JSON document: %v\n%s", err, out)
		}
		if decoded["id"] != nil {
			t.Errorf("absent id should be null, got %v", decoded["id"])
		}
		if decoded["login"] != "alice" {
			t.Errorf("login = %v", decoded["login"])
		}
	})

	t.Run("401 fails with the status but never the credential", func(t *testing.T) {
		t.Parallel()

		server := testutil.MockAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"You must log in first."}`))
		})

		f := testFactory(t, server.URL)
		out, err := execute(t, f, "--auth-smoke-test")

		testutil.AssertErrorIs(t, err, errors.ErrAPI)
		testutil.AssertContains(t, err.Error(), "401")
		testutil.AssertNotContains(t, err.Error(), testToken)
		testutil.AssertNotContains(t, out, testToken)
		testutil.AssertEqual(t, errors.ExitCode(err), errors.ExitRuntime, "exit code")
	})
}

func TestRootPipelineSummary(t *testing.T) {
	t.Parallel()

	server := testutil.MockAPIServer(t, testutil.RouteMap(map[string]string{
		"/pipeline/p1/workflow": `{"items":[
			{"id":"wf-1","name":"build","status":"success"},
			{"id":"wf-2","name":"test","status":"failed"}
		]}`,
		"/workflow/wf-1/job": `{"items":[{"id":"j1","job_number":1,"name":"compile","status":"success"}]}`,
		"/workflow/wf-2/job": `{"items":[
			{"id":"j2","job_number":2,"name":"unit","status":"success"},
			{"id":"j3","job_number":3,"name":"lint","status":"failed"}
		]}`,
	}))

	f := testFactory(t, server.URL)
	out, err := execute(t, f, "--pipeline-id", "p1")

	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out, "workflow_count=2")
	testutil.AssertContains(t, out, "job_count=3")
	testutil.AssertContains(t, out, "status_counts.success=2")
	testutil.AssertContains(t, out, "status_counts.failed=1")
}

func TestRootJobLookup(t *testing.T) {
	t.Parallel()

	server := testutil.MockAPIServer(t, testutil.RouteMap(map[string]string{
		"/project/gh/acme/widgets/job/123": `{"number":123,"name":"unit-tests","status":"failed"}`,
	}))

	f := testFactory(t, server.URL)
	out, err := execute(t, f, "--project-slug", "gh/acme/widgets", "--job-number", "123")

	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out, "job_name=unit-tests")
	testutil.AssertContains(t, out, "job_number=123")
}

func TestRootCredentialFailure(t *testing.T) {
	t.Parallel()

	f := testFactory(t, "http://127.0.0.1:1")

	_, err := execute(t, f, "--auth-smoke-test", "--token-name", "missing_token")

	testutil.AssertErrorIs(t, err, errors.ErrCredential)
	testutil.AssertEqual(t, errors.ExitCode(err), errors.ExitRuntime, "exit code")
}

func TestRootSelfTest(t *testing.T) {
	t.Parallel()

	f := testFactory(t, "http://127.0.0.1:1")
	out, err := execute(t, f, "selftest")

	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out, "pass missing file is rejected")
}
