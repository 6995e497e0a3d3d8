package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultRoot, cfg.Root)
	require.Len(t, cfg.Targets, 8)
	require.NoError(t, cfg.Validate())

	// Every built-in page sits under a resource group directory
	for _, target := range cfg.Targets {
		assert.Equal(t, 3, target.ImportDepth, "target %s", target.Path)
	}

	names := make([]string, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		names = append(names, target.Name)
	}
	assert.Equal(t, []string{
		"Services", "StatefulSets", "DaemonSets", "Jobs",
		"CronJobs", "Ingresses", "ConfigMaps", "Secrets",
	}, names)
}

func TestDepthFor(t *testing.T) {
	assert.Equal(t, 2, DepthFor("Nodes"), "Nodes.tsx sits one level higher")
	assert.Equal(t, 3, DepthFor("Jobs"))
	assert.Equal(t, 3, DepthFor("Services"))
}

func TestConfig_Validate(t *testing.T) {
	valid := Target{Path: "workloads/jobs/Jobs.tsx", Name: "Jobs", Var: "jobs", ImportDepth: 3}

	tests := []struct {
		name      string
		cfg       Config
		wantError string
	}{
		{
			name: "valid",
			cfg:  Config{Root: "frontend/src/pages", Targets: []Target{valid}},
		},
		{
			name:      "missing_root",
			cfg:       Config{Targets: []Target{valid}},
			wantError: "root is required",
		},
		{
			name:      "no_targets",
			cfg:       Config{Root: "frontend/src/pages"},
			wantError: "at least one target",
		},
		{
			name: "missing_name",
			cfg: Config{Root: "frontend/src/pages", Targets: []Target{
				{Path: "workloads/jobs/Jobs.tsx", Var: "jobs", ImportDepth: 3},
			}},
			wantError: "name is required",
		},
		{
			name: "missing_var",
			cfg: Config{Root: "frontend/src/pages", Targets: []Target{
				{Path: "workloads/jobs/Jobs.tsx", Name: "Jobs", ImportDepth: 3},
			}},
			wantError: "var is required",
		},
		{
			name: "negative_depth",
			cfg: Config{Root: "frontend/src/pages", Targets: []Target{
				{Path: "workloads/jobs/Jobs.tsx", Name: "Jobs", Var: "jobs", ImportDepth: -1},
			}},
			wantError: "import_depth must not be negative",
		},
		{
			name: "duplicate_path",
			cfg: Config{Root: "frontend/src/pages", Targets: []Target{
				valid,
				{Path: "workloads/jobs/Jobs.tsx", Name: "CronJobs", Var: "cronJobs", ImportDepth: 3},
			}},
			wantError: "duplicate path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	writeTemp := func(t *testing.T, name, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("yaml", func(t *testing.T) {
		path := writeTemp(t, "targets.yaml", `root: frontend/src/pages
targets:
  - path: workloads/jobs/Jobs.tsx
    name: Jobs
    var: jobs
  - path: nodes/Nodes.tsx
    name: Nodes
    var: nodes
`)

		cfg, err := Load(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, cfg.Targets, 2)
		assert.Equal(t, 3, cfg.Targets[0].ImportDepth, "depth filled from lookup")
		assert.Equal(t, 2, cfg.Targets[1].ImportDepth, "Nodes uses the shallower path")
	})

	t.Run("json", func(t *testing.T) {
		path := writeTemp(t, "targets.json", `{
  "root": "frontend/src/pages",
  "targets": [
    {"path": "config/secrets/Secrets.tsx", "name": "Secrets", "var": "secrets"}
  ]
}`)

		cfg, err := Load(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, cfg.Targets, 1)
		assert.Equal(t, "Secrets", cfg.Targets[0].Name)
		assert.Equal(t, 3, cfg.Targets[0].ImportDepth)
	})

	t.Run("hcl", func(t *testing.T) {
		path := writeTemp(t, "targets.hcl", `root = "frontend/src/pages"

target {
  path = "workloads/jobs/Jobs.tsx"
  name = "Jobs"
  var  = "jobs"
}

target {
  path         = "network/services/Services.tsx"
  name         = "Services"
  var          = "services"
  import_depth = 4
}
`)

		cfg, err := Load(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, cfg.Targets, 2)
		assert.Equal(t, 3, cfg.Targets[0].ImportDepth)
		assert.Equal(t, 4, cfg.Targets[1].ImportDepth, "explicit depth wins over the lookup")
	})

	t.Run("default_root_when_omitted", func(t *testing.T) {
		path := writeTemp(t, "targets.yaml", `targets:
  - path: workloads/jobs/Jobs.tsx
    name: Jobs
    var: jobs
`)

		cfg, err := Load(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, DefaultRoot, cfg.Root)
	})

	t.Run("unknown_field_rejected", func(t *testing.T) {
		path := writeTemp(t, "targets.json", `{"root": "x", "targets": [], "bogus": true}`)

		_, err := Load(context.Background(), path)
		require.Error(t, err)
	})

	t.Run("unsupported_extension", func(t *testing.T) {
		path := writeTemp(t, "targets.toml", `root = "x"`)

		_, err := Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no parser found")
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})
}
