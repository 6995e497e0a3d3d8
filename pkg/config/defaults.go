package config

// DefaultRoot is where the dashboard keeps its resource list pages.
const DefaultRoot = "frontend/src/pages"

// 🎯 Default returns the built-in target table. This mirrors the list of
// resource pages shipped without pagination; running the tool with no
// config file patches exactly these.
func Default() *Config {
	cfg := &Config{
		Root: DefaultRoot,
		Targets: []Target{
			{Path: "network/services/Services.tsx", Name: "Services", Var: "services"},
			{Path: "workloads/statefulsets/StatefulSets.tsx", Name: "StatefulSets", Var: "statefulSets"},
			{Path: "workloads/daemonsets/DaemonSets.tsx", Name: "DaemonSets", Var: "daemonSets"},
			{Path: "workloads/jobs/Jobs.tsx", Name: "Jobs", Var: "jobs"},
			{Path: "workloads/jobs/CronJobs.tsx", Name: "CronJobs", Var: "cronJobs"},
			{Path: "network/ingresses/Ingresses.tsx", Name: "Ingresses", Var: "ingresses"},
			{Path: "config/configmaps/ConfigMaps.tsx", Name: "ConfigMaps", Var: "configMaps"},
			{Path: "config/secrets/Secrets.tsx", Name: "Secrets", Var: "secrets"},
		},
	}
	cfg.normalize()
	return cfg
}
