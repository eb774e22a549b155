package store

import "testing"

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("BRAINFORGE_MONGO_URI", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("BRAINFORGE_MONGO_DB", "")

	cfg := ConfigFromEnv()
	if cfg.URI != "mongodb://localhost:27017" {
		t.Errorf("uri = %q", cfg.URI)
	}
	if cfg.Database != "brainforge" {
		t.Errorf("database = %q", cfg.Database)
	}
}

func TestConfigFromEnvPrefixedVarWins(t *testing.T) {
	t.Setenv("BRAINFORGE_MONGO_URI", "mongodb://primary:27017")
	t.Setenv("MONGO_URI", "mongodb://fallback:27017")
	t.Setenv("BRAINFORGE_MONGO_DB", "other")

	cfg := ConfigFromEnv()
	if cfg.URI != "mongodb://primary:27017" {
		t.Errorf("uri = %q, prefixed var should win", cfg.URI)
	}
	if cfg.Database != "other" {
		t.Errorf("database = %q", cfg.Database)
	}
}

func TestConfigFromEnvFallbackVar(t *testing.T) {
	t.Setenv("BRAINFORGE_MONGO_URI", "")
	t.Setenv("MONGO_URI", "mongodb://fallback:27017")

	cfg := ConfigFromEnv()
	if cfg.URI != "mongodb://fallback:27017" {
		t.Errorf("uri = %q", cfg.URI)
	}
}
