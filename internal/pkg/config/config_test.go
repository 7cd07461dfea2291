package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("flyworld-test")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Flight.PathSteps != 150 {
		t.Errorf("expected 150 path steps, got %d", cfg.Flight.PathSteps)
	}
	if cfg.Flight.AnimationDelay().Milliseconds() != 40 {
		t.Errorf("expected 40ms delay, got %s", cfg.Flight.AnimationDelay())
	}
	if cfg.Telemetry.ServiceName != "flyworld-test" {
		t.Errorf("expected service name default, got %q", cfg.Telemetry.ServiceName)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FLYWORLD_DATABASE_HOST", "db.internal")
	t.Setenv("FLYWORLD_PROVIDERS_GEOAPIFY_KEY", "secret")

	cfg, err := Load("api")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("expected env host, got %q", cfg.Database.Host)
	}
	if cfg.Providers.GeoapifyKey != "secret" {
		t.Errorf("expected env key, got %q", cfg.Providers.GeoapifyKey)
	}
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"server.port", "database.host", "nats.url", "providers.user_agent", "flight.path_steps"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{User: "u", Password: "p", Host: "h", Port: 5432, DBName: "db", SSLMode: "disable"}
	if got := d.DSN(); got != "postgres://u:p@h:5432/db?sslmode=disable" {
		t.Errorf("unexpected DSN %q", got)
	}
}
