package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/arenacontrol/internal/platform/otel"
)

func TestEnvActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  otel.Env
		want bool
	}{
		{name: "empty endpoint", env: otel.Env{}, want: false},
		{name: "endpoint set", env: otel.Env{Endpoint: "http://localhost:4318"}, want: true},
		{name: "explicitly disabled", env: otel.Env{Endpoint: "http://localhost:4318", Enabled: "FALSE"}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.env.Active(); got != tc.want {
				t.Fatalf("Active() = %t, want %t", got, tc.want)
			}
		})
	}
}

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("ARENA_CONTROL_OTEL_ENDPOINT", "")
	t.Setenv("ARENA_CONTROL_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "console-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupWithEnvCreatesProvider(t *testing.T) {
	// Non-routable address: nothing is exported before shutdown.
	shutdown, err := otel.SetupWithEnv(context.Background(), "console-test", otel.Env{Endpoint: "http://192.0.2.1:4318"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
