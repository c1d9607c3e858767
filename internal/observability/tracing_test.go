package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitTracing(t *testing.T) {
	prevTracer := Tracer
	prevProvider := otel.GetTracerProvider()
	t.Cleanup(func() {
		Tracer = prevTracer
		otel.SetTracerProvider(prevProvider)
	})

	tests := []struct {
		name      string
		cfg       TracingConfig
		wantValid bool
	}{
		{
			name: "disabled",
			cfg:  TracingConfig{ServiceName: "dwitter-api", Enabled: false},
		},
		{
			name: "stdout exporter",
			cfg: TracingConfig{
				ServiceName:    "dwitter-api",
				ServiceVersion: "test",
				Environment:    "test",
				Enabled:        true,
				Exporter:       "stdout",
				SamplerRatio:   1.0,
			},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shutdown, err := InitTracing(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, shutdown)

			_, span := StartSpan(context.Background(), "dweet.delete")
			if tt.wantValid {
				assert.True(t, span.SpanContext().IsValid())
			}
			EndSpan(span, errors.New("boom"))

			assert.NoError(t, shutdown(context.Background()))
		})
	}
}
