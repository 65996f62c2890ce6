// Package telemetry holds the tracing and logging conventions shared by the
// services.
package telemetry

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentation = "corengine"

// Start opens a span for a service operation on an organization's data.
func Start(ctx context.Context, op, orgID string) (context.Context, trace.Span) {
	return otel.Tracer(instrumentation).Start(ctx, op,
		trace.WithAttributes(attribute.String("organization_id", orgID)))
}

// Finish records err on the span, if any, and ends it.
func Finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Op returns a logger carrying the standard operation fields.
func Op(log logrus.FieldLogger, module, op, orgID string) logrus.FieldLogger {
	return log.WithFields(logrus.Fields{
		"module":          module,
		"op":              op,
		"organization_id": orgID,
	})
}
