package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestTracingRecordsServerSpan(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	var sawSpan bool
	h := Tracing(provider)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawSpan = trace.SpanFromContext(r.Context()).SpanContext().IsValid()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/en/project", nil))

	if !sawSpan {
		t.Fatal("handler context did not carry a span")
	}
	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	span := spans[0]
	if span.SpanKind() != trace.SpanKindServer {
		t.Fatalf("span kind = %v, want %v", span.SpanKind(), trace.SpanKindServer)
	}
	if span.Status().Code != codes.Error {
		t.Fatalf("span status = %v, want %v", span.Status().Code, codes.Error)
	}
	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	if got := attrs["url.path"].AsString(); got != "/en/project" {
		t.Fatalf("url.path = %q, want %q", got, "/en/project")
	}
	if got := attrs["http.response.status_code"].AsInt64(); got != http.StatusInternalServerError {
		t.Fatalf("http.response.status_code = %d, want %d", got, http.StatusInternalServerError)
	}
}
