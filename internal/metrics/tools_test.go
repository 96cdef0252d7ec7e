package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveToolCall(t *testing.T) {
	before := testutil.ToFloat64(ToolCallsTotal.WithLabelValues("get_document", OutcomeNotFound))

	ObserveToolCall("get_document", OutcomeNotFound, 3*time.Millisecond)

	after := testutil.ToFloat64(ToolCallsTotal.WithLabelValues("get_document", OutcomeNotFound))
	if after-before != 1 {
		t.Errorf("tool_calls_total delta = %f, want 1", after-before)
	}
	if testutil.CollectAndCount(ToolCallDuration) == 0 {
		t.Error("expected tool_call_duration_seconds to have observations")
	}
}

func TestRegisterToolMetrics_Idempotent(t *testing.T) {
	RegisterToolMetrics()
	RegisterToolMetrics()
}
