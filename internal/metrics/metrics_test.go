package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordSendAccepted()
	c.RecordSendAccepted()
	c.RecordSendRejected()
	c.RecordChatReply()
	c.RecordChatFallback()
	c.RecordAuthSuccess("guest")
	c.RecordAuthFailure("register")

	if got := testutil.ToFloat64(c.sendAccepted); got != 2 {
		t.Errorf("sendAccepted = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.sendRejected); got != 1 {
		t.Errorf("sendRejected = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.chatReplies); got != 1 {
		t.Errorf("chatReplies = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.chatFallback); got != 1 {
		t.Errorf("chatFallback = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.authSuccess.WithLabelValues("guest")); got != 1 {
		t.Errorf("authSuccess{guest} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.authFailure.WithLabelValues("register")); got != 1 {
		t.Errorf("authFailure{register} = %v, want 1", got)
	}
}
