package natsutil

import (
	"testing"

	"github.com/nats-io/nats.go"
)

func TestHeaderCarrier_SetGet(t *testing.T) {
	msg := &nats.Msg{Subject: "test"}
	c := (*headerCarrier)(msg)

	if got := c.Get("traceparent"); got != "" {
		t.Errorf("empty carrier: got %q", got)
	}

	c.Set("traceparent", "00-abc-def-01")
	if got := c.Get("traceparent"); got != "00-abc-def-01" {
		t.Errorf("got %q", got)
	}
	// The underlying message sees the header too.
	if got := msg.Header.Get("traceparent"); got != "00-abc-def-01" {
		t.Errorf("msg header: got %q", got)
	}
}

func TestHeaderCarrier_Keys(t *testing.T) {
	msg := &nats.Msg{}
	c := (*headerCarrier)(msg)

	if keys := c.Keys(); keys != nil {
		t.Errorf("nil header: got %v", keys)
	}

	c.Set("a", "1")
	c.Set("b", "2")
	keys := c.Keys()
	if len(keys) != 2 {
		t.Errorf("got %v", keys)
	}
}
