package observability

import (
	"testing"
	"time"
)

type countingStream struct {
	NoopStreamHooks
	frames int
}

func (c *countingStream) OnFrame(int, int, int, int) { c.frames++ }

func TestRegistry(t *testing.T) {
	t.Cleanup(Reset)

	if _, ok := Stream().(NoopStreamHooks); !ok {
		t.Fatalf("default stream hooks = %T, want NoopStreamHooks", Stream())
	}

	h := &countingStream{}
	SetStreamHooks(h)
	Stream().OnFrame(1, 2, 3, 4)
	Stream().OnEvict(1, 1, time.Millisecond)
	if h.frames != 1 {
		t.Errorf("frames = %d, want 1", h.frames)
	}

	SetStreamHooks(nil)
	if Stream() != StreamHooks(h) {
		t.Error("SetStreamHooks(nil) should keep the registered hooks")
	}

	Reset()
	if _, ok := Stream().(NoopStreamHooks); !ok {
		t.Errorf("after Reset stream hooks = %T, want NoopStreamHooks", Stream())
	}
	if _, ok := Generator().(NoopGeneratorHooks); !ok {
		t.Errorf("after Reset generator hooks = %T", Generator())
	}
	if _, ok := Index().(NoopIndexHooks); !ok {
		t.Errorf("after Reset index hooks = %T", Index())
	}
}
