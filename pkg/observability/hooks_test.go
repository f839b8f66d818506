package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	b := NoopBuildHooks{}
	b.OnRender(ctx, "svg", 4096, time.Millisecond, nil)
	b.OnRender(ctx, "png", 0, time.Millisecond, errors.New("boom"))
	b.OnEmbed(ctx, "raw_styles.css", 1, nil)

	h := NoopHTTPHooks{}
	h.OnResponse(ctx, "GET", "/board.svg", 200, 4096, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Build().(NoopBuildHooks); !ok {
		t.Error("Build() should return NoopBuildHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customBuild := &testBuildHooks{}
	SetBuildHooks(customBuild)
	if Build() != customBuild {
		t.Error("SetBuildHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Build().(NoopBuildHooks); !ok {
		t.Error("Reset() should restore NoopBuildHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &testBuildHooks{}
	SetBuildHooks(custom)
	SetBuildHooks(nil)
	if Build() != custom {
		t.Error("SetBuildHooks(nil) should be ignored")
	}

	SetHTTPHooks(nil)
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("SetHTTPHooks(nil) should be ignored")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	rec := &testBuildHooks{}
	SetBuildHooks(rec)

	Build().OnRender(context.Background(), "svg", 10, time.Millisecond, nil)
	Build().OnRender(context.Background(), "png", 20, time.Millisecond, nil)

	if len(rec.formats) != 2 || rec.formats[0] != "svg" || rec.formats[1] != "png" {
		t.Errorf("recorded formats = %v, want [svg png]", rec.formats)
	}
}

type testBuildHooks struct {
	NoopBuildHooks
	formats []string
}

func (h *testBuildHooks) OnRender(_ context.Context, format string, _ int, _ time.Duration, _ error) {
	h.formats = append(h.formats, format)
}

type testHTTPHooks struct {
	NoopHTTPHooks
	n int // keeps the type non-zero-sized so pointers compare by identity
}
