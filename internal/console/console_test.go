package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestStatusLines(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	var buf bytes.Buffer
	Section(&buf, "Vulkan SDK")
	OK(&buf, "found at %s", "/opt/vulkan")
	Warn(&buf, "debug libraries missing")
	Skip(&buf, "not requested")

	want := "Vulkan SDK:\n" +
		"  [ OK ] found at /opt/vulkan\n" +
		"  [WARN] debug libraries missing\n" +
		"  [SKIP] not requested\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestErrorPrefix(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	if got := Error("boom"); !strings.HasSuffix(got, "error: boom") {
		t.Errorf("Error() = %q, want suffix %q", got, "error: boom")
	}
}

func TestEveryTagHasHelper(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	helpers := map[Tag]func(w *bytes.Buffer){
		TagOK:   func(w *bytes.Buffer) { OK(w, "x") },
		TagWarn: func(w *bytes.Buffer) { Warn(w, "x") },
		TagFail: func(w *bytes.Buffer) { Fail(w, "x") },
		TagMiss: func(w *bytes.Buffer) { Miss(w, "x") },
		TagSkip: func(w *bytes.Buffer) { Skip(w, "x") },
		TagInfo: func(w *bytes.Buffer) { Info(w, "x") },
	}
	for tag, emit := range helpers {
		var buf bytes.Buffer
		emit(&buf)
		if got, want := buf.String(), "  "+string(tag)+" x\n"; got != want {
			t.Errorf("%s helper wrote %q, want %q", tag, got, want)
		}
		if len(tag) != len(TagOK) {
			t.Errorf("tag %q width = %d, want %d", tag, len(tag), len(TagOK))
		}
	}
}
