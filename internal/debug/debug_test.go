package debug

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestVerboseToggle(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(true)
	if !Enabled() {
		t.Error("Enabled() should be true after SetVerbose(true)")
	}
	SetVerbose(false)
	if Enabled() != (os.Getenv("RECIPECTL_DEBUG") != "") {
		t.Error("Enabled() should follow env var when verbose is off")
	}
}

func TestQuietToggle(t *testing.T) {
	defer SetQuiet(false)

	SetQuiet(true)
	if !IsQuiet() {
		t.Error("IsQuiet() should be true after SetQuiet(true)")
	}
	SetQuiet(false)
	if IsQuiet() {
		t.Error("IsQuiet() should be false after SetQuiet(false)")
	}
}

func TestLogfRespectsVerbose(t *testing.T) {
	defer SetVerbose(false)

	capture := func(fn func()) string {
		old := os.Stderr
		r, w, err := os.Pipe()
		if err != nil {
			t.Fatal(err)
		}
		os.Stderr = w
		fn()
		_ = w.Close()
		os.Stderr = old
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		return buf.String()
	}

	SetVerbose(true)
	out := capture(func() { Logf("patching %s\n", "index.html") })
	if !strings.Contains(out, "patching index.html") {
		t.Errorf("verbose Logf produced %q", out)
	}

	if os.Getenv("RECIPECTL_DEBUG") == "" {
		SetVerbose(false)
		out = capture(func() { Logf("should not appear\n") })
		if out != "" {
			t.Errorf("non-verbose Logf produced %q", out)
		}
	}
}

func TestPrintNormalRespectsQuiet(t *testing.T) {
	defer SetQuiet(false)

	capture := func(fn func()) string {
		old := os.Stdout
		r, w, err := os.Pipe()
		if err != nil {
			t.Fatal(err)
		}
		os.Stdout = w
		fn()
		_ = w.Close()
		os.Stdout = old
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		return buf.String()
	}

	SetQuiet(true)
	if out := capture(func() { PrintNormal("hidden\n") }); out != "" {
		t.Errorf("quiet PrintNormal produced %q", out)
	}

	SetQuiet(false)
	if out := capture(func() { PrintNormal("shown\n") }); !strings.Contains(out, "shown") {
		t.Errorf("PrintNormal produced %q", out)
	}
}
