package rip

import (
	"bytes"
	"log"
	"testing"
)

func newTestLogger(debug bool) (*DefaultLogger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	l := &DefaultLogger{
		debug: debug,
		out:   log.New(&out, "", 0),
		err:   log.New(&errOut, "", 0),
	}
	return l, &out, &errOut
}

func TestDefaultLogger_DebugfRespectsDebugFlag(t *testing.T) {
	l, out, _ := newTestLogger(false)
	l.Debugf("hidden %d", 1)
	if out.Len() != 0 {
		t.Errorf("Debugf wrote output while debug disabled: %q", out.String())
	}

	l.SetDebug(true)
	l.Debugf("shown %d", 2)
	if out.Len() == 0 {
		t.Error("Debugf wrote nothing after SetDebug(true)")
	}
}

func TestDefaultLogger_InfoAndWarnGoToSeparateStreams(t *testing.T) {
	l, out, errOut := newTestLogger(false)
	l.Infof("hello")
	l.Warnf("careful")
	l.Errorf("broken")

	if out.Len() == 0 {
		t.Error("Infof should write to the out stream")
	}
	if errOut.Len() == 0 {
		t.Error("Warnf/Errorf should write to the err stream")
	}
}

func TestDefaultLogger_PrefixIsApplied(t *testing.T) {
	l, out, _ := newTestLogger(false)
	l.prefix = "rip"
	l.Infof("hello")
	if got := out.String(); !bytes.Contains([]byte(got), []byte("[rip]")) {
		t.Errorf("Infof output %q missing prefix", got)
	}
}

func TestNopLogger_DiscardsEverything(t *testing.T) {
	l := NewNopLogger()
	if l.DebugEnabled() {
		t.Error("nopLogger should never have debug enabled")
	}
	l.SetDebug(true)
	if l.DebugEnabled() {
		t.Error("nopLogger.SetDebug must be a no-op")
	}
	l.Debugf("x")
	l.Infof("x")
	l.Warnf("x")
	l.Errorf("x")
}
