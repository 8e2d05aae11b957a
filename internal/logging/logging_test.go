package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestSinkReceivesEveryLevel(t *testing.T) {
	var sink bytes.Buffer
	log := Logger{Sink: &sink} // not verbose: terminal output suppressed, sink still fed

	log.Infof("loaded %d wallets", 2)
	log.Debugf("probe took %dms", 41)
	log.Warnf("could not save")
	log.WarnfUser("no encryption key available")

	out := sink.String()
	for _, want := range []string{
		"[info] loaded 2 wallets\n",
		"[debug] probe took 41ms\n",
		"[warn] could not save\n",
		"! no encryption key available\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Sink missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("Sink output must not contain color escapes")
	}
}

func TestErrorfAndReturn(t *testing.T) {
	var sink bytes.Buffer
	log := Logger{Sink: &sink}

	err := log.ErrorfAndReturn("probe of %s failed", "https://rpc.example.com")
	if err == nil || err.Error() != "probe of https://rpc.example.com failed" {
		t.Errorf("ErrorfAndReturn = %v", err)
	}
	if !strings.Contains(sink.String(), "[error] probe of https://rpc.example.com failed\n") {
		t.Errorf("Sink missing error line, got %q", sink.String())
	}
}

func TestNilSinkIsSafe(t *testing.T) {
	log := Logger{}
	log.Infof("no sink")
	log.Warnf("no sink")
}
