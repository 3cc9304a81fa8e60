package main

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestRunList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-list"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	lines := strings.Fields(stdout.String())
	if len(lines) != 9 || lines[0] != "lowpass" || lines[8] != "highshelf" {
		t.Fatalf("unexpected list output: %q", stdout.String())
	}
}

func TestRunDescribe(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"-type", "peak", "-freq", "1000", "-gain", "6", "-q", "0.7", "-points", "5", "-normalize"}
	if code := run(args, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"peak", "designed:", "running:", "Freq [Hz]", "Measured [dB]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunUnstableRecursion(t *testing.T) {
	// Without normalization these raw recursions have a pole outside the
	// unit circle, but stay finite over the whole FFT length.
	tests := []struct {
		name   string
		args   []string
		radius string
	}{
		{"default peak", []string{"-type", "peak", "-freq", "1000", "-q", "0.707"}, "radius=1.162044"},
		{"narrow lowpass", []string{"-type", "lowpass", "-freq", "100", "-q", "0.0418"}, "radius=1.010025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 0 {
				t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
			}
			out := stdout.String()
			if !strings.Contains(out, "warning: the running recursion is unstable") {
				t.Fatalf("expected warning:\n%s", out)
			}
			if !strings.Contains(out, tt.radius) {
				t.Fatalf("expected %q:\n%s", tt.radius, out)
			}
		})
	}
}

func TestRunStableRecursionHasNoWarning(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-type", "lowpass", "-freq", "100", "-q", "0.0418", "-normalize"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	if out := stdout.String(); strings.Contains(out, "unstable") {
		t.Fatalf("unexpected warning:\n%s", out)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown type", []string{"-type", "bandstop"}, "unknown filter type"},
		{"over nyquist", []string{"-freq", "30000"}, "nyquist"},
		{"negative q", []string{"-q", "-1"}, "q is lower than zero"},
		{"bad fft", []string{"-fft", "1000"}, "power of two"},
		{"few points", []string{"-points", "1"}, "points"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 1 {
				t.Fatalf("exit code %d, want 1", code)
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Fatalf("stderr %q does not mention %q", stderr.String(), tt.want)
			}
		})
	}
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-nope"}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit code %d, want 2", code)
	}
}

func TestLogSpaced(t *testing.T) {
	got := logSpaced(10, 1000, 3)
	want := []float64{10, 100, 1000}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("logSpaced = %v, want %v", got, want)
		}
	}
}
