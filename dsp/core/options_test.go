package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions()
	if cfg != DefaultProcessorConfig() {
		t.Fatalf("defaults = %+v", cfg)
	}

	cfg = ApplyProcessorOptions(WithSampleRate(44100), WithBlockSize(256), nil)
	if cfg.SampleRate != 44100 || cfg.BlockSize != 256 {
		t.Fatalf("options not applied: %+v", cfg)
	}

	cfg = ApplyProcessorOptions(WithSampleRate(-1), WithBlockSize(0))
	if cfg != DefaultProcessorConfig() {
		t.Fatalf("invalid options should be ignored: %+v", cfg)
	}
}

func TestProcessorConfigValidate(t *testing.T) {
	if err := DefaultProcessorConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if err := (ProcessorConfig{SampleRate: 0, BlockSize: 1}).Validate(); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if err := (ProcessorConfig{SampleRate: 1, BlockSize: 0}).Validate(); err == nil {
		t.Fatal("expected error for zero block size")
	}
}
