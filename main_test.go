package main

import "testing"

func TestRangeIntFlag(t *testing.T) {
	f := rangeIntFlag{value: 1, min: 1, max: 20}

	if err := f.Set("7"); err != nil || f.value != 7 {
		t.Fatalf("Set(7) = %v, value %d", err, f.value)
	}
	for _, bad := range []string{"0", "21", "abc", "true"} {
		if err := f.Set(bad); err == nil {
			t.Errorf("Set(%q) should fail", bad)
		}
	}
	if f.value != 7 {
		t.Errorf("value changed by a rejected Set: %d", f.value)
	}
}

func TestSeedFlag(t *testing.T) {
	var s seedFlag
	if err := s.Set("12345"); err != nil || uint64(s) != 12345 {
		t.Fatalf("Set(12345) = %v, seed %d", err, s)
	}
	if err := s.Set("-1"); err == nil {
		t.Error("negative seeds should fail")
	}
}

func TestRun_RejectsInvalidOptions(t *testing.T) {
	cfg := config{mute: true}
	cfg.opts.StartLevel = 0
	if err := run(cfg); err == nil {
		t.Fatal("expected a validation error")
	}
}
