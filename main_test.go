package main

import (
	"errors"
	"strings"
	"testing"

	"tagaro/audio"
	"tagaro/scene"
)

func TestOpenSceneDefault(t *testing.T) {
	t.Setenv("TAGARO_BACKEND", "")
	s, err := openScene("")
	if err != nil {
		t.Fatal(err)
	}
	if scene.DefaultBackend == scene.NullName && s.Name() != scene.NullName {
		t.Errorf("Name() = %q, want %q", s.Name(), scene.NullName)
	}
}

func TestOpenSceneEnv(t *testing.T) {
	t.Setenv("TAGARO_BACKEND", "missing")
	if _, err := openScene(""); !errors.Is(err, scene.ErrUnknownBackend) {
		t.Errorf("err = %v, want ErrUnknownBackend", err)
	}
}

func TestOpenSceneFlagWins(t *testing.T) {
	t.Setenv("TAGARO_BACKEND", "missing")
	s, err := openScene(scene.NullName)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name() != scene.NullName {
		t.Errorf("Name() = %q", s.Name())
	}
}

func TestSummaryReportsDevice(t *testing.T) {
	s := scene.NewNull(scene.WithWarner(func(string, string) {}))
	s.SetVolume(0.2)

	got := summary(s, 4, &audio.DeviceInfo{ID: "3", Name: "USB DAC"})
	want := `backend=null frames=4 device="USB DAC" listener=(0, 0) volume=1`
	if got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}

	if got := summary(s, 0, nil); !strings.Contains(got, `device="system default"`) {
		t.Errorf("summary = %q", got)
	}
}
