package resolver

import (
	"errors"
	"testing"

	"github.com/dshills/ursa/internal/bear"
	"github.com/dshills/ursa/internal/config"
	"github.com/dshills/ursa/internal/output"
)

// scriptedInteractor answers from a fixed map and records every request.
type scriptedInteractor struct {
	answers  map[string]string
	requests []output.SettingRequest
	err      error
}

func (s *scriptedInteractor) AcquireSettings(requests []output.SettingRequest) (map[string]string, error) {
	s.requests = append(s.requests, requests...)
	if s.err != nil {
		return nil, s.err
	}
	answers := make(map[string]string)
	for _, req := range requests {
		if value, ok := s.answers[req.Key]; ok {
			answers[req.Key] = value
		}
	}
	return answers, nil
}

func (s *scriptedInteractor) Close() error { return nil }

func requireBear(name string, kind bear.Kind, reqs ...bear.Requirement) bear.Descriptor {
	return bear.Descriptor{Name: name, Kind: kind, Requirements: reqs}
}

func TestFillSectionStoresAnswers(t *testing.T) {
	section := config.NewSection("mysection")
	section.Set("files", "*.go")

	bears := []bear.Descriptor{
		requireBear("StyleBear", bear.KindLocal,
			bear.Requirement{Name: "language", Description: "Language to check."},
			bear.Requirement{Name: "files"}, // already present, never asked
		),
		requireBear("RunBear", bear.KindGlobal,
			bear.Requirement{Name: "language"}, // duplicate need, asked once
			bear.Requirement{Name: "timeout"},
		),
	}

	in := &scriptedInteractor{answers: map[string]string{
		"language": "go",
		"timeout":  "30",
	}}

	if err := fillSection(section, bears, in); err != nil {
		t.Fatalf("fillSection() error = %v", err)
	}

	if len(in.requests) != 2 {
		t.Fatalf("requests = %+v, want 2", in.requests)
	}
	// Bear discovery order, then requirement declaration order.
	if in.requests[0].Key != "language" || in.requests[1].Key != "timeout" {
		t.Errorf("request order = %q, %q", in.requests[0].Key, in.requests[1].Key)
	}
	if len(in.requests[0].Bears) != 2 {
		t.Errorf("language requesters = %v, want both bears", in.requests[0].Bears)
	}
	if in.requests[0].Help != "Language to check." {
		t.Errorf("Help = %q", in.requests[0].Help)
	}

	got, ok := section.GetLocal("language")
	if !ok || got.Value() != "go" {
		t.Errorf("language = %v, %v", got, ok)
	}
	if got.Origin != config.OriginExplicit {
		t.Errorf("filled setting origin = %v, want OriginExplicit", got.Origin)
	}
	if got, ok := section.GetLocal("timeout"); !ok || got.Value() != "30" {
		t.Errorf("timeout = %v, %v", got, ok)
	}
}

func TestFillSectionHonorsDefaultsFallback(t *testing.T) {
	def := config.NewSection("default")
	def.Set("language", "go")

	section := config.NewSection("mysection")
	if err := section.SetDefaults(def); err != nil {
		t.Fatalf("SetDefaults() error = %v", err)
	}

	in := &scriptedInteractor{answers: map[string]string{"language": "lua"}}
	bears := []bear.Descriptor{
		requireBear("StyleBear", bear.KindLocal, bear.Requirement{Name: "language"}),
	}

	if err := fillSection(section, bears, in); err != nil {
		t.Fatalf("fillSection() error = %v", err)
	}
	if len(in.requests) != 0 {
		t.Errorf("requests = %+v, want none for a defaults-covered setting", in.requests)
	}
}

func TestFillSectionUnansweredStaysAbsent(t *testing.T) {
	section := config.NewSection("mysection")
	bears := []bear.Descriptor{
		requireBear("StyleBear", bear.KindLocal, bear.Requirement{Name: "language"}),
	}

	if err := fillSection(section, bears, output.NewNullInteractor()); err != nil {
		t.Fatalf("fillSection() error = %v", err)
	}
	if _, ok := section.GetLocal("language"); ok {
		t.Error("unanswered setting was stored")
	}
}

func TestFillSectionTransportError(t *testing.T) {
	section := config.NewSection("mysection")
	wantErr := errors.New("terminal gone")
	in := &scriptedInteractor{err: wantErr}
	bears := []bear.Descriptor{
		requireBear("StyleBear", bear.KindLocal, bear.Requirement{Name: "language"}),
	}

	if err := fillSection(section, bears, in); !errors.Is(err, wantErr) {
		t.Errorf("fillSection() error = %v, want %v", err, wantErr)
	}
}

func TestFillSectionNoBears(t *testing.T) {
	section := config.NewSection("mysection")
	in := &scriptedInteractor{}

	if err := fillSection(section, nil, in); err != nil {
		t.Fatalf("fillSection() error = %v", err)
	}
	if len(in.requests) != 0 {
		t.Errorf("requests = %+v, want none", in.requests)
	}
}
