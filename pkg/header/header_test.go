package header

import (
	"testing"

	"github.com/google/uuid"
)

func TestKindIsValid(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want bool
	}{
		{"image feed", KindImageFeed, true},
		{"product list", KindProductList, true},
		{"match report", KindMatchReport, true},
		{"unknown", Kind("Snapshot"), false},
		{"empty", Kind(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestNewWithOptions(t *testing.T) {
	h := New(
		WithKind(KindImageFeed),
		WithAPIVersion("feed.pimtools.io/v1"),
		WithMetadata("cid", "4928"),
	)

	if h.Kind != KindImageFeed {
		t.Errorf("Kind = %q, want %q", h.Kind, KindImageFeed)
	}
	if h.APIVersion != "feed.pimtools.io/v1" {
		t.Errorf("APIVersion = %q", h.APIVersion)
	}
	if h.Metadata["cid"] != "4928" {
		t.Errorf("Metadata[cid] = %q, want 4928", h.Metadata["cid"])
	}
}

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindImageFeed, "feed.pimtools.io/v1", "v1.2.3")

	if h.Metadata["timestamp"] == "" {
		t.Error("expected timestamp metadata")
	}
	if h.Metadata["version"] != "v1.2.3" {
		t.Errorf("version = %q, want v1.2.3", h.Metadata["version"])
	}
	if _, err := uuid.Parse(h.Metadata["run-id"]); err != nil {
		t.Errorf("run-id is not a valid uuid: %v", err)
	}
}
