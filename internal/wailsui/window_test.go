package wailsui

import (
	"context"
	"errors"
	"testing"
)

// A window whose page never announced the runtime bridge must refuse a
// document snapshot immediately rather than wait for a reply that cannot
// arrive.
func TestHTMLWithoutBridgeFailsImmediately(t *testing.T) {
	w := &Window{}

	_, err := w.HTML(context.Background())
	if !errors.Is(err, errNoBridge) {
		t.Fatalf("expected errNoBridge, got %v", err)
	}
}

func TestDecodeHTMLReply(t *testing.T) {
	id, html, ok := decodeHTMLReply(map[string]any{"id": "abc", "html": "<p>hi</p>"})
	if !ok || id != "abc" || html != "<p>hi</p>" {
		t.Errorf("got id=%q html=%q ok=%v", id, html, ok)
	}

	if _, _, ok := decodeHTMLReply("not a map"); ok {
		t.Error("decoded a non-map payload")
	}
	if _, _, ok := decodeHTMLReply(map[string]any{"html": "<p>hi</p>"}); ok {
		t.Error("decoded a reply with no id")
	}
}
