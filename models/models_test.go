package models

import (
	"errors"
	"testing"
)

func TestGenerationResult_Exclusive(t *testing.T) {
	ok := Succeeded("menu plan")
	if !ok.OK() || ok.Err != nil || ok.Text != "menu plan" {
		t.Errorf("unexpected success result: %+v", ok)
	}

	timeout := errors.New("timeout")
	failed := Failed(timeout)
	if failed.OK() || failed.Text != "" || !errors.Is(failed.Err, timeout) {
		t.Errorf("unexpected failed result: %+v", failed)
	}
}

func TestFailed_NilErrorStillFails(t *testing.T) {
	if Failed(nil).OK() {
		t.Error("expected Failed(nil) to be a failure")
	}
}

func TestNewChallengeRequest_Trims(t *testing.T) {
	req := NewChallengeRequest(" peak-hours ", "\tLunch Rush  ", "  two cooks only\n")

	if req.Theme != "peak-hours" || req.Category != "Lunch Rush" || req.Text != "two cooks only" {
		t.Errorf("expected trimmed request, got %+v", req)
	}
	if req.Stringify() != "Theme: peak-hours, Category: Lunch Rush, Text: two cooks only" {
		t.Errorf("unexpected Stringify output %q", req.Stringify())
	}
}
