package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWritePromptPDFLatin(t *testing.T) {
	out := filepath.Join(t.TempDir(), "prompt.pdf")
	prompt := "# Role\nYou are a guideline research assistant.\n\n## Rules\n1. Cite primary sources only."

	if err := writePromptPDF(prompt, out, ""); err != nil {
		t.Fatalf("write: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("pdf missing: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("pdf is empty")
	}
}

func TestWritePromptPDFNeedsFontForJapanese(t *testing.T) {
	out := filepath.Join(t.TempDir(), "prompt.pdf")
	err := writePromptPDF("# Role\n医療AIガイドライン", out, "")
	if !errors.Is(err, ErrNoPDFFont) {
		t.Errorf("err = %v, want ErrNoPDFFont", err)
	}
	if _, serr := os.Stat(out); serr == nil {
		t.Errorf("pdf written despite missing font")
	}
}

func TestWritePromptPDFMissingFontFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "prompt.pdf")
	if err := writePromptPDF("x", out, filepath.Join(t.TempDir(), "nope.ttf")); err == nil {
		t.Errorf("missing font file accepted")
	}
}

func TestIsLatin(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"plain ascii", true},
		{"naïve café", true},
		{"医療AI", false},
		{"", true},
	}
	for _, tt := range tests {
		if got := isLatin(tt.in); got != tt.want {
			t.Errorf("isLatin(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\nMEDPROMPT_TEST_A=plain\nMEDPROMPT_TEST_B=\"quoted value\"\nOTHER_TOOL_VAR=leaked\nmalformed line\n=nokey\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("MEDPROMPT_TEST_A", "")
	t.Setenv("MEDPROMPT_TEST_B", "")
	t.Setenv("OTHER_TOOL_VAR", "")

	if err := LoadEnvFiles(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := os.Getenv("MEDPROMPT_TEST_A"); got != "plain" {
		t.Errorf("MEDPROMPT_TEST_A = %q", got)
	}
	if got := os.Getenv("MEDPROMPT_TEST_B"); got != "quoted value" {
		t.Errorf("MEDPROMPT_TEST_B = %q", got)
	}
	if got := os.Getenv("OTHER_TOOL_VAR"); got != "" {
		t.Errorf("key outside the prefix applied: %q", got)
	}
}
