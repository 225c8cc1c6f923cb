package config

import (
	"path/filepath"
	"testing"
)

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("MEMTALK_TEST_TOKEN", "sk-test-value")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain value", input: "sk-literal", want: "sk-literal"},
		{name: "dollar syntax", input: "$MEMTALK_TEST_TOKEN", want: "sk-test-value"},
		{name: "braced syntax", input: "${MEMTALK_TEST_TOKEN}", want: "sk-test-value"},
		{name: "unset variable", input: "$MEMTALK_TEST_UNSET", want: ""},
		{name: "empty value", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandEnvVar(tt.input)
			if err != nil {
				t.Fatalf("expandEnvVar(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("expandEnvVar(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolvePathAbsolute(t *testing.T) {
	abs := filepath.Join(string(filepath.Separator), "tmp", "profile.txt")
	got, err := ResolvePath(abs)
	if err != nil {
		t.Fatalf("ResolvePath(%q) error = %v", abs, err)
	}
	if got != abs {
		t.Errorf("ResolvePath(%q) = %q, want unchanged", abs, got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "complete config", mutate: func(c *Config) { c.Token = "sk-test" }, wantErr: false},
		{name: "missing token", mutate: func(c *Config) { c.Token = "" }, wantErr: true},
		{name: "missing base url", mutate: func(c *Config) { c.Token = "sk-test"; c.BaseURL = "" }, wantErr: true},
		{name: "missing model", mutate: func(c *Config) { c.Token = "sk-test"; c.Model = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
