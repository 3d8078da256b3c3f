package storage

import (
	"strings"
	"testing"
)

func TestNewUploaderValidation(t *testing.T) {
	base := Config{
		Region:        "ap-northeast-2",
		AccessKey:     "access",
		SecretKey:     "secret",
		Bucket:        "bucket",
		PublicBaseURL: "https://cdn.example.com",
	}

	if _, err := NewUploader(base); err != nil {
		t.Fatalf("NewUploader with full config: %v", err)
	}

	for _, tc := range []struct {
		name string
		mod  func(*Config)
	}{
		{"missing bucket", func(c *Config) { c.Bucket = "" }},
		{"missing region", func(c *Config) { c.Region = "" }},
		{"missing credentials", func(c *Config) { c.SecretKey = "" }},
		{"missing public url", func(c *Config) { c.PublicBaseURL = "" }},
	} {
		cfg := base
		tc.mod(&cfg)
		if _, err := NewUploader(cfg); err == nil {
			t.Errorf("%s: NewUploader succeeded", tc.name)
		}
	}
}

func TestGenerateKey(t *testing.T) {
	u := &Uploader{cfg: Config{Prefix: "homework"}}

	key := u.generateKey("essay.PDF")
	if !strings.HasPrefix(key, "homework/") {
		t.Fatalf("key %q missing prefix", key)
	}
	if !strings.HasSuffix(key, ".pdf") {
		t.Fatalf("key %q did not keep lowercased extension", key)
	}

	if !strings.HasSuffix(u.generateKey("noext"), ".bin") {
		t.Fatal("extensionless filename did not fall back to .bin")
	}

	if u.generateKey("a.txt") == u.generateKey("a.txt") {
		t.Fatal("two keys for the same filename collided")
	}
}

func TestContentTypeFromFilename(t *testing.T) {
	cases := map[string]string{
		"photo.PNG":  "image/png",
		"scan.jpeg":  "image/jpeg",
		"essay.pdf":  "application/pdf",
		"notes.txt":  "text/plain",
		"archive.7z": "application/octet-stream",
	}
	for filename, want := range cases {
		if got := contentTypeFromFilename(filename); got != want {
			t.Errorf("contentTypeFromFilename(%q) = %q, want %q", filename, got, want)
		}
	}
}
