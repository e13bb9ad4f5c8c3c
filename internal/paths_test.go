package internal

import "testing"

func TestDirBasename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/foo/bar/project", want: "project"},
		{path: "/single", want: "single"},
		{path: "relative/path", want: "path"},
		{path: "", want: "?"},
		{path: "/", want: "?"},
		{path: "/foo/bar/", want: "bar"},
		{path: "foo/.", want: "foo"},
		{path: ".", want: "?"},
		{path: "..", want: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DirBasename(tt.path); got != tt.want {
				t.Errorf("DirBasename(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestShortenPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		home string
		want string
	}{
		{
			name: "path under home",
			path: "/home/alice/proj",
			home: "/home/alice",
			want: "~/proj",
		},
		{
			name: "path is home",
			path: "/home/alice",
			home: "/home/alice",
			want: "~",
		},
		{
			name: "path outside home",
			path: "/var/lib/proj",
			home: "/home/alice",
			want: "/var/lib/proj",
		},
		{
			name: "plain prefix substitution",
			path: "/home/alicia/proj",
			home: "/home/ali",
			want: "~cia/proj",
		},
		{
			name: "home unavailable",
			path: "/home/alice/proj",
			home: "",
			want: "/home/alice/proj",
		},
		{
			name: "empty path",
			path: "",
			home: "/home/alice",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortenPath(tt.path, tt.home); got != tt.want {
				t.Errorf("ShortenPath(%q, %q) = %q, want %q", tt.path, tt.home, got, tt.want)
			}
		})
	}
}
