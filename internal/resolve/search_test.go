package resolve

import (
	"errors"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		paths []string
		want  string
	}{
		{
			name:  "exact match on final segment",
			query: "foo",
			paths: []string{"/a/foo", "/b/bar"},
			want:  "/a/foo",
		},
		{
			name:  "prefix beats substring",
			query: "foo",
			paths: []string{"/a/foobar", "/b/xfoo"},
			want:  "/a/foobar",
		},
		{
			name:  "prefix beats earlier substring",
			query: "foo",
			paths: []string{"/b/xfoo", "/a/foobar"},
			want:  "/a/foobar",
		},
		{
			name:  "substring when nothing else",
			query: "foo",
			paths: []string{"/a/bar", "/b/xfoox"},
			want:  "/b/xfoox",
		},
		{
			name:  "exact beats earlier prefix",
			query: "foo",
			paths: []string{"/a/foobar", "/b/foo"},
			want:  "/b/foo",
		},
		{
			name:  "first exact match in input order",
			query: "src",
			paths: []string{"/one/src", "/two/src"},
			want:  "/one/src",
		},
		{
			name:  "deeper leaf match beats shallower exact",
			query: "src",
			paths: []string{"/src/project", "/home/u/srcs"},
			want:  "/home/u/srcs",
		},
		{
			name:  "falls back to parent segment",
			query: "proj",
			paths: []string{"/home/u/proj/src", "/tmp"},
			want:  "/home/u/proj/src",
		},
		{
			name:  "short paths drop out at deeper levels",
			query: "home",
			paths: []string{"/tmp", "/home/u/x"},
			want:  "/home/u/x",
		},
		{
			name:  "trailing slash ignored",
			query: "foo",
			paths: []string{"/a/foo/"},
			want:  "/a/foo/",
		},
		{
			name:  "segment with spaces",
			query: "x y",
			paths: []string{"/a/x y"},
			want:  "/a/x y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Search(tt.query, tt.paths)
			if err != nil {
				t.Fatalf("Search(%q) error = %v", tt.query, err)
			}
			if got != tt.want {
				t.Errorf("Search(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestSearch_NoMatch(t *testing.T) {
	t.Parallel()

	for _, paths := range [][]string{
		{"/a/b", "/c/d"},
		{"/"},
		nil,
	} {
		_, err := Search("zzz", paths)
		var nm *NoMatchError
		if !errors.As(err, &nm) {
			t.Fatalf("Search(zzz, %q) error = %v, want NoMatchError", paths, err)
		}
		if nm.Query != "zzz" {
			t.Errorf("Query = %q, want zzz", nm.Query)
		}
		if got, want := err.Error(), `No match on "zzz".`; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	}
}

var segmentGen = rapid.SampledFrom([]string{"a", "b", "foo", "foobar", "xfoo", "bar", "src"})

func pathGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		parts := rapid.SliceOfN(segmentGen, 1, 4).Draw(t, "parts")
		return "/" + strings.Join(parts, "/")
	})
}

// Scenario: any query against any candidate list
// Expected: the result is one of the candidates, and its leaf segment is an
// exact match whenever some candidate's leaf is exact
func TestSearch_Properties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		paths := rapid.SliceOfN(pathGen(), 1, 8).Draw(t, "paths")
		query := segmentGen.Draw(t, "query")

		got, err := Search(query, paths)
		if err != nil {
			for _, p := range paths {
				if strings.Contains(p, query) {
					t.Fatalf("no match for %q but %q contains it", query, p)
				}
			}
			return
		}

		found := false
		for _, p := range paths {
			if p == got {
				found = true
			}
		}
		if !found {
			t.Fatalf("result %q is not a candidate", got)
		}

		for _, p := range paths {
			if leaf(p) == query {
				if leaf(got) != query {
					t.Fatalf("leaf %q exact in %q but got %q", query, p, got)
				}
				return
			}
		}
		for _, p := range paths {
			if strings.HasPrefix(leaf(p), query) {
				if !strings.HasPrefix(leaf(got), query) {
					t.Fatalf("leaf prefix %q in %q but got %q", query, p, got)
				}
				return
			}
		}
	})
}

func leaf(p string) string {
	return p[strings.LastIndex(p, "/")+1:]
}
