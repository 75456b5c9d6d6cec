package profile

import (
	"testing"
)

func TestExtractDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		page   string
		handle string
		want   string
		wantOK bool
	}{
		{
			name: "json-ld person",
			page: `<html><head><script type="application/ld+json">
				{"@type":"Person","name":"Jane Doe"}
			</script></head><body></body></html>`,
			handle: "janedoe",
			want:   "Jane Doe",
			wantOK: true,
		},
		{
			name: "json-ld profile page with main entity",
			page: `<html><head><script type="application/ld+json">
				{"@context":"https://schema.org","@type":"ProfilePage","mainEntity":{"@type":"Person","name":"John Smith"}}
			</script></head><body></body></html>`,
			handle: "johnsmith",
			want:   "John Smith",
			wantOK: true,
		},
		{
			name: "json-ld graph nesting",
			page: `<html><head><script type="application/ld+json">
				{"@graph":[{"@type":"WebSite","name":"Instagram"},{"@type":"Person","name":"Graph Person"}]}
			</script></head><body></body></html>`,
			handle: "graph",
			want:   "Graph Person",
			wantOK: true,
		},
		{
			name:   "og title with handle marker",
			page:   `<html><head><meta property="og:title" content="Jane Doe (@janedoe) • Instagram photos and videos"></head><body></body></html>`,
			handle: "janedoe",
			want:   "Jane Doe",
			wantOK: true,
		},
		{
			name:   "title fallback",
			page:   `<html><head><title>John Smith (@johnsmith) • Instagram</title></head><body></body></html>`,
			handle: "johnsmith",
			want:   "John Smith",
			wantOK: true,
		},
		{
			name:   "json-ld preferred over og title",
			page:   `<html><head><script type="application/ld+json">{"@type":"Person","name":"LD Name"}</script><meta property="og:title" content="OG Name (@x)"></head><body></body></html>`,
			handle: "x",
			want:   "LD Name",
			wantOK: true,
		},
		{
			name:   "boilerplate title rejected",
			page:   `<html><head><title>Instagram</title></head><body></body></html>`,
			handle: "someone",
			wantOK: false,
		},
		{
			name:   "title equal to handle rejected",
			page:   `<html><head><title>janedoe</title></head><body></body></html>`,
			handle: "janedoe",
			wantOK: false,
		},
		{
			name:   "no metadata",
			page:   `<html><head></head><body><p>nothing here</p></body></html>`,
			handle: "someone",
			wantOK: false,
		},
		{
			name:   "malformed json-ld ignored",
			page:   `<html><head><script type="application/ld+json">{not json</script><meta property="og:title" content="Fallback Name (@someone)"></head><body></body></html>`,
			handle: "someone",
			want:   "Fallback Name",
			wantOK: true,
		},
		{
			name:   "wrong ld type ignored",
			page:   `<html><head><script type="application/ld+json">{"@type":"Organization","name":"Some Org"}</script></head><body></body></html>`,
			handle: "someone",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractDisplayName([]byte(tt.page), tt.handle)

			if ok != tt.wantOK {
				t.Fatalf("ExtractDisplayName() ok = %v, want %v", ok, tt.wantOK)
			}

			if ok && got != tt.want {
				t.Errorf("ExtractDisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanPageTitle(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		handle string
		want   string
	}{
		{
			name:   "marker and tail",
			title:  "Jane Doe (@janedoe) • Instagram photos and videos",
			handle: "janedoe",
			want:   "Jane Doe",
		},
		{
			name:   "tail only",
			title:  "Jane Doe • Instagram",
			handle: "janedoe",
			want:   "Jane Doe",
		},
		{
			name:   "bare name",
			title:  "Jane Doe",
			handle: "janedoe",
			want:   "Jane Doe",
		},
		{
			name:   "empty after stripping",
			title:  " (@janedoe) • Instagram",
			handle: "janedoe",
			want:   "",
		},
		{
			name:   "whitespace only",
			title:  "   ",
			handle: "janedoe",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanPageTitle(tt.title, tt.handle); got != tt.want {
				t.Errorf("cleanPageTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
