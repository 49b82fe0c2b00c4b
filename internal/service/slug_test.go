package service

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World! 2024", "hello-world-2024"},
		{"  My   Post  ", "my-post"},
		{"Go & Gin: a tour", "go-gin-a-tour"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER lower", "upper-lower"},
		{"dashes --- everywhere", "dashes-everywhere"},
		{"日本語のみ", ""},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Hello, World! 2024", "A -- B", "Mixed CASE Title 42"}
	for _, in := range inputs {
		once := Slugify(in)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestSlugifyCharacterClass(t *testing.T) {
	slug := Slugify("Cats & Dogs: 9 lives (really!)")
	for _, r := range slug {
		valid := r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !valid {
			t.Fatalf("slug %q contains invalid rune %q", slug, r)
		}
	}
	if len(slug) > 0 && (slug[0] == '-' || slug[len(slug)-1] == '-') {
		t.Fatalf("slug %q has leading or trailing hyphen", slug)
	}
}
