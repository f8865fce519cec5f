package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseAcceptsLowerCasedMembersOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Locale
		ok    bool
	}{
		{input: "en", want: English, ok: true},
		{input: "DE", want: German, ok: true},
		{input: "Fr", want: French, ok: true},
		{input: "de-DE", ok: false},
		{input: "e", ok: false},
		{input: "", ok: false},
		{input: "pt", ok: false},
	}
	for _, tc := range tests {
		got, ok := Parse(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Parse(%q) = (%q, %t), want (%q, %t)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := map[string]Locale{
		"":          Default,
		"de-DE":     German,
		"ES-mx":     Spanish,
		"fr":        French,
		"zz-ZZ":     Default,
		"de;q=0.9":  Default,
		"  de":      Default,
		"-de":       Default,
		"en-US-x-1": English,
	}
	for input, want := range tests {
		if got := Normalize(input); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestMatchAcceptLanguageUsesQualityWeights(t *testing.T) {
	t.Parallel()

	got, ok := MatchAcceptLanguage("pt-BR,fr;q=0.9,en;q=0.5")
	if !ok {
		t.Fatal("MatchAcceptLanguage() ok = false, want true")
	}
	if got != French {
		t.Fatalf("MatchAcceptLanguage() = %q, want %q", got, French)
	}
}

func TestMatchAcceptLanguageRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, ok := MatchAcceptLanguage(""); ok {
		t.Fatal("MatchAcceptLanguage(\"\") ok = true, want false")
	}
	if _, ok := MatchAcceptLanguage("zz-ZZ"); ok {
		t.Fatal("MatchAcceptLanguage(zz-ZZ) ok = true, want false")
	}
}

func TestLocaleTagAndLabels(t *testing.T) {
	t.Parallel()

	if German.Tag() != language.German {
		t.Fatalf("Tag() = %v, want %v", German.Tag(), language.German)
	}
	if German.Label() != "DE" {
		t.Fatalf("Label() = %q, want %q", German.Label(), "DE")
	}
	if German.DisplayName() != "Deutsch" {
		t.Fatalf("DisplayName() = %q, want %q", German.DisplayName(), "Deutsch")
	}
}

func TestSupportedStartsWithDefault(t *testing.T) {
	t.Parallel()

	locales := Supported()
	if len(locales) != 4 {
		t.Fatalf("len(Supported()) = %d, want 4", len(locales))
	}
	if locales[0] != Default {
		t.Fatalf("Supported()[0] = %q, want %q", locales[0], Default)
	}
	locales[0] = French
	if Supported()[0] != Default {
		t.Fatal("Supported() must return a copy")
	}
}

func TestLocalePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: "/de"},
		{path: "", want: "/de"},
		{path: "/project", want: "/de/project"},
		{path: "project", want: "/de/project"},
	}
	for _, tc := range tests {
		if got := LocalePath(German, tc.path); got != tc.want {
			t.Fatalf("LocalePath(de, %q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestStripLocalePrefix(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/de":            "/",
		"/de/project":    "/project",
		"/fr/a/b":        "/a/b",
		"/project":       "/project",
		"project":        "/project",
		"/":              "/",
		"/german/a":      "/german/a",
		"/ES/project":    "/project",
		"//de//project/": "/project",
	}
	for input, want := range tests {
		if got := StripLocalePrefix(input); got != want {
			t.Fatalf("StripLocalePrefix(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSegments(t *testing.T) {
	t.Parallel()

	got := Segments("//a/b//c/")
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("Segments() = %#v", got)
	}
	if len(Segments("/")) != 0 {
		t.Fatalf("Segments(/) = %#v, want empty", Segments("/"))
	}
}
