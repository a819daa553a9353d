package parse

import "testing"

func FuzzParserParse(f *testing.F) {
	// Seeds: valid line, near-miss, and junk.
	f.Add("2024-01-15 10:31:15 [ERROR] Database query failed")
	f.Add("2024-01-15 10:31:15 [error] lowercase token")
	f.Add("not a log line")

	p := NewParser()
	f.Fuzz(func(t *testing.T, s string) {
		entry, err := p.Parse(s)
		if (entry == nil) == (err == nil) {
			t.Fatalf("exactly one of entry/err must be set for %q", s)
		}
	})
}
