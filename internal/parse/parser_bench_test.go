package parse

import "testing"

func BenchmarkParserParse(b *testing.B) {
	p := NewParser()
	line := "2024-01-15 10:31:15 [ERROR] Database query failed: syntax error"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(line)
	}
}

func BenchmarkParserParseMalformed(b *testing.B) {
	p := NewParser()
	line := "2024-01-15 10:31:15 [FATAL] unknown level token"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(line)
	}
}
