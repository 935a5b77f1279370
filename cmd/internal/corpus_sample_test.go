package internal

import (
	"errors"
	"testing"

	"github.com/sansecio/rx"
	"github.com/sansecio/rx/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleCorpusConverts(t *testing.T) {
	entries, err := ReadCorpus("testdata/corpus.rx")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	unsupported := make(map[string]int)
	for _, e := range entries {
		for _, name := range render.Names() {
			out, err := rx.ConvertDialect(e.Source, name)
			if errors.Is(err, render.ErrFeatureNotSupported) {
				unsupported[name]++
				continue
			}
			if !assert.NoError(t, err, "line %d, %s: %s", e.Line, name, e.Source) || name == "debug" {
				continue
			}
			assert.NoError(t, CompileCheck(name, out), "line %d, %s: %s -> %s", e.Line, name, e.Source, out)
		}
	}

	// (group-n ...) and the named backref after it.
	assert.Equal(t, map[string]int{"js": 1}, unsupported)
}

func TestCompileCheck(t *testing.T) {
	tests := []struct {
		dialect string
		pattern string
		wantErr bool
	}{
		{"pcre", `^(?:[\d]+)$`, false},
		{"pcre", `(?<n1>[a-z]+):(?:(?P=n1))`, false},
		{"pcre2", `(?<n1>[a-z]+):(?:\k<n1>)`, false},
		{"pcre", `([a-z]+)=\1`, false},
		{"js", `([a-z]+)=\1`, false},
		{"pcre", `(?:unclosed`, true},
		{"js", `[a-z`, true},
	}
	for _, tt := range tests {
		t.Run(tt.dialect+" "+tt.pattern, func(t *testing.T) {
			err := CompileCheck(tt.dialect, tt.pattern)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
