package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArea(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "plain integer", raw: "12", want: 12.0},
		{name: "decimal", raw: "3.75", want: 3.75},
		{name: "trailing newline", raw: "1.0\n", want: 1.0},
		{name: "surrounding whitespace", raw: "  42.5  ", want: 42.5},
		{name: "negative", raw: "-2", want: -2.0},
		{name: "zero", raw: "0", want: 0.0},
		{name: "words", raw: "abc", wantErr: true},
		{name: "empty line", raw: "\n", wantErr: true},
		{name: "mixed", raw: "12m2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArea(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "expected a numeric area value")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHabitatCommandReadsOneLineFromStdin(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("1.0\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"habitat"})

	require.NoError(t, rootCmd.Execute())

	s := out.String()
	assert.Contains(t, s, "Energy For Pressurization")
	assert.Contains(t, s, "Energy for Heating")
	// work is reported before heat
	assert.Less(t, strings.Index(s, "Energy For Pressurization"), strings.Index(s, "Energy for Heating"))
}

func TestHabitatCommandRejectsNonNumericInput(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader("abc\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"habitat"})

	require.Error(t, rootCmd.Execute())
	assert.NotContains(t, out.String(), "Energy For Pressurization")
}
