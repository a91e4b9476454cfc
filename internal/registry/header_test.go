package registry

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]string
	}{
		{
			name: "basic key=value lines",
			content: `Ion=C
AtomicNumber=6`,
			want: map[string]string{"Ion": "C", "AtomicNumber": "6"},
		},
		{
			name:    "whitespace around key and value is trimmed",
			content: "  Ion = C \n Target =  Water  ",
			want:    map[string]string{"Ion": "C", "Target": "Water"},
		},
		{
			name:    "value may contain further equals signs",
			content: "Units=MeV/u, LET=keV/um",
			want:    map[string]string{"Units": "MeV/u, LET=keV/um"},
		},
		{
			name: "lines without equals are skipped",
			content: `Ion=He
0.025 1120.3
0.1 1823.9`,
			want: map[string]string{"Ion": "He"},
		},
		{
			name:    "empty input",
			content: "",
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, err := ParseHeader(strings.NewReader(tt.content))
			require.NoError(t, err)
			require.Equal(t, tt.want, header)
		})
	}
}

func TestParseHeader_RoundTrip(t *testing.T) {
	keyGen := rapid.StringMatching(`[A-Za-z][A-Za-z0-9_]{0,15}`)
	valGen := rapid.StringMatching(`[A-Za-z0-9_.+-]{1,20}`)

	rapid.Check(t, func(t *rapid.T) {
		header := rapid.MapOfN(keyGen, valGen, 1, 8).Draw(t, "header")

		keys := make([]string, 0, len(header))
		for k := range header {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var b strings.Builder
		for _, k := range keys {
			fmt.Fprintf(&b, "%s=%s\n", k, header[k])
		}

		parsed, err := ParseHeader(strings.NewReader(b.String()))
		require.NoError(t, err)
		require.Equal(t, header, parsed)
	})
}

func TestMissingKeys(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		want   []string
	}{
		{
			name: "complete header has nothing missing",
			header: map[string]string{
				"Ion": "C", "AtomicNumber": "6", "MassNumber": "12",
				"SourceProgram": "Geant4", "IonizationPotential": "78.0", "Target": "Water",
			},
			want: nil,
		},
		{
			name: "single missing key",
			header: map[string]string{
				"Ion": "C", "AtomicNumber": "6", "MassNumber": "12",
				"SourceProgram": "Geant4", "IonizationPotential": "78.0",
			},
			want: []string{"Target"},
		},
		{
			name:   "empty header misses everything in contract order",
			header: map[string]string{},
			want: []string{
				"Ion", "AtomicNumber", "MassNumber",
				"SourceProgram", "IonizationPotential", "Target",
			},
		},
		{
			name: "extra keys do not satisfy the contract",
			header: map[string]string{
				"Ion": "C", "Beam": "pencil",
			},
			want: []string{
				"AtomicNumber", "MassNumber",
				"SourceProgram", "IonizationPotential", "Target",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, missingKeys(tt.header))
		})
	}
}
