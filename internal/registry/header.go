package registry

import (
	"bufio"
	"io"
	"strings"
)

// RequiredHeaderKeys is the header contract: every stopping-power .txt file
// must declare each of these on a key=value line.
var RequiredHeaderKeys = []string{
	"Ion",
	"AtomicNumber",
	"MassNumber",
	"SourceProgram",
	"IonizationPotential",
	"Target",
}

// ParseHeader extracts key=value pairs from every line containing '='.
// Keys and values are whitespace-trimmed. Only the key set is checked by the
// registry; values are opaque here.
func ParseHeader(r io.Reader) (map[string]string, error) {
	header := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		header[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return header, nil
}

// missingKeys returns the required keys absent from header, in contract order.
func missingKeys(header map[string]string) []string {
	var missing []string
	for _, key := range RequiredHeaderKeys {
		if _, ok := header[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
