package drills

import (
	"fmt"
	"io"

	"github.com/dkoosis/drill/internal/codec"
	"github.com/dkoosis/drill/internal/registry"
)

const roundTripTranscript = `=== encoding round trips ===
json: {"name":"ada","age":36}
secret survived the trip: false
zero age with omitempty: {"name":"ada"}
yaml:
name: ada
age: 36
`

func runRoundTrip(w io.Writer) error {
	fmt.Fprintln(w, "=== encoding round trips ===")

	p := codec.NewProfile("ada", 36, "s3cret")

	decoded, encoded, err := codec.JSONRoundTrip(p)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "json:", encoded)
	fmt.Fprintf(w, "secret survived the trip: %v\n", decoded.Secret() != "")

	_, zeroEncoded, err := codec.JSONRoundTrip(codec.NewProfile("ada", 0, ""))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "zero age with omitempty:", zeroEncoded)

	_, yamlEncoded, err := codec.YAMLRoundTrip(p)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "yaml:")
	fmt.Fprint(w, yamlEncoded)

	return nil
}

func codecDrills() []*registry.DrillInfo {
	return []*registry.DrillInfo{
		{
			Name:       "round-trip",
			Topic:      "codec",
			Summary:    "only exported fields travel; omitempty erases zero values",
			Note:       "encoding",
			Transcript: roundTripTranscript,
			Run:        runRoundTrip,
		},
	}
}
