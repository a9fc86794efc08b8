package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	osm2lanes "github.com/openlanes/osm2lanes"
)

var (
	tagStr     = flag.String("tags", "highway=residential", "Set of way tags (comma-separated key=value pairs)")
	country    = flag.String("country", "US", "ISO-3166 alpha-2 country code")
	subdiv     = flag.String("subdivision", "", "Country subdivision, if the locale needs one")
	side       = flag.String("side", "right", "Driving side: right / left")
	configFile = flag.String("config", "", "Path to a YAML transform config file")
	out        = flag.String("out", "", "Output file for the JSON Road (default: stdout)")
	verbose    = flag.Bool("verbose", false, "Print an ASCII render of the assembled lane sequence")
)

func main() {
	flag.Parse()

	tags, err := parseTagString(*tagStr)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	drivingSide := osm2lanes.DrivingSideRight
	if strings.EqualFold(*side, "left") {
		drivingSide = osm2lanes.DrivingSideLeft
	}
	locale := osm2lanes.NewLocale(*country, *subdiv, drivingSide)

	var cfg *osm2lanes.Config
	if *configFile != "" {
		cfg, err = osm2lanes.LoadConfigFile(*configFile)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	} else {
		cfg = osm2lanes.NewConfig()
	}
	if *verbose {
		cfg = osm2lanes.NewConfig(
			osm2lanes.WithSeparators(cfg.IncludeSeparators),
			osm2lanes.WithShoulders(cfg.IncludeShoulders),
			osm2lanes.WithInferredDefaults(cfg.InferDefaults),
			osm2lanes.WithWarningsAsErrors(cfg.ErrorOnWarnings),
			osm2lanes.WithVerbose(true),
		)
	}

	road, diagnostics, transformErr := osm2lanes.TagsToLanes(tags, locale, cfg)
	for _, d := range diagnostics {
		fmt.Fprintln(os.Stderr, d.String())
	}
	if transformErr != nil {
		fmt.Println(transformErr)
		os.Exit(1)
	}

	data, err := osm2lanes.MarshalRoad(road)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if *out == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// parseTagString parses the -tags flag's "key=value,key=value" shape into a
// Tags store, grounded on the teacher CLI's comma-separated -tags flag
// (cmd/osm2ch/main.go's tagStr) repurposed to hold way tags instead of
// highway-class names.
func parseTagString(raw string) (osm2lanes.Tags, error) {
	m := make(map[string]string)
	if strings.TrimSpace(raw) == "" {
		return osm2lanes.NewTags(m), nil
	}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return osm2lanes.Tags{}, fmt.Errorf("osm2lanes: malformed tag %q, expected key=value", pair)
		}
		m[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	return osm2lanes.NewTags(m), nil
}
