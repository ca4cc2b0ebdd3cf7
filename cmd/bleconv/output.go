package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/srg/bleconv/pkg/config"
)

// report is a conversion result whose keys print in insertion order in every format
type report = orderedmap.OrderedMap[string, any]

func newReport() *report {
	return orderedmap.New[string, any]()
}

// render writes r to w in the configured format
func render(w io.Writer, r *report, s *settings) error {
	switch s.cfg.OutputFormat {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderText(w, r, s.colorize, 0)
	}
}

func renderText(w io.Writer, r *report, colorize bool, depth int) error {
	key := color.New(color.FgCyan)
	if colorize {
		key.EnableColor()
	} else {
		key.DisableColor()
	}

	indent := strings.Repeat("  ", depth)
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		if nested, ok := pair.Value.(*report); ok {
			if _, err := fmt.Fprintf(w, "%s%s:\n", indent, key.Sprint(pair.Key)); err != nil {
				return err
			}
			if err := renderText(w, nested, colorize, depth+1); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%s: %s\n", indent, key.Sprint(pair.Key), textValue(pair.Value)); err != nil {
			return err
		}
	}
	return nil
}

func textValue(v any) string {
	switch val := v.(type) {
	case []string:
		if len(val) == 0 {
			return "-"
		}
		return strings.Join(val, ", ")
	case nil:
		return "-"
	default:
		return fmt.Sprint(val)
	}
}
