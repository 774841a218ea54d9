// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// render writes results in the named format.
func render(w io.Writer, format string, results []Result) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	case formatText:
		for _, r := range results {
			if err := renderText(w, r); err != nil {
				return err
			}
		}
		return nil
	}

	return fmt.Errorf("format %q: %w", format, ErrBadConfig)
}

// renderText prints one result as a status line, key/values and the atom pairs.
func renderText(w io.Writer, r Result) error {
	var b strings.Builder

	icon, status := styleFailure.Render(iconFailure), "no match"
	if r.Found {
		icon, status = styleSuccess.Render(iconSuccess), "match"
	}
	fmt.Fprintf(&b, "%s %s %s %s %s\n", icon,
		styleTitle.Render(r.Query), styleDim.Render(iconArrow), styleTitle.Render(r.Target),
		styleDim.Render("("+r.Mode+", "+status+")"))
	if r.TimedOut {
		fmt.Fprintf(&b, "%s %s\n", styleWarning.Render(iconWarning), styleWarning.Render("timed out; result is partial"))
	}

	kv := func(k, v string) { fmt.Fprintf(&b, "  %s %s\n", styleKey.Render(k), v) }
	kv("size", styleNumber.Render(fmt.Sprint(r.Size)))
	kv("matches", styleNumber.Render(fmt.Sprint(r.Count)))
	kv("states", styleNumber.Render(fmt.Sprint(r.Stats.States)))
	kv("elapsed", r.Elapsed)

	for i, pairs := range r.Matches {
		parts := make([]string, len(pairs))
		for j, p := range pairs {
			parts[j] = p.Query.Name + iconArrow + p.Target.Name
		}
		fmt.Fprintf(&b, "  %s %s\n", styleDim.Render(fmt.Sprintf("#%d", i+1)), strings.Join(parts, " "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
