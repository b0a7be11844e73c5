// SPDX-License-Identifier: Apache-2.0

package common

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/joomcode/errorx"
	"gopkg.in/yaml.v3"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Render writes v to w as a YAML or JSON document.
func Render(w io.Writer, v any, format string) error {
	var output []byte
	var err error
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatYAML, "":
		output, err = yaml.Marshal(v)
		if err != nil {
			return errorx.IllegalFormat.Wrap(err, "failed to marshal output to YAML")
		}
	case FormatJSON:
		output, err = json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errorx.IllegalFormat.Wrap(err, "failed to marshal output to JSON")
		}
		output = append(output, '\n')
	default:
		return errorx.IllegalArgument.New("unsupported output format %q, expected %s or %s", format, FormatYAML, FormatJSON).
			WithProperty(errorx.PropertyPayload(), FlagOutput.Name)
	}

	_, err = fmt.Fprint(w, string(output))
	return err
}
