// SPDX-License-Identifier: Apache-2.0

package kernel

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// VersionTuple is a device-mapper target version: major, minor, patch.
// The zero value means the target is absent or its version could not be parsed.
type VersionTuple [3]int

func (v VersionTuple) Major() int { return v[0] }
func (v VersionTuple) Minor() int { return v[1] }
func (v VersionTuple) Patch() int { return v[2] }

func (v VersionTuple) IsZero() bool {
	return v == VersionTuple{}
}

func (v VersionTuple) String() string {
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}

// Semver converts the tuple for comparisons against version constraints.
func (v VersionTuple) Semver() *semver.Version {
	return semver.New(uint64(v[0]), uint64(v[1]), uint64(v[2]), "", "")
}

// MarshalYAML renders the tuple as a flow sequence, e.g. [6, 2, 3].
func (v VersionTuple) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, n := range v {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(n)})
	}
	return node, nil
}

// parseTargetVersion returns the version of the first line of a `dmsetup targets` listing
// that starts with target followed by whitespace and vX.Y.Z. Scanning stops at that line.
func parseTargetVersion(listing string, target string) VersionTuple {
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(target) + `\s+v(\d+)\.(\d+)\.(\d+)`)

	scanner := bufio.NewScanner(strings.NewReader(listing))
	for scanner.Scan() {
		m := pattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		var v VersionTuple
		ok := true
		for i := range v {
			n, err := strconv.Atoi(m[i+1])
			if err != nil {
				ok = false
				break
			}
			v[i] = n
		}

		if ok {
			return v
		}
	}

	return VersionTuple{}
}

// versionLines concatenates, without any separator, every line of a modinfo listing that
// begins with "version".
func versionLines(listing string) string {
	var sb strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(listing))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "version") {
			sb.WriteString(line)
		}
	}
	return sb.String()
}

// decodeVersionInfo decodes a key: value version document. A mapping decodes to
// map[string]any. A bare scalar (no version line was found) decodes to its value, e.g.
// "kvdo " to "kvdo". Anything else is reported as ErrMalformedVersionInfo.
func decodeVersionInfo(doc string) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(doc), &root); err != nil {
		return nil, ErrMalformedVersionInfo.Wrap(err, "failed to decode version information %q", doc)
	}

	if len(root.Content) == 0 {
		return nil, nil
	}

	node := root.Content[0]
	switch node.Kind {
	case yaml.MappingNode:
		info := map[string]any{}
		if err := node.Decode(&info); err != nil {
			return nil, ErrMalformedVersionInfo.Wrap(err, "failed to decode version information %q", doc)
		}
		return info, nil
	case yaml.ScalarNode:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, ErrMalformedVersionInfo.Wrap(err, "failed to decode version information %q", doc)
		}
		return value, nil
	default:
		return nil, ErrMalformedVersionInfo.New("version information is not a key/value document: %q", doc)
	}
}
