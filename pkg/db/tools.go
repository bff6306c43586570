package db

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// Oldest aligner release the pipeline is known to work with. Earlier ones
// lack some of the tabular columns we request.
const MinBlastVersion = "2.7.1"

// Tool is one external program the pipeline shells out to.
type Tool struct {
	Name       string
	MinVersion string
}

// RequiredTools lists every external program ggscreen depends on.
var RequiredTools = []Tool{
	{Name: "blastn", MinVersion: MinBlastVersion},
	{Name: "blastx", MinVersion: MinBlastVersion},
	{Name: "makeblastdb", MinVersion: MinBlastVersion},
}

var versionPattern = regexp.MustCompile(`(\d+\.\d+(?:\.\d+)?)`)

// CheckTool locates a tool on PATH and verifies it is recent enough. The
// detected version is returned even when it fails the check.
func CheckTool(t Tool) (string, error) {
	if _, err := exec.LookPath(t.Name); err != nil {
		return "", fmt.Errorf("%q not found on PATH: %w", t.Name, err)
	}

	output, err := exec.Command(t.Name, "-version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s -version failed: %w - %s", t.Name, err, strings.TrimSpace(string(output)))
	}

	version := parseVersion(string(output))
	if version == "" {
		return "", fmt.Errorf("could not parse %s version from %q", t.Name, strings.TrimSpace(string(output)))
	}

	if CompareVersions(version, t.MinVersion) < 0 {
		return version, fmt.Errorf("%s %s is older than the required %s", t.Name, version, t.MinVersion)
	}
	return version, nil
}

// parseVersion pulls the first dotted version number out of a tool's
// -version banner.
func parseVersion(output string) string {
	m := versionPattern.FindStringSubmatch(output)
	if m == nil {
		return ""
	}
	return m[1]
}

// CompareVersions orders two dotted version strings numerically per
// component, so "2.10.0" ranks above "2.9.9". Missing components count as
// zero. Returns -1, 0 or 1.
func CompareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) || i < len(bs); i++ {
		var an, bn int
		if i < len(as) {
			an, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bn, _ = strconv.Atoi(bs[i])
		}
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
	}
	return 0
}
