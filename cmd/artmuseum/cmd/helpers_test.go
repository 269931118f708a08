package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// sampleCatalogYAML is the demo gallery as a catalog file.
func sampleCatalogYAML() string {
	var sb strings.Builder
	sb.WriteString("artworks:\n")
	for _, r := range sampleGallery() {
		fmt.Fprintf(&sb, "  - name: %q\n    year: %d\n    cost: %v\n", r.Name, r.Year, r.Cost)
	}
	return sb.String()
}

// writeTestConfig writes a catalog file with the given content plus a config
// file pointing at it, and returns the config path.
func writeTestConfig(t *testing.T, catalogContent string) string {
	t.Helper()
	dir := t.TempDir()

	catalogFile := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogFile, []byte(catalogContent), 0644))

	configFile := filepath.Join(dir, "artmuseum.yaml")
	configContent := fmt.Sprintf(`catalog:
  source: file
  path: %s
display:
  color: false
logging:
  level: error
  output: stderr
`, catalogFile)
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))
	return configFile
}

// useConfig points the CLI at configFile and restores every flag variable
// when the test ends.
func useConfig(t *testing.T, configFile string) {
	t.Helper()
	saved := struct {
		cfgFile, logLevel, logFormat, sourceKind, catalogPath string
		noColor, asciiOnly, showTable, showGroup               bool
		treeLabel, lookupName, buyName                         string
		lookupYear, findYear, buyYear                          int
		lookupCost, findMaxCost, buyCost                       float64
	}{
		cfgFile, logLevel, logFormat, sourceKind, catalogPath,
		noColor, asciiOnly, showTable, showGroup,
		treeLabel, lookupName, buyName,
		lookupYear, findYear, buyYear,
		lookupCost, findMaxCost, buyCost,
	}
	t.Cleanup(func() {
		cfgFile, logLevel, logFormat, sourceKind, catalogPath = saved.cfgFile, saved.logLevel, saved.logFormat, saved.sourceKind, saved.catalogPath
		noColor, asciiOnly, showTable, showGroup = saved.noColor, saved.asciiOnly, saved.showTable, saved.showGroup
		treeLabel, lookupName, buyName = saved.treeLabel, saved.lookupName, saved.buyName
		lookupYear, findYear, buyYear = saved.lookupYear, saved.findYear, saved.buyYear
		lookupCost, findMaxCost, buyCost = saved.lookupCost, saved.findMaxCost, saved.buyCost
	})
	cfgFile = configFile
}

// capture routes the command's output to a buffer.
func capture(cmd *cobra.Command) *bytes.Buffer {
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	return &buf
}

const sampleOrderedText = "" +
	"[(Name: Last Dinner, DaVinci) (Year: 1503) (Cost: $1000.0)]\n" +
	"[(Name: Whistler, Abbott) (Year: 1871) (Cost: $5000.0)]\n" +
	"[(Name: Egg, DaVinci) (Year: 1930) (Cost: $1000.0)]\n" +
	"[(Name: Sunflower, VanGogh) (Year: 1930) (Cost: $6000.0)]\n" +
	"[(Name: Gothic, Wood) (Year: 1932) (Cost: $7000.0)]\n" +
	"[(Name: Guernica, Picasso) (Year: 1937) (Cost: $3000.0)]\n" +
	"[(Name: Der Schrei, Silber) (Year: 2019) (Cost: $12160.0)]\n"
