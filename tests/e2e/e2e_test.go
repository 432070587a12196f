package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terravet/terravet/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "terravet-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "terravet")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/terravet")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/terraform", name))
	return abs
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

func cleanHistory(dir string) {
	os.RemoveAll(filepath.Join(dir, ".terravet"))
}

// --- Validate Tests ---

func TestE2E_ValidateCleanTree(t *testing.T) {
	out, code := run(t, "validate", fixturePath("perfect"))
	defer cleanHistory(fixturePath("perfect"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "All checks passed.")
	assert.Contains(t, out, "Found 8 Terraform files")
}

func TestE2E_ValidateFailures(t *testing.T) {
	out, code := run(t, "validate", fixturePath("violations"))
	defer cleanHistory(fixturePath("violations"))
	assert.Equal(t, 1, code, "rule failures should exit 1")
	assert.Contains(t, out, "Failures")
	assert.Contains(t, out, "Hardcoded Secret")
	assert.Contains(t, out, "Magic Number")
}

func TestE2E_ValidateJSON(t *testing.T) {
	out, code := run(t, "validate", fixturePath("violations"), "--json")
	defer cleanHistory(fixturePath("violations"))
	assert.Equal(t, 1, code)

	var res domain.Run
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 24, res.Summary.Total)
	assert.Equal(t, 20, res.Summary.Failed)
	assert.Equal(t, 3, res.FileCount)
	assert.False(t, res.Strict)
}

func TestE2E_ValidateEmptyTree(t *testing.T) {
	out, code := run(t, "validate", fixturePath("empty"))
	defer cleanHistory(fixturePath("empty"))
	assert.Equal(t, 1, code, "empty discovery is a failed run, not an error")
	assert.Contains(t, out, "No Terraform files found")
}

func TestE2E_ValidateMissingPath(t *testing.T) {
	out, code := run(t, "validate", "/no/such/tree")
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "path does not exist")
}

func TestE2E_ValidateReport(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report.md")
	_, code := run(t, "validate", fixturePath("violations"), "--report", reportPath)
	defer cleanHistory(fixturePath("violations"))
	assert.Equal(t, 1, code)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# IaC Validation Report")
	assert.Contains(t, string(data), "Pass Rate")
	assert.Contains(t, string(data), "## Results")
}

// --- Rules Tests ---

func TestE2E_RulesJSON(t *testing.T) {
	out, code := run(t, "rules", "--json")
	assert.Equal(t, 0, code)

	var reg []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &reg))
	assert.Len(t, reg, 8)
}

// --- Version Test ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "terravet")
}
