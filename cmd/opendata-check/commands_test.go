package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commandEnv points storage and assets at temporary directories.
func commandEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ODCHECK_STORAGE_RESULTS_DIR", filepath.Join(dir, "resultados"))
	t.Setenv("ODCHECK_REPORT_ASSETS_DIR", filepath.Join(dir, "logos"))
	t.Setenv("ODCHECK_LOG_LEVEL", "error")
	return dir
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateCmd_Text(t *testing.T) {
	dir := commandEnv(t)
	input := writeInput(t, dir, "entidades_federativas.csv", cleanCSV)

	out, err := execute(t, newValidateCmd(), input)
	require.NoError(t, err)

	assert.Contains(t, out, "Archivo: entidades_federativas.csv")
	assert.Contains(t, out, "No se encontraron observaciones de formato.")
	assert.Contains(t, out, "El archivo cumple con los criterios revisados.")
}

func TestValidateCmd_Strict(t *testing.T) {
	dir := commandEnv(t)
	input := writeInput(t, dir, "Reporte Final.csv", "clave\n01\n")

	out, err := execute(t, newValidateCmd(), "--strict", input)
	assert.ErrorIs(t, err, errFindings)
	assert.Contains(t, out, "El nombre del archivo no debe tener espacios.")

	_, err = execute(t, newValidateCmd(), input)
	assert.NoError(t, err)
}

func TestValidateCmd_Unsupported(t *testing.T) {
	dir := commandEnv(t)
	input := writeInput(t, dir, "datos.json", "{}")

	_, err := execute(t, newValidateCmd(), input)
	assert.Error(t, err)
}

func TestValidateThenReport(t *testing.T) {
	dir := commandEnv(t)
	input := writeInput(t, dir, "Reporte Final.csv", "clave\n01\n")

	out, err := execute(t, newValidateCmd(), "--json", "--save", input)
	require.NoError(t, err)

	var res result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.NotEmpty(t, res.Token)
	assert.False(t, res.Passed)
	assert.Equal(t, "Reporte Final.csv", res.Filename)

	byToken := filepath.Join(dir, "por_token.pdf")
	_, err = execute(t, newReportCmd(), "--token", res.Token, "--name", "reporte_final.csv", "-o", byToken)
	require.NoError(t, err)

	resultsPath := writeInput(t, dir, "resultado.json", out)
	byFile := filepath.Join(dir, "por_archivo.pdf")
	_, err = execute(t, newReportCmd(), "--results", resultsPath, "-o", byFile)
	require.NoError(t, err)

	for _, path := range []string{byToken, byFile} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), path)
	}
}

func TestReportCmd_BareObservationSet(t *testing.T) {
	dir := commandEnv(t)
	results := writeInput(t, dir, "obs.json",
		`{"formato":["No se encontraron observaciones de formato."],"archivo":["El nombre del archivo no debe tener espacios."],"columnas":[],"datos":[]}`)
	output := filepath.Join(dir, "informe.pdf")

	out, err := execute(t, newReportCmd(), "--results", results, "--name", "datos.csv", "-o", output)
	require.NoError(t, err)
	assert.Equal(t, output, strings.TrimSpace(out))
}

func TestReportCmd_Errors(t *testing.T) {
	dir := commandEnv(t)

	_, err := execute(t, newReportCmd())
	assert.Error(t, err)

	_, err = execute(t, newReportCmd(), "--token", "a", "--results", "b")
	assert.Error(t, err)

	_, err = execute(t, newReportCmd(), "--token", "6f1c1c52-2d1f-4c7b-9d2a-3b9f3f1e8a10", "-o", filepath.Join(dir, "x.pdf"))
	assert.ErrorContains(t, err, "no result stored")

	empty := writeInput(t, dir, "vacio.json", "{}")
	_, err = execute(t, newReportCmd(), "--results", empty)
	assert.Error(t, err)
}
