package opendata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/opendata-check-go/pkg/opendata/models"
	"github.com/xuri/excelize/v2"
)

func TestValidateFile_Clean(t *testing.T) {
	csv := "clave_entidad,nombre_entidad,fecha_registro\n09,Ciudad,2024-01-31T10:00:00\n15,Estado,2024-02-01T00:00:00\n"

	obs, err := ValidateFile("entidades_federativas.csv", []byte(csv), DefaultOptions())
	require.NoError(t, err)

	assert.False(t, obs.HasFindings(), "%+v", obs)
	assert.Equal(t, []string{models.NoFormatObservations}, obs.Format)
	assert.Equal(t, []string{models.NoFilenameObservations}, obs.Filename)
	assert.Equal(t, []string{models.NoColumnObservations}, obs.Columns)
	assert.Equal(t, []string{models.NoDataObservations}, obs.Data)
}

func TestValidateFile_ScenarioA(t *testing.T) {
	csv := "id,Fecha_Evento\n1,2023-13-45T99:00:00\n"

	obs, err := ValidateFile("eventos.csv", []byte(csv), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"Nombre de columnas no permitido, 'id' no es descriptivo: id"}, obs.Columns)
	require.Len(t, obs.Data, 1)
	assert.Contains(t, obs.Data[0], "Fecha_Evento")
	assert.Contains(t, obs.Data[0], "ISO 8601")
}

func TestValidateFile_ScenarioB(t *testing.T) {
	obs, err := ValidateFile("Reporte Final.csv", []byte("clave\n01\n"), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"El nombre del archivo no debe tener espacios. Se recomienda usar guiones bajos para separar palabras.",
	}, obs.Filename)
}

func TestValidateFile_NonUTF8KeepsGoing(t *testing.T) {
	data := []byte("nombre,categoria\nJos\xe9,Si\nAna,si\n")

	obs, err := ValidateFile("personas.csv", data, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"La codificación no es la correcta, debe ser 'UTF-8'."}, obs.Format)
	assert.Equal(t, []string{"La columna categoria tiene categorías que solo difieren en mayúsculas y minúsculas: Si / si"}, obs.Data)
}

func TestValidateFile_Workbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "clave"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", ""))
	require.NoError(t, f.SetCellValue("Sheet1", "C1", "valor"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "01"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "x"))
	require.NoError(t, f.SetCellValue("Sheet1", "C2", 3))
	_, err := f.NewSheet("Notas")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Notas", "A1", "fuente"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	obs, err := ValidateFile("catalogo.xlsx", buf.Bytes(), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Se encuentran 1 variables sin nombre. Revisar el contenido de estas variables.",
		"El archivo contiene 2 hojas con datos; debe contener una sola hoja.",
	}, obs.Format)
}

func TestValidateFile_PaddedNumbers(t *testing.T) {
	obs, err := ValidateFile("montos.csv", []byte("monto,nombre\n 12,ana\n7 ,luis\n"), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"La columna monto tiene valores con espacios al inicio o final."}, obs.Data)
}

func TestValidateFile_EmptyIsAFinding(t *testing.T) {
	for _, name := range []string{"vacio.csv", "vacio.xlsx"} {
		obs, err := ValidateFile(name, nil, DefaultOptions())
		require.NoError(t, err, name)

		require.Len(t, obs.Format, 1, name)
		assert.Contains(t, obs.Format[0], "No fue posible leer el archivo", name)
		assert.True(t, obs.HasFindings(), name)
		assert.Equal(t, []string{models.NoFilenameObservations}, obs.Filename, name)
		assert.Equal(t, []string{models.NoColumnObservations}, obs.Columns, name)
		assert.Equal(t, []string{models.NoDataObservations}, obs.Data, name)
	}
}

func TestValidateFile_Errors(t *testing.T) {
	_, err := ValidateFile("antiguo.xls", []byte{0xD0, 0xCF}, DefaultOptions())
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = ValidateFile("antiguo.xls", nil, DefaultOptions())
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestValidateFile_CorruptWorkbookIsAFinding(t *testing.T) {
	obs, err := ValidateFile("roto.xlsx", []byte("not a workbook"), DefaultOptions())
	require.NoError(t, err)

	require.Len(t, obs.Format, 1)
	assert.Contains(t, obs.Format[0], "No fue posible leer el archivo")
	assert.Equal(t, []string{models.NoColumnObservations}, obs.Columns)
	assert.Equal(t, []string{models.NoDataObservations}, obs.Data)
}
