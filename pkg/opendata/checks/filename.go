package checks

import (
	"path/filepath"
	"strings"

	"github.com/ukaji3/opendata-check-go/pkg/opendata/models"
)

// StripExtension returns name without its final extension.
func StripExtension(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Filename checks the name of the file, extension excluded.
func Filename(name string) []string {
	base := StripExtension(name)

	var obs []string
	if hasDiacritics(base) {
		obs = append(obs, "El nombre del archivo contiene caracteres especiales (ñ, tildes, diéresis).")
	}
	if strings.Contains(base, " ") {
		obs = append(obs, "El nombre del archivo no debe tener espacios. Se recomienda usar guiones bajos para separar palabras.")
	}
	if words := reservedIn(underscoreTokens(base)); len(words) > 0 {
		obs = append(obs, "El nombre del archivo contiene preposiciones o artículos: "+joinNames(words))
	}

	return orSentinel(obs, models.NoFilenameObservations)
}
