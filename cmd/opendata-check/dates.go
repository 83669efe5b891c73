package main

import (
	"fmt"
	"time"
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// dateLine formats the letterhead date, e.g. "Ciudad de México, a 18 de octubre de 2026".
func dateLine(place string, t time.Time) string {
	date := fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
	if place == "" {
		return date
	}
	return place + ", a " + date
}
