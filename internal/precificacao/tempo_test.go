package precificacao

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatarMinutosParaHHMM(t *testing.T) {
	casos := []struct {
		minutos  float64
		esperado string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{59, "00:59"},
		{60, "01:00"},
		{90, "01:30"},
		{135, "02:15"},
		{600, "10:00"},
		{-5, "00:00"},
		{math.NaN(), "00:00"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, FormatarMinutosParaHHMM(c.minutos), "minutos=%v", c.minutos)
	}
}

func TestConverterHHMMParaMinutos(t *testing.T) {
	casos := []struct {
		texto    string
		esperado int
	}{
		{"01:30", 90},
		{"00:00", 0},
		{"00:59", 59},
		{"10:00", 600},
		{"2:05", 125},
		// malformadas degradam para 0
		{"", 0},
		{"90", 0},
		{"1:2:3", 0},
		{"ab:cd", 0},
		{"01:60", 0},
		{"01:75", 0},
		{"-1:30", 0},
		{"01:-5", 0},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, ConverterHHMMParaMinutos(c.texto), "texto=%q", c.texto)
	}
}

func TestIdaEVoltaHHMM(t *testing.T) {
	for _, s := range []string{"00:00", "00:01", "00:59", "01:00", "01:30", "09:45", "12:00", "23:59", "48:15"} {
		minutos := ConverterHHMMParaMinutos(s)
		assert.Equal(t, s, FormatarMinutosParaHHMM(float64(minutos)), "ida e volta de %q", s)
	}
}
