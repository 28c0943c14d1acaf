// internal/precificacao/tempo.go
package precificacao

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatarMinutosParaHHMM converte minutos em texto "HH:MM".
// Entrada NaN ou negativa devolve "00:00" em vez de erro.
func FormatarMinutosParaHHMM(minutos float64) string {
	if math.IsNaN(minutos) || minutos < 0 {
		return "00:00"
	}
	total := int(minutos)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ConverterHHMMParaMinutos converte texto "HH:MM" em minutos inteiros.
// Qualquer entrada malformada (formato errado, não numérico, minutos fora
// de 0-59, horas negativas) devolve 0 — quem chama valida campos
// obrigatórios antes de confiar em um zero.
func ConverterHHMMParaMinutos(texto string) int {
	partes := strings.Split(texto, ":")
	if len(partes) != 2 {
		return 0
	}
	horas, err := strconv.Atoi(partes[0])
	if err != nil {
		return 0
	}
	minutos, err := strconv.Atoi(partes[1])
	if err != nil {
		return 0
	}
	if horas < 0 || minutos < 0 || minutos >= 60 {
		return 0
	}
	return horas*60 + minutos
}
