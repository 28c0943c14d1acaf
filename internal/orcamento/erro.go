// internal/orcamento/erro.go
package orcamento

import "fmt"

// ErroConflitoAgendamento é devolvido quando já existe um orçamento ou venda
// para o mesmo cliente na mesma data e hora. É a única violação de regra de
// negócio que sobe como erro; cálculos malformados degradam em silêncio.
type ErroConflitoAgendamento struct {
	Status string
	Data   string
	Hora   *string
}

func (e *ErroConflitoAgendamento) Error() string {
	if e.Hora != nil {
		return fmt.Sprintf("já existe um agendamento com status %q para este cliente em %s às %s", e.Status, e.Data, *e.Hora)
	}
	return fmt.Sprintf("já existe um agendamento com status %q para este cliente em %s sem hora definida", e.Status, e.Data)
}
