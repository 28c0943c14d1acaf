package orcamento

import (
	"reflect"
	"testing"

	"github.com/Arkyehub/Precifix-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

func TestErroConflitoAgendamentoComHora(t *testing.T) {
	err := &ErroConflitoAgendamento{
		Status: models.StatusPendente,
		Data:   "2026-09-15",
		Hora:   strPtr("14:30"),
	}
	assert.Equal(t, `já existe um agendamento com status "Pendente" para este cliente em 2026-09-15 às 14:30`, err.Error())
}

func TestErroConflitoAgendamentoSemHora(t *testing.T) {
	err := &ErroConflitoAgendamento{
		Status: models.StatusAprovado,
		Data:   "2026-09-15",
	}
	assert.Equal(t, `já existe um agendamento com status "Aprovado" para este cliente em 2026-09-15 sem hora definida`, err.Error())
}

func TestRequisicaoDeTotais(t *testing.T) {
	metodoID := uint(4)
	parcelas := 3
	o := &Orcamento{
		MargemLucro:       35,
		CustosGlobais:     20,
		ValorCobrado:      450,
		MetodoPagamentoID: &metodoID,
		NumeroParcelas:    &parcelas,
		ResumoServicos: []models.ResumoServico{
			{ID: 1, Nome: "Lavagem detalhada", Preco: 150, TempoExecucaoMinutos: 90},
			{ID: 2, Nome: "Higienização interna", Preco: 300, TempoExecucaoMinutos: 120},
		},
	}

	req := RequisicaoDeTotais(o)
	assert.Equal(t, 35.0, req.MargemLucro)
	assert.Equal(t, 20.0, req.CustosGlobais)
	assert.Equal(t, &metodoID, req.MetodoPagamentoID)
	assert.Equal(t, &parcelas, req.NumeroParcelas)
	require.NotNil(t, req.ValorCobrado)
	assert.Equal(t, 450.0, *req.ValorCobrado)

	require.Len(t, req.Servicos, 2)
	assert.Equal(t, uint(1), req.Servicos[0].ServicoID)
	require.NotNil(t, req.Servicos[0].Preco)
	assert.Equal(t, 150.0, *req.Servicos[0].Preco)
	require.NotNil(t, req.Servicos[1].TempoExecucaoMinutos)
	assert.Equal(t, 120, *req.Servicos[1].TempoExecucaoMinutos)
}

func TestRequisicaoDeTotaisSemValorCobrado(t *testing.T) {
	req := RequisicaoDeTotais(&Orcamento{MargemLucro: 50})
	assert.Nil(t, req.ValorCobrado)
	assert.Empty(t, req.Servicos)
}

func TestIndiceDeAgendamentoIgnoraRegistrosDeletados(t *testing.T) {
	// o índice único de agendamento precisa ser parcial: um orçamento com soft
	// delete não pode bloquear a recriação do mesmo cliente/data/hora
	tipo := reflect.TypeOf(Orcamento{})
	for _, nome := range []string{"ClienteID", "DataServico", "HoraServico"} {
		campo, ok := tipo.FieldByName(nome)
		require.True(t, ok, nome)
		tag := campo.Tag.Get("gorm")
		assert.Contains(t, tag, "uniqueIndex:idx_agendamento", nome)
		assert.Contains(t, tag, "where:deleted_at IS NULL", nome)
	}
}

func TestValidarAgendamento(t *testing.T) {
	casos := []struct {
		nome   string
		data   *string
		hora   *string
		valido bool
	}{
		{"sem data nem hora", nil, nil, true},
		{"só data", strPtr("2026-09-15"), nil, true},
		{"data e hora", strPtr("2026-09-15"), strPtr("14:30"), true},
		{"meia-noite literal", strPtr("2026-09-15"), strPtr("00:00"), true},
		{"hora sem data", nil, strPtr("14:30"), false},
		{"data malformada", strPtr("15/09/2026"), nil, false},
		{"hora malformada", strPtr("2026-09-15"), strPtr("25h"), false},
		{"minutos fora de faixa", strPtr("2026-09-15"), strPtr("10:75"), false},
	}
	for _, c := range casos {
		msg := validarAgendamento(c.data, c.hora)
		if c.valido {
			assert.Empty(t, msg, c.nome)
		} else {
			assert.NotEmpty(t, msg, c.nome)
		}
	}
}
