// internal/orcamento/dto.go
package orcamento

import "github.com/Arkyehub/Precifix-sub000/internal/precificacao"

// ServicoOrcadoDTO referencia um serviço do catálogo com ajustes opcionais.
// Campos em ponteiro: nil mantém o valor do catálogo.
type ServicoOrcadoDTO struct {
	ServicoID             uint     `json:"servicoId"`
	Preco                 *float64 `json:"preco,omitempty"`
	CustoMaoDeObraPorHora *float64 `json:"custoMaoDeObraPorHora,omitempty"`
	TempoExecucaoMinutos  *int     `json:"tempoExecucaoMinutos,omitempty"`
	OutrosCustos          *float64 `json:"outrosCustos,omitempty"`
	ProdutoIDs            *[]uint  `json:"produtoIds,omitempty"`
}

// CalcularRequest é o corpo de POST /orcamentos/calcular — os mesmos campos
// aparecem embutidos na criação/atualização de orçamentos.
type CalcularRequest struct {
	Servicos      []ServicoOrcadoDTO `json:"servicos"`
	CustosGlobais float64            `json:"custosGlobais"`
	MargemLucro   float64            `json:"margemLucro"`

	MetodoPagamentoID *uint    `json:"metodoPagamentoId,omitempty"`
	NumeroParcelas    *int     `json:"numeroParcelas,omitempty"`
	ValorCobrado      *float64 `json:"valorCobrado,omitempty"`
}

// CriarOrcamentoRequest é o corpo de POST /orcamentos e PUT /orcamentos/{id}.
type CriarOrcamentoRequest struct {
	ClienteID   uint    `json:"clienteId"`
	DataServico *string `json:"dataServico,omitempty"`
	HoraServico *string `json:"horaServico,omitempty"`
	Observacoes string  `json:"observacoes"`

	CalcularRequest
}

// RequisicaoDeTotais remonta a requisição de cálculo de um orçamento salvo:
// os serviços vêm do resumo fotografado, com preço e tempo como ajustes.
func RequisicaoDeTotais(o *Orcamento) CalcularRequest {
	req := CalcularRequest{
		CustosGlobais:     o.CustosGlobais,
		MargemLucro:       o.MargemLucro,
		MetodoPagamentoID: o.MetodoPagamentoID,
		NumeroParcelas:    o.NumeroParcelas,
	}
	if o.ValorCobrado > 0 {
		valor := o.ValorCobrado
		req.ValorCobrado = &valor
	}
	for _, rs := range o.ResumoServicos {
		preco := rs.Preco
		tempo := rs.TempoExecucaoMinutos
		req.Servicos = append(req.Servicos, ServicoOrcadoDTO{
			ServicoID:            rs.ID,
			Preco:                &preco,
			TempoExecucaoMinutos: &tempo,
		})
	}
	return req
}

// TotaisResponse devolve os totais recalculados do orçamento, a taxa do
// método de pagamento e a lucratividade prospectiva.
type TotaisResponse struct {
	precificacao.Totais
	TaxaPagamento float64                    `json:"taxaPagamento"`
	PrecoFinal    float64                    `json:"precoFinal"`
	Lucratividade precificacao.Lucratividade `json:"lucratividade"`
}
