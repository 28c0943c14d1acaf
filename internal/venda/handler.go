// internal/venda/handler.go
package venda

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/Arkyehub/Precifix-sub000/internal/auth"
	"github.com/Arkyehub/Precifix-sub000/internal/models"
	"github.com/Arkyehub/Precifix-sub000/internal/orcamento"
	"github.com/Arkyehub/Precifix-sub000/internal/pagamento"
	"github.com/Arkyehub/Precifix-sub000/internal/precificacao"
	"github.com/gorilla/mux"
)

// Handler gerencia rotas de venda e a conversão de orçamentos
type Handler struct {
	Repo          *Repository
	Orcamentos    *orcamento.Handler
	PagamentoRepo *pagamento.Repository
}

func NewHandler(repo *Repository, orcamentos *orcamento.Handler, pagamentoRepo *pagamento.Repository) *Handler {
	return &Handler{Repo: repo, Orcamentos: orcamentos, PagamentoRepo: pagamentoRepo}
}

type converterRequest struct {
	ValorCobrado  *float64 `json:"valorCobrado,omitempty"`
	ComissaoValor float64  `json:"comissaoValor"`
	ComissaoTipo  string   `json:"comissaoTipo"`
}

// ConverterOrcamento trata POST /orcamentos/{id}/converter: fotografa os
// custos do orçamento aprovado em uma venda fechada.
func (h *Handler) ConverterOrcamento(w http.ResponseWriter, r *http.Request) {
	o, ok := h.Orcamentos.BuscarDoUsuario(w, r)
	if !ok {
		return
	}

	if o.Status == models.StatusConvertido {
		http.Error(w, "orçamento já foi convertido em venda", http.StatusConflict)
		return
	}

	// corpo é opcional; EOF em corpo vazio não é erro
	var req converterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.ComissaoTipo == "" {
		req.ComissaoTipo = precificacao.ComissaoValorFixo
	}

	totais, err := h.Orcamentos.CalcularTotais(o.UsuarioID, orcamento.RequisicaoDeTotais(o))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	valorCobrado := o.ValorCobrado
	if req.ValorCobrado != nil && *req.ValorCobrado > 0 {
		valorCobrado = *req.ValorCobrado
	}
	if valorCobrado == 0 {
		valorCobrado = totais.PrecoSugerido
	}

	orcID := o.ID
	v := Venda{
		UsuarioID:         o.UsuarioID,
		ClienteID:         o.ClienteID,
		OrcamentoID:       &orcID,
		DataServico:       o.DataServico,
		HoraServico:       o.HoraServico,
		Status:            models.StatusConcluido,
		ValorCobrado:      valorCobrado,
		CustoProdutos:     totais.TotalProdutos,
		CustoMaoDeObra:    totais.TotalMaoDeObra,
		OutrosCustos:      totais.TotalOutrosCustos + totais.CustosGlobais,
		ComissaoValor:     req.ComissaoValor,
		ComissaoTipo:      req.ComissaoTipo,
		MetodoPagamentoID: o.MetodoPagamentoID,
		NumeroParcelas:    o.NumeroParcelas,
		ResumoServicos:    o.ResumoServicos,
	}

	if err := h.Repo.Criar(&v); err != nil {
		var conflito *orcamento.ErroConflitoAgendamento
		if errors.As(err, &conflito) {
			http.Error(w, conflito.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "erro ao criar venda", http.StatusInternalServerError)
		return
	}

	o.Status = models.StatusConvertido
	if err := h.Orcamentos.Repo.Atualizar(o); err != nil {
		http.Error(w, "venda criada, mas falhou a atualização do orçamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(v)
}

// Criar trata POST /vendas (venda avulsa, sem orçamento)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	var v Venda
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	v.ID = 0
	v.UsuarioID = usuarioID
	v.OrcamentoID = nil
	if v.Status == "" {
		v.Status = models.StatusConcluido
	}
	if v.ComissaoTipo == "" {
		v.ComissaoTipo = precificacao.ComissaoValorFixo
	}

	if err := h.Repo.Criar(&v); err != nil {
		var conflito *orcamento.ErroConflitoAgendamento
		if errors.As(err, &conflito) {
			http.Error(w, conflito.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "erro ao criar venda", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(v)
}

// Listar trata GET /vendas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	lista, err := h.Repo.ListarPorUsuario(usuarioID)
	if err != nil {
		http.Error(w, "erro ao buscar vendas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// Buscar trata GET /vendas/{id}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	v, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// lucratividadeResponse é o detalhamento da análise retrospectiva.
type lucratividadeResponse struct {
	ValorCobrado   float64 `json:"valorCobrado"`
	CustoProdutos  float64 `json:"custoProdutos"`
	CustoMaoDeObra float64 `json:"custoMaoDeObra"`
	OutrosCustos   float64 `json:"outrosCustos"`
	Comissao       float64 `json:"comissao"`
	TaxaPagamento  float64 `json:"taxaPagamento"`
	CustoTotal     float64 `json:"custoTotal"`

	precificacao.Lucratividade
}

// Lucratividade trata GET /vendas/{id}/lucratividade — análise retrospectiva
// da venda fechada, com comissão e taxa de pagamento somadas ao custo.
func (h *Handler) Lucratividade(w http.ResponseWriter, r *http.Request) {
	v, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	resp := lucratividadeResponse{
		ValorCobrado:   v.ValorCobrado,
		CustoProdutos:  v.CustoProdutos,
		CustoMaoDeObra: v.CustoMaoDeObra,
		OutrosCustos:   v.OutrosCustos,
		Comissao:       precificacao.ValorComissao(v.ValorCobrado, v.Comissao()),
	}

	if v.MetodoPagamentoID != nil {
		m, err := h.PagamentoRepo.BuscarPorID(*v.MetodoPagamentoID)
		if err != nil {
			http.Error(w, "erro ao carregar método de pagamento", http.StatusInternalServerError)
			return
		}
		resp.TaxaPagamento = precificacao.CalcularTaxaPagamento(v.ValorCobrado, m.ParaCalculo(), v.NumeroParcelas)
	}

	resp.CustoTotal = resp.CustoProdutos + resp.CustoMaoDeObra + resp.OutrosCustos + resp.Comissao + resp.TaxaPagamento
	resp.Lucratividade = precificacao.AnalisarLucratividade(v.ValorCobrado, resp.CustoTotal)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Campos em ponteiro permitem omitir no JSON o que não muda
type atualizarVendaRequest struct {
	DataServico       *string  `json:"dataServico,omitempty"`
	HoraServico       *string  `json:"horaServico,omitempty"`
	Status            *string  `json:"status,omitempty"`
	ValorCobrado      *float64 `json:"valorCobrado,omitempty"`
	CustoProdutos     *float64 `json:"custoProdutos,omitempty"`
	CustoMaoDeObra    *float64 `json:"custoMaoDeObra,omitempty"`
	OutrosCustos      *float64 `json:"outrosCustos,omitempty"`
	ComissaoValor     *float64 `json:"comissaoValor,omitempty"`
	ComissaoTipo      *string  `json:"comissaoTipo,omitempty"`
	MetodoPagamentoID *uint    `json:"metodoPagamentoId,omitempty"`
	NumeroParcelas    *int     `json:"numeroParcelas,omitempty"`
}

func aplicarAtualizacao(v *Venda, req atualizarVendaRequest) {
	if req.DataServico != nil {
		v.DataServico = req.DataServico
	}
	if req.HoraServico != nil {
		v.HoraServico = req.HoraServico
	}
	if req.Status != nil {
		v.Status = *req.Status
	}
	if req.ValorCobrado != nil {
		v.ValorCobrado = *req.ValorCobrado
	}
	if req.CustoProdutos != nil {
		v.CustoProdutos = *req.CustoProdutos
	}
	if req.CustoMaoDeObra != nil {
		v.CustoMaoDeObra = *req.CustoMaoDeObra
	}
	if req.OutrosCustos != nil {
		v.OutrosCustos = *req.OutrosCustos
	}
	if req.ComissaoValor != nil {
		v.ComissaoValor = *req.ComissaoValor
	}
	if req.ComissaoTipo != nil {
		v.ComissaoTipo = *req.ComissaoTipo
	}
	if req.MetodoPagamentoID != nil {
		v.MetodoPagamentoID = req.MetodoPagamentoID
	}
	if req.NumeroParcelas != nil {
		v.NumeroParcelas = req.NumeroParcelas
	}
}

// Atualizar trata PUT /vendas/{id}; campos omitidos no payload ficam como
// estão
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	v, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	var req atualizarVendaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	aplicarAtualizacao(v, req)

	if err := h.Repo.Atualizar(v); err != nil {
		var conflito *orcamento.ErroConflitoAgendamento
		if errors.As(err, &conflito) {
			http.Error(w, conflito.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "erro ao atualizar venda", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// Deletar trata DELETE /vendas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	v, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	if err := h.Repo.Deletar(v); err != nil {
		http.Error(w, "erro ao deletar venda", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) buscarDoUsuario(w http.ResponseWriter, r *http.Request) (*Venda, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil, false
	}

	usuarioID, _ := auth.UsuarioDoContexto(r)
	v, err := h.Repo.BuscarPorID(uint(id))
	if err != nil || v.UsuarioID != usuarioID {
		http.Error(w, "venda não encontrada", http.StatusNotFound)
		return nil, false
	}
	return v, true
}
