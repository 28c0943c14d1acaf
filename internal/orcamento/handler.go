// internal/orcamento/handler.go
package orcamento

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Arkyehub/Precifix-sub000/internal/auth"
	"github.com/Arkyehub/Precifix-sub000/internal/cliente"
	"github.com/Arkyehub/Precifix-sub000/internal/custooperacional"
	"github.com/Arkyehub/Precifix-sub000/internal/models"
	"github.com/Arkyehub/Precifix-sub000/internal/notificacao"
	"github.com/Arkyehub/Precifix-sub000/internal/pagamento"
	"github.com/Arkyehub/Precifix-sub000/internal/precificacao"
	"github.com/Arkyehub/Precifix-sub000/internal/servico"
	"github.com/gorilla/mux"
)

// Handler gerencia rotas de orçamento
type Handler struct {
	Repo          *Repository
	ClienteRepo   *cliente.Repository
	ServicoRepo   *servico.Repository
	CustoRepo     *custooperacional.Repository
	PagamentoRepo *pagamento.Repository
}

func NewHandler(repo *Repository, clienteRepo *cliente.Repository, servicoRepo *servico.Repository, custoRepo *custooperacional.Repository, pagamentoRepo *pagamento.Repository) *Handler {
	return &Handler{
		Repo:          repo,
		ClienteRepo:   clienteRepo,
		ServicoRepo:   servicoRepo,
		CustoRepo:     custoRepo,
		PagamentoRepo: pagamentoRepo,
	}
}

// MontarServicosOrcados carrega os serviços do catálogo e aplica os ajustes
// do orçamento. Também é usado pela conversão em venda.
func (h *Handler) MontarServicosOrcados(usuarioID uint, dtos []ServicoOrcadoDTO) ([]precificacao.ServicoOrcado, error) {
	ids := make([]uint, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ServicoID)
	}
	servicos, err := h.ServicoRepo.BuscarPorIDs(usuarioID, ids)
	if err != nil {
		return nil, err
	}
	porID := make(map[uint]servico.Servico, len(servicos))
	for _, s := range servicos {
		porID[s.ID] = s
	}

	orcados := make([]precificacao.ServicoOrcado, 0, len(dtos))
	for _, dto := range dtos {
		s, ok := porID[dto.ServicoID]
		if !ok {
			return nil, errors.New("serviço não encontrado para este usuário")
		}

		o := s.ParaOrcado()
		o.PrecoOrcado = dto.Preco
		o.CustoMaoDeObraOrcado = dto.CustoMaoDeObraPorHora
		o.TempoExecucaoOrcado = dto.TempoExecucaoMinutos
		o.OutrosCustosOrcado = dto.OutrosCustos

		if dto.ProdutoIDs != nil {
			// lista vazia é ajuste válido: serviço orçado sem produtos
			ajustados := make([]precificacao.ProdutoParaCalculo, 0, len(*dto.ProdutoIDs))
			for _, p := range s.Produtos {
				for _, id := range *dto.ProdutoIDs {
					if p.ID == id {
						ajustados = append(ajustados, p.ParaCalculo())
						break
					}
				}
			}
			o.ProdutosOrcados = ajustados
		}

		orcados = append(orcados, o)
	}
	return orcados, nil
}

// CalcularTotais resolve os serviços, consulta o modo de custeio da conta e
// roda o núcleo de precificação; tudo que é I/O fica aqui fora do núcleo.
func (h *Handler) CalcularTotais(usuarioID uint, req CalcularRequest) (*TotaisResponse, error) {
	orcados, err := h.MontarServicosOrcados(usuarioID, req.Servicos)
	if err != nil {
		return nil, err
	}

	modo, err := h.CustoRepo.ModoCusteio(usuarioID)
	if err != nil {
		return nil, err
	}

	efetivos := precificacao.ResolverServicosEfetivos(orcados)
	totais, err := precificacao.CalcularTotais(efetivos, modo, req.CustosGlobais, req.MargemLucro)
	if err != nil {
		return nil, err
	}

	resp := &TotaisResponse{Totais: totais}

	base := totais.PrecoSugerido
	if req.ValorCobrado != nil && *req.ValorCobrado > 0 {
		base = *req.ValorCobrado
	}

	if req.MetodoPagamentoID != nil {
		m, err := h.PagamentoRepo.BuscarPorID(*req.MetodoPagamentoID)
		if err != nil || m.UsuarioID != usuarioID {
			return nil, errors.New("método de pagamento não encontrado")
		}
		resp.TaxaPagamento = precificacao.CalcularTaxaPagamento(base, m.ParaCalculo(), req.NumeroParcelas)
	}

	resp.PrecoFinal = base + resp.TaxaPagamento
	resp.Lucratividade = precificacao.AnalisarLucratividade(base, totais.CustoTotal)
	return resp, nil
}

// montarResumo fotografa os serviços efetivos para o JSONB do orçamento.
func montarResumo(efetivos []precificacao.ServicoEfetivo) []models.ResumoServico {
	resumo := make([]models.ResumoServico, 0, len(efetivos))
	for _, e := range efetivos {
		rs := models.ResumoServico{
			ID:                   e.ID,
			Nome:                 e.Nome,
			Preco:                e.Preco,
			TempoExecucaoMinutos: e.TempoExecucaoMinutos,
			TempoExecucao:        precificacao.FormatarMinutosParaHHMM(float64(e.TempoExecucaoMinutos)),
			Produtos:             []models.ResumoProduto{},
		}
		for _, p := range e.Produtos {
			rs.Produtos = append(rs.Produtos, models.ResumoProduto{
				ID:    p.ID,
				Nome:  p.Nome,
				Custo: precificacao.CustoPorAplicacao(p),
			})
		}
		resumo = append(resumo, rs)
	}
	return resumo
}

// validarAgendamento checa formato de data e hora antes de tocar no banco.
// A hora passa pelo codec do núcleo: um retorno 0 só é confiável se o texto
// for literalmente "00:00".
func validarAgendamento(data, hora *string) string {
	if data == nil && hora != nil {
		return "hora de serviço exige data de serviço"
	}
	if data != nil {
		if _, err := time.Parse("2006-01-02", *data); err != nil {
			return "data de serviço inválida; use o formato AAAA-MM-DD"
		}
	}
	if hora != nil && *hora != "00:00" && precificacao.ConverterHHMMParaMinutos(*hora) == 0 {
		return "hora de serviço inválida; use o formato HH:MM"
	}
	return ""
}

// Calcular trata POST /orcamentos/calcular — prévia de totais sem persistir,
// chamável a cada alteração de campo na tela.
func (h *Handler) Calcular(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	var req CalcularRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	resp, err := h.CalcularTotais(usuarioID, req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Criar trata POST /orcamentos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	var req CriarOrcamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	c, err := h.ClienteRepo.BuscarPorID(req.ClienteID)
	if err != nil || c.UsuarioID != usuarioID {
		http.Error(w, "cliente não encontrado", http.StatusBadRequest)
		return
	}

	if msg := validarAgendamento(req.DataServico, req.HoraServico); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	orcados, err := h.MontarServicosOrcados(usuarioID, req.Servicos)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	efetivos := precificacao.ResolverServicosEfetivos(orcados)

	modo, err := h.CustoRepo.ModoCusteio(usuarioID)
	if err != nil {
		http.Error(w, "erro ao consultar modo de custeio", http.StatusInternalServerError)
		return
	}
	if _, err := precificacao.CalcularTotais(efetivos, modo, req.CustosGlobais, req.MargemLucro); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o := Orcamento{
		UsuarioID:         usuarioID,
		ClienteID:         req.ClienteID,
		DataServico:       req.DataServico,
		HoraServico:       req.HoraServico,
		MargemLucro:       req.MargemLucro,
		CustosGlobais:     req.CustosGlobais,
		MetodoPagamentoID: req.MetodoPagamentoID,
		NumeroParcelas:    req.NumeroParcelas,
		ResumoServicos:    montarResumo(efetivos),
		Observacoes:       req.Observacoes,
	}
	if req.ValorCobrado != nil {
		o.ValorCobrado = *req.ValorCobrado
	}

	if err := h.Repo.Criar(&o); err != nil {
		var conflito *ErroConflitoAgendamento
		if errors.As(err, &conflito) {
			go notificacao.EnviarAlertaConflito(req.ClienteID, conflito.Data, conflito.Hora)
			http.Error(w, conflito.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "erro ao criar orçamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(o)
}

// Listar trata GET /orcamentos; aceita query param opcional `status`.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	status := r.URL.Query().Get("status")

	var lista []Orcamento
	var err error
	if status != "" {
		lista, err = h.Repo.ListarPorStatus(usuarioID, status)
	} else {
		lista, err = h.Repo.ListarPorUsuario(usuarioID)
	}
	if err != nil {
		http.Error(w, "erro ao buscar orçamentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// Buscar trata GET /orcamentos/{id}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	o, ok := h.BuscarDoUsuario(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(o)
}

// Totais trata GET /orcamentos/{id}/totais — recalcula tudo a partir do
// estado atual do catálogo, com os ajustes fotografados no resumo.
func (h *Handler) Totais(w http.ResponseWriter, r *http.Request) {
	o, ok := h.BuscarDoUsuario(w, r)
	if !ok {
		return
	}

	resp, err := h.CalcularTotais(o.UsuarioID, RequisicaoDeTotais(o))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Atualizar trata PUT /orcamentos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	o, ok := h.BuscarDoUsuario(w, r)
	if !ok {
		return
	}

	usuarioID, _ := auth.UsuarioDoContexto(r)

	var req CriarOrcamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if req.ClienteID != 0 && req.ClienteID != o.ClienteID {
		c, err := h.ClienteRepo.BuscarPorID(req.ClienteID)
		if err != nil || c.UsuarioID != usuarioID {
			http.Error(w, "cliente não encontrado", http.StatusBadRequest)
			return
		}
		o.ClienteID = req.ClienteID
	}

	if msg := validarAgendamento(req.DataServico, req.HoraServico); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	orcados, err := h.MontarServicosOrcados(usuarioID, req.Servicos)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	efetivos := precificacao.ResolverServicosEfetivos(orcados)

	modo, err := h.CustoRepo.ModoCusteio(usuarioID)
	if err != nil {
		http.Error(w, "erro ao consultar modo de custeio", http.StatusInternalServerError)
		return
	}
	if _, err := precificacao.CalcularTotais(efetivos, modo, req.CustosGlobais, req.MargemLucro); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o.DataServico = req.DataServico
	o.HoraServico = req.HoraServico
	o.MargemLucro = req.MargemLucro
	o.CustosGlobais = req.CustosGlobais
	o.MetodoPagamentoID = req.MetodoPagamentoID
	o.NumeroParcelas = req.NumeroParcelas
	o.ResumoServicos = montarResumo(efetivos)
	o.Observacoes = req.Observacoes
	if req.ValorCobrado != nil {
		o.ValorCobrado = *req.ValorCobrado
	}

	if err := h.Repo.Atualizar(o); err != nil {
		var conflito *ErroConflitoAgendamento
		if errors.As(err, &conflito) {
			go notificacao.EnviarAlertaConflito(o.ClienteID, conflito.Data, conflito.Hora)
			http.Error(w, conflito.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "erro ao atualizar orçamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(o)
}

// AtualizarStatus trata PATCH /orcamentos/{id}/status
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	o, ok := h.BuscarDoUsuario(w, r)
	if !ok {
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Status == "" {
		http.Error(w, "o campo 'status' é obrigatório", http.StatusBadRequest)
		return
	}

	switch payload.Status {
	case models.StatusPendente, models.StatusAprovado, models.StatusRecusado:
	case models.StatusConvertido:
		http.Error(w, "use a conversão em venda para este status", http.StatusBadRequest)
		return
	default:
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}

	o.Status = payload.Status
	if err := h.Repo.Atualizar(o); err != nil {
		http.Error(w, "erro ao atualizar status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(o)
}

// Deletar trata DELETE /orcamentos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	o, ok := h.BuscarDoUsuario(w, r)
	if !ok {
		return
	}

	if err := h.Repo.Deletar(o); err != nil {
		http.Error(w, "erro ao deletar orçamento", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BuscarDoUsuario resolve {id} e garante que o orçamento pertence ao usuário
// autenticado. Exportado porque a conversão em venda reusa a mesma checagem.
func (h *Handler) BuscarDoUsuario(w http.ResponseWriter, r *http.Request) (*Orcamento, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil, false
	}

	usuarioID, _ := auth.UsuarioDoContexto(r)
	o, err := h.Repo.BuscarPorID(uint(id))
	if err != nil || o.UsuarioID != usuarioID {
		http.Error(w, "orçamento não encontrado", http.StatusNotFound)
		return nil, false
	}
	return o, true
}
