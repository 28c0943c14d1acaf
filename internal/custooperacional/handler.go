// internal/custooperacional/handler.go
package custooperacional

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Arkyehub/Precifix-sub000/internal/auth"
	"github.com/Arkyehub/Precifix-sub000/internal/precificacao"
	"github.com/Arkyehub/Precifix-sub000/internal/servico"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo        *Repository
	ServicoRepo *servico.Repository
}

func NewHandler(repo *Repository, servicoRepo *servico.Repository) *Handler {
	return &Handler{Repo: repo, ServicoRepo: servicoRepo}
}

// POST /custos-operacionais
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	var c CustoOperacional
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if c.Nome == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}
	// o lançamento mensal especial só nasce pela troca explícita de modo
	if c.Nome == NomeProdutosGastosNoMes {
		http.Error(w, "use a troca de modo de custeio para criar este lançamento", http.StatusBadRequest)
		return
	}
	c.ID = 0
	c.UsuarioID = usuarioID

	if err := h.Repo.Criar(&c); err != nil {
		http.Error(w, "erro ao criar custo operacional", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /custos-operacionais
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	lista, err := h.Repo.ListarPorUsuario(usuarioID)
	if err != nil {
		http.Error(w, "erro ao buscar custos operacionais", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// PUT /custos-operacionais/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	existente, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	var payload CustoOperacional
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	// o nome do lançamento mensal é fixo; só o valor muda
	if existente.Nome != NomeProdutosGastosNoMes {
		existente.Nome = payload.Nome
	}
	existente.Valor = payload.Valor

	if err := h.Repo.Atualizar(existente); err != nil {
		http.Error(w, "erro ao atualizar custo operacional", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// DELETE /custos-operacionais/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	c, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	if c.Nome == NomeProdutosGastosNoMes {
		http.Error(w, "use a troca de modo de custeio para remover este lançamento", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Deletar(c); err != nil {
		http.Error(w, "erro ao deletar custo operacional", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /custos-operacionais/total — soma dos custos fixos, usada como sugestão
// de custos globais na tela de orçamento.
func (h *Handler) Total(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	total, err := h.Repo.SomaPorUsuario(usuarioID)
	if err != nil {
		http.Error(w, "erro ao somar custos operacionais", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]float64{"total": total})
}

// GET /custos-operacionais/modo-custeio
func (h *Handler) ModoCusteio(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	modo, err := h.Repo.ModoCusteio(usuarioID)
	if err != nil {
		http.Error(w, "erro ao consultar modo de custeio", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]precificacao.ModoCusteio{"modoCusteio": modo})
}

type trocarModoRequest struct {
	Modo      precificacao.ModoCusteio `json:"modo"`
	ValorMes  float64                  `json:"valorMes"` // valor inicial do lançamento mensal
	Confirmar bool                     `json:"confirmar"`
}

// POST /custos-operacionais/modo-custeio
//
// A troca é destrutiva: para média mensal apaga todos os vínculos
// produto-serviço; para custeio por serviço apaga o lançamento mensal. Por
// isso exige confirmação explícita no payload.
func (h *Handler) TrocarModoCusteio(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	var req trocarModoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !req.Confirmar {
		http.Error(w, "troca de modo de custeio exige confirmação explícita", http.StatusBadRequest)
		return
	}

	atual, err := h.Repo.ModoCusteio(usuarioID)
	if err != nil {
		http.Error(w, "erro ao consultar modo de custeio", http.StatusInternalServerError)
		return
	}
	if atual == req.Modo {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]precificacao.ModoCusteio{"modoCusteio": atual})
		return
	}

	switch req.Modo {
	case precificacao.CusteioMediaMensal:
		if err := h.Repo.Criar(&CustoOperacional{
			UsuarioID: usuarioID,
			Nome:      NomeProdutosGastosNoMes,
			Valor:     req.ValorMes,
		}); err != nil {
			http.Error(w, "erro ao criar lançamento mensal", http.StatusInternalServerError)
			return
		}
		if err := h.ServicoRepo.RemoverTodosVinculos(usuarioID); err != nil {
			http.Error(w, "erro ao remover vínculos produto-serviço", http.StatusInternalServerError)
			return
		}

	case precificacao.CusteioPorServico:
		mensal, err := h.Repo.BuscarProdutosGastosNoMes(usuarioID)
		if err != nil {
			http.Error(w, "erro ao consultar lançamento mensal", http.StatusInternalServerError)
			return
		}
		if mensal != nil {
			if err := h.Repo.Deletar(mensal); err != nil {
				http.Error(w, "erro ao remover lançamento mensal", http.StatusInternalServerError)
				return
			}
		}

	default:
		http.Error(w, "modo de custeio inválido", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]precificacao.ModoCusteio{"modoCusteio": req.Modo})
}

func (h *Handler) buscarDoUsuario(w http.ResponseWriter, r *http.Request) (*CustoOperacional, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil, false
	}

	usuarioID, _ := auth.UsuarioDoContexto(r)
	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil || c.UsuarioID != usuarioID {
		http.Error(w, "custo operacional não encontrado", http.StatusNotFound)
		return nil, false
	}
	return c, true
}
