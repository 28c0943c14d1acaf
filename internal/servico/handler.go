// internal/servico/handler.go
package servico

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Arkyehub/Precifix-sub000/internal/auth"
	"github.com/Arkyehub/Precifix-sub000/internal/produto"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo        *Repository
	ProdutoRepo *produto.Repository
}

func NewHandler(repo *Repository, produtoRepo *produto.Repository) *Handler {
	return &Handler{Repo: repo, ProdutoRepo: produtoRepo}
}

type servicoRequest struct {
	Nome                  string  `json:"nome"`
	Preco                 float64 `json:"preco"`
	CustoMaoDeObraPorHora float64 `json:"custoMaoDeObraPorHora"`
	TempoExecucaoMinutos  int     `json:"tempoExecucaoMinutos"`
	OutrosCustos          float64 `json:"outrosCustos"`
}

// POST /servicos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	var req servicoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.Nome == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}

	s := Servico{
		UsuarioID:             usuarioID,
		Nome:                  req.Nome,
		Preco:                 req.Preco,
		CustoMaoDeObraPorHora: req.CustoMaoDeObraPorHora,
		TempoExecucaoMinutos:  req.TempoExecucaoMinutos,
		OutrosCustos:          req.OutrosCustos,
	}

	if err := h.Repo.Criar(&s); err != nil {
		http.Error(w, "erro ao criar serviço", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s)
}

// GET /servicos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	lista, err := h.Repo.ListarPorUsuario(usuarioID)
	if err != nil {
		http.Error(w, "erro ao buscar serviços", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// GET /servicos/{id}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	s, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

// PUT /servicos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	s, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	var req servicoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	s.Nome = req.Nome
	s.Preco = req.Preco
	s.CustoMaoDeObraPorHora = req.CustoMaoDeObraPorHora
	s.TempoExecucaoMinutos = req.TempoExecucaoMinutos
	s.OutrosCustos = req.OutrosCustos

	if err := h.Repo.Atualizar(s); err != nil {
		http.Error(w, "erro ao atualizar serviço", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

// PUT /servicos/{id}/produtos — troca os produtos vinculados ao serviço
func (h *Handler) SubstituirProdutos(w http.ResponseWriter, r *http.Request) {
	s, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	var payload struct {
		ProdutoIDs []uint `json:"produtoIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	usuarioID, _ := auth.UsuarioDoContexto(r)
	produtos := make([]produto.Produto, 0, len(payload.ProdutoIDs))
	for _, id := range payload.ProdutoIDs {
		p, err := h.ProdutoRepo.BuscarPorID(id)
		if err != nil || p.UsuarioID != usuarioID {
			http.Error(w, "produto não encontrado para este usuário", http.StatusBadRequest)
			return
		}
		produtos = append(produtos, *p)
	}

	if err := h.Repo.SubstituirProdutos(s, produtos); err != nil {
		http.Error(w, "erro ao vincular produtos", http.StatusInternalServerError)
		return
	}

	atualizado, err := h.Repo.BuscarPorID(s.ID)
	if err != nil {
		http.Error(w, "erro ao carregar serviço", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(atualizado)
}

// DELETE /servicos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	s, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	if err := h.Repo.Deletar(s); err != nil {
		http.Error(w, "erro ao deletar serviço", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) buscarDoUsuario(w http.ResponseWriter, r *http.Request) (*Servico, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil, false
	}

	usuarioID, _ := auth.UsuarioDoContexto(r)
	s, err := h.Repo.BuscarPorID(uint(id))
	if err != nil || s.UsuarioID != usuarioID {
		http.Error(w, "serviço não encontrado", http.StatusNotFound)
		return nil, false
	}
	return s, true
}
