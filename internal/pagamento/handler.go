// internal/pagamento/handler.go
package pagamento

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Arkyehub/Precifix-sub000/internal/auth"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// POST /metodos-pagamento
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	var m MetodoPagamento
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	m.ID = 0
	m.UsuarioID = usuarioID

	if err := h.Repo.Criar(&m); err != nil {
		http.Error(w, "erro ao criar método de pagamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(m)
}

// GET /metodos-pagamento
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	lista, err := h.Repo.ListarPorUsuario(usuarioID)
	if err != nil {
		http.Error(w, "erro ao buscar métodos de pagamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// GET /metodos-pagamento/{id}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	m, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// PUT /metodos-pagamento/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	m, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	var payload struct {
		Tipo string  `json:"tipo"`
		Taxa float64 `json:"taxa"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	m.Tipo = payload.Tipo
	m.Taxa = payload.Taxa

	if err := h.Repo.Atualizar(m); err != nil {
		http.Error(w, "erro ao atualizar método de pagamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// PUT /metodos-pagamento/{id}/parcelas
func (h *Handler) SubstituirParcelas(w http.ResponseWriter, r *http.Request) {
	m, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	var payload struct {
		Parcelas []TaxaParcela `json:"parcelas"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	for _, p := range payload.Parcelas {
		if p.NumeroParcelas < 1 {
			http.Error(w, "número de parcelas deve ser no mínimo 1", http.StatusBadRequest)
			return
		}
	}

	if err := h.Repo.SubstituirParcelas(m.ID, payload.Parcelas); err != nil {
		http.Error(w, "erro ao atualizar parcelas", http.StatusInternalServerError)
		return
	}

	atualizado, err := h.Repo.BuscarPorID(m.ID)
	if err != nil {
		http.Error(w, "erro ao carregar método de pagamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(atualizado)
}

// DELETE /metodos-pagamento/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	m, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	if err := h.Repo.Deletar(m); err != nil {
		http.Error(w, "erro ao deletar método de pagamento", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) buscarDoUsuario(w http.ResponseWriter, r *http.Request) (*MetodoPagamento, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil, false
	}

	usuarioID, _ := auth.UsuarioDoContexto(r)
	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil || m.UsuarioID != usuarioID {
		http.Error(w, "método de pagamento não encontrado", http.StatusNotFound)
		return nil, false
	}
	return m, true
}
