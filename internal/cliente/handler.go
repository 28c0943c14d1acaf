// internal/cliente/handler.go
package cliente

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

// POST /clientes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	var c Cliente
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if c.Nome == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}
	c.ID = 0
	c.UsuarioID = usuarioID

	if err := h.Repo.Criar(&c); err != nil {
		http.Error(w, "erro ao criar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /clientes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	lista, err := h.Repo.ListarPorUsuario(usuarioID)
	if err != nil {
		http.Error(w, "erro ao buscar clientes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// GET /clientes/{id}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	c, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// PUT /clientes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	existente, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	var payload Cliente
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	existente.Nome = payload.Nome
	existente.Telefone = payload.Telefone
	existente.Email = payload.Email
	existente.VeiculoModelo = payload.VeiculoModelo
	existente.VeiculoPlaca = payload.VeiculoPlaca
	existente.VeiculoCor = payload.VeiculoCor

	if err := h.Repo.Atualizar(existente); err != nil {
		http.Error(w, "erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// DELETE /clientes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	c, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	if err := h.Repo.Deletar(c); err != nil {
		http.Error(w, "erro ao deletar cliente", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) buscarDoUsuario(w http.ResponseWriter, r *http.Request) (*Cliente, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil, false
	}

	usuarioID, _ := auth.UsuarioDoContexto(r)
	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil || c.UsuarioID != usuarioID {
		http.Error(w, "cliente não encontrado", http.StatusNotFound)
		return nil, false
	}
	return c, true
}
