// internal/produto/handler.go
package produto

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Arkyehub/Precifix-sub000/internal/auth"
	"github.com/Arkyehub/Precifix-sub000/internal/precificacao"
	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// validarCadastro garante a pré-condição do cálculo: volume positivo evita a
// divisão por zero dentro do núcleo.
func validarCadastro(p *Produto) string {
	if p.Nome == "" {
		return "nome é obrigatório"
	}
	if p.VolumeGalaoML <= 0 {
		return "volume do galão deve ser maior que zero"
	}
	if p.Tipo != precificacao.TipoDiluido && p.Tipo != precificacao.TipoProntoUso {
		return "tipo deve ser 'diluido' ou 'pronto_uso'"
	}
	if p.FatorDiluicao < 0 {
		return "fator de diluição não pode ser negativo"
	}
	return ""
}

// POST /produtos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	var p Produto
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	p.ID = 0
	p.UsuarioID = usuarioID
	if p.Tipo == "" {
		p.Tipo = precificacao.TipoDiluido
	}

	if msg := validarCadastro(&p); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	if err := h.Repo.Criar(&p); err != nil {
		http.Error(w, "erro ao criar produto", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// GET /produtos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, _ := auth.UsuarioDoContexto(r)

	lista, err := h.Repo.ListarPorUsuario(usuarioID)
	if err != nil {
		http.Error(w, "erro ao buscar produtos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// GET /produtos/{id}
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	p, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// GET /produtos/{id}/custo-aplicacao
func (h *Handler) CustoAplicacao(w http.ResponseWriter, r *http.Request) {
	p, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	if p.VolumeGalaoML <= 0 {
		http.Error(w, "produto com volume inválido; corrija o cadastro", http.StatusUnprocessableEntity)
		return
	}

	custo := precificacao.CustoPorAplicacao(p.ParaCalculo())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]float64{"custoPorAplicacao": custo})
}

// PUT /produtos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	existente, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	var payload Produto
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	existente.Nome = payload.Nome
	existente.Tipo = payload.Tipo
	existente.PrecoGalao = payload.PrecoGalao
	existente.VolumeGalaoML = payload.VolumeGalaoML
	existente.FatorDiluicao = payload.FatorDiluicao
	existente.ConsumoPorVeiculoML = payload.ConsumoPorVeiculoML

	if msg := validarCadastro(existente); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	if err := h.Repo.Atualizar(existente); err != nil {
		http.Error(w, "erro ao atualizar produto", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// DELETE /produtos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	p, ok := h.buscarDoUsuario(w, r)
	if !ok {
		return
	}

	if err := h.Repo.Deletar(p); err != nil {
		http.Error(w, "erro ao deletar produto", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) buscarDoUsuario(w http.ResponseWriter, r *http.Request) (*Produto, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil, false
	}

	usuarioID, _ := auth.UsuarioDoContexto(r)
	p, err := h.Repo.BuscarPorID(uint(id))
	if err != nil || p.UsuarioID != usuarioID {
		http.Error(w, "produto não encontrado", http.StatusNotFound)
		return nil, false
	}
	return p, true
}
