package usuario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Arkyehub/Precifix-sub000/internal/auth"
	"github.com/Arkyehub/Precifix-sub000/internal/pagamento"
	"github.com/Arkyehub/Precifix-sub000/internal/utils"
	"github.com/gorilla/mux"
)

// request DTOs
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type criarUsuarioRequest struct {
	Nome            string  `json:"nome"`
	Sobrenome       string  `json:"sobrenome"`
	NomeEmpresa     string  `json:"nomeEmpresa"`
	Email           string  `json:"email"`
	Telefone        string  `json:"telefone"`
	Foto            string  `json:"foto"`
	Senha           string  `json:"senha"`
	CustoHoraPadrao float64 `json:"custoHoraPadrao"`
}

// Campos em ponteiro permitem omitir no JSON o que não muda
type atualizarUsuarioRequest struct {
	Nome            *string  `json:"nome,omitempty"`
	Sobrenome       *string  `json:"sobrenome,omitempty"`
	NomeEmpresa     *string  `json:"nomeEmpresa,omitempty"`
	Telefone        *string  `json:"telefone,omitempty"`
	Foto            *string  `json:"foto,omitempty"`
	CustoHoraPadrao *float64 `json:"custoHoraPadrao,omitempty"`
}

// Handler encapsula o repository de usuários
type Handler struct {
	Repo          *Repository
	PagamentoRepo *pagamento.Repository
}

func NewHandler(repo *Repository, pagamentoRepo *pagamento.Repository) *Handler {
	return &Handler{Repo: repo, PagamentoRepo: pagamentoRepo}
}

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	u, err := h.Repo.BuscarPorEmail(req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarSenha(u.Senha, req.Senha) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(u.ID, u.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// CriarUsuario cadastra novo operador (livre de autenticação) e semeia os
// métodos de pagamento padrão da conta
func (h *Handler) CriarUsuario(w http.ResponseWriter, r *http.Request) {
	var req criarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Senha == "" {
		http.Error(w, "email e senha são obrigatórios", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{
		Nome:            req.Nome,
		Sobrenome:       req.Sobrenome,
		NomeEmpresa:     req.NomeEmpresa,
		Email:           req.Email,
		Telefone:        req.Telefone,
		Foto:            req.Foto,
		Senha:           hash,
		CustoHoraPadrao: req.CustoHoraPadrao,
	}

	if err := h.Repo.Salvar(&u); err != nil {
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}

	if err := h.PagamentoRepo.SemearPadrao(u.ID); err != nil {
		// conta criada; os métodos podem ser cadastrados manualmente depois
		http.Error(w, "usuário criado, mas falhou a criação dos métodos de pagamento padrão", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(u)
}

// Perfil devolve o usuário autenticado
func (h *Handler) Perfil(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.UsuarioDoContexto(r)
	if !ok {
		http.Error(w, "não autenticado", http.StatusUnauthorized)
		return
	}

	u, err := h.Repo.BuscarPorID(id)
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}

// ListarUsuarios retorna todos os usuários (somente admin)
func (h *Handler) ListarUsuarios(w http.ResponseWriter, r *http.Request) {
	lista, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "erro ao buscar usuários", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// AtualizarUsuario altera o próprio cadastro
func (h *Handler) AtualizarUsuario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	idAutenticado, _ := auth.UsuarioDoContexto(r)
	isAdmin, _ := r.Context().Value(auth.IsAdminKey).(bool)
	if uint(id) != idAutenticado && !isAdmin {
		http.Error(w, "sem permissão para alterar este usuário", http.StatusForbidden)
		return
	}

	u, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	var req atualizarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if req.Nome != nil {
		u.Nome = *req.Nome
	}
	if req.Sobrenome != nil {
		u.Sobrenome = *req.Sobrenome
	}
	if req.NomeEmpresa != nil {
		u.NomeEmpresa = *req.NomeEmpresa
	}
	if req.Telefone != nil {
		u.Telefone = *req.Telefone
	}
	if req.Foto != nil {
		u.Foto = *req.Foto
	}
	if req.CustoHoraPadrao != nil {
		u.CustoHoraPadrao = *req.CustoHoraPadrao
	}

	if err := h.Repo.Atualizar(u); err != nil {
		http.Error(w, "erro ao atualizar usuário", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}

// DeletarUsuario remove a conta (somente admin)
func (h *Handler) DeletarUsuario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "erro ao deletar usuário", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
