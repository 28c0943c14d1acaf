// internal/servico/repository.go
package servico

import (
	"github.com/Arkyehub/Precifix-sub000/internal/produto"
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(s *Servico) error {
	return r.DB.Create(s).Error
}

func (r *Repository) ListarPorUsuario(usuarioID uint) ([]Servico, error) {
	var lista []Servico
	err := r.DB.Preload("Produtos").Where("usuario_id = ?", usuarioID).Find(&lista).Error
	return lista, err
}

func (r *Repository) BuscarPorID(id uint) (*Servico, error) {
	var s Servico
	if err := r.DB.Preload("Produtos").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// BuscarPorIDs retorna os serviços do usuário na ordem em que existirem no
// banco; IDs inexistentes são simplesmente ignorados.
func (r *Repository) BuscarPorIDs(usuarioID uint, ids []uint) ([]Servico, error) {
	var lista []Servico
	err := r.DB.Preload("Produtos").
		Where("usuario_id = ? AND id IN ?", usuarioID, ids).
		Find(&lista).Error
	return lista, err
}

func (r *Repository) Atualizar(s *Servico) error {
	return r.DB.Save(s).Error
}

func (r *Repository) Deletar(s *Servico) error {
	return r.DB.Delete(s).Error
}

// SubstituirProdutos troca os vínculos produto-serviço pelo conjunto recebido.
func (r *Repository) SubstituirProdutos(s *Servico, produtos []produto.Produto) error {
	return r.DB.Model(s).Association("Produtos").Replace(produtos)
}

// RemoverTodosVinculos apaga os vínculos produto-serviço de todos os serviços
// do usuário. Usado na troca destrutiva para o custeio por média mensal.
func (r *Repository) RemoverTodosVinculos(usuarioID uint) error {
	return r.DB.Exec(
		`DELETE FROM servico_produtos WHERE servico_id IN (SELECT id FROM servicos WHERE usuario_id = ?)`,
		usuarioID,
	).Error
}
