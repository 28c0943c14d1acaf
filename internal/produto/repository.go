// internal/produto/repository.go
package produto

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(p *Produto) error {
	return r.DB.Create(p).Error
}

func (r *Repository) ListarPorUsuario(usuarioID uint) ([]Produto, error) {
	var lista []Produto
	err := r.DB.Where("usuario_id = ?", usuarioID).Find(&lista).Error
	return lista, err
}

func (r *Repository) BuscarPorID(id uint) (*Produto, error) {
	var p Produto
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Atualizar(p *Produto) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Deletar(p *Produto) error {
	return r.DB.Delete(p).Error
}
