// internal/cliente/repository.go
package cliente

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(c *Cliente) error {
	return r.DB.Create(c).Error
}

func (r *Repository) ListarPorUsuario(usuarioID uint) ([]Cliente, error) {
	var lista []Cliente
	err := r.DB.Where("usuario_id = ?", usuarioID).Find(&lista).Error
	return lista, err
}

func (r *Repository) BuscarPorID(id uint) (*Cliente, error) {
	var c Cliente
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Atualizar(c *Cliente) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Deletar(c *Cliente) error {
	return r.DB.Delete(c).Error
}
