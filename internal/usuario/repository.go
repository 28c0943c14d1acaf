// internal/usuario/repository.go
package usuario

import "gorm.io/gorm"

// Repository encapsula operações de banco para Usuario
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Salvar(u *Usuario) error {
	return r.DB.Create(u).Error
}

func (r *Repository) BuscarPorID(id uint) (*Usuario, error) {
	var u Usuario
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) BuscarPorEmail(email string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) ListarTodos() ([]Usuario, error) {
	var lista []Usuario
	err := r.DB.Find(&lista).Error
	return lista, err
}

func (r *Repository) Atualizar(u *Usuario) error {
	return r.DB.Save(u).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Usuario{}, id).Error
}
