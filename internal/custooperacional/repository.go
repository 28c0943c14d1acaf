// internal/custooperacional/repository.go
package custooperacional

import (
	"errors"

	"github.com/Arkyehub/Precifix-sub000/internal/precificacao"
	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(c *CustoOperacional) error {
	return r.DB.Create(c).Error
}

func (r *Repository) ListarPorUsuario(usuarioID uint) ([]CustoOperacional, error) {
	var lista []CustoOperacional
	err := r.DB.Where("usuario_id = ?", usuarioID).Find(&lista).Error
	return lista, err
}

func (r *Repository) BuscarPorID(id uint) (*CustoOperacional, error) {
	var c CustoOperacional
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Atualizar(c *CustoOperacional) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Deletar(c *CustoOperacional) error {
	return r.DB.Delete(c).Error
}

// BuscarProdutosGastosNoMes devolve o lançamento mensal especial, ou nil se a
// conta está em custeio por serviço.
func (r *Repository) BuscarProdutosGastosNoMes(usuarioID uint) (*CustoOperacional, error) {
	var c CustoOperacional
	err := r.DB.Where("usuario_id = ? AND nome = ?", usuarioID, NomeProdutosGastosNoMes).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ModoCusteio deriva o modo da conta da existência do lançamento mensal.
func (r *Repository) ModoCusteio(usuarioID uint) (precificacao.ModoCusteio, error) {
	c, err := r.BuscarProdutosGastosNoMes(usuarioID)
	if err != nil {
		return "", err
	}
	if c != nil {
		return precificacao.CusteioMediaMensal, nil
	}
	return precificacao.CusteioPorServico, nil
}

// SomaPorUsuario devolve o total de custos operacionais cadastrados.
func (r *Repository) SomaPorUsuario(usuarioID uint) (float64, error) {
	var total float64
	err := r.DB.Model(&CustoOperacional{}).
		Where("usuario_id = ?", usuarioID).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	return total, err
}
