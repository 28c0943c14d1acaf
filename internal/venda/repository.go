// internal/venda/repository.go
package venda

import (
	"errors"

	"github.com/Arkyehub/Precifix-sub000/internal/orcamento"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Venda
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere a venda com a mesma proteção de agenda dos orçamentos:
// verificação e insert na mesma transação.
func (r *Repository) Criar(v *Venda) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := verificarConflito(tx, v, 0); err != nil {
			return err
		}
		return tx.Create(v).Error
	})
}

func (r *Repository) Atualizar(v *Venda) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := verificarConflito(tx, v, v.ID); err != nil {
			return err
		}
		return tx.Save(v).Error
	})
}

func (r *Repository) ListarPorUsuario(usuarioID uint) ([]Venda, error) {
	var lista []Venda
	err := r.DB.Preload("Cliente").Where("usuario_id = ?", usuarioID).Find(&lista).Error
	return lista, err
}

func (r *Repository) BuscarPorID(id uint) (*Venda, error) {
	var v Venda
	if err := r.DB.Preload("Cliente").First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) Deletar(v *Venda) error {
	return r.DB.Delete(v).Error
}

func verificarConflito(tx *gorm.DB, v *Venda, ignorarID uint) error {
	if v.DataServico == nil {
		return nil
	}

	q := tx.Model(&Venda{}).
		Where("cliente_id = ? AND data_servico = ?", v.ClienteID, *v.DataServico)
	if v.HoraServico != nil {
		q = q.Where("hora_servico = ?", *v.HoraServico)
	} else {
		q = q.Where("hora_servico IS NULL")
	}
	if ignorarID > 0 {
		q = q.Where("id <> ?", ignorarID)
	}

	var existente Venda
	err := q.First(&existente).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return &orcamento.ErroConflitoAgendamento{
		Status: existente.Status,
		Data:   *v.DataServico,
		Hora:   existente.HoraServico,
	}
}
