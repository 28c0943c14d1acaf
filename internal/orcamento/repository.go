// internal/orcamento/repository.go
package orcamento

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Orcamento
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere o orçamento; a verificação de conflito de agendamento roda na
// mesma transação do insert para fechar a janela entre checagem e escrita.
func (r *Repository) Criar(o *Orcamento) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := verificarConflito(tx, o, 0); err != nil {
			return err
		}
		return tx.Create(o).Error
	})
}

// Atualizar salva alterações, repetindo a verificação de conflito e excluindo
// o próprio registro da busca.
func (r *Repository) Atualizar(o *Orcamento) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := verificarConflito(tx, o, o.ID); err != nil {
			return err
		}
		return tx.Save(o).Error
	})
}

func (r *Repository) ListarPorUsuario(usuarioID uint) ([]Orcamento, error) {
	var lista []Orcamento
	err := r.DB.Preload("Cliente").Where("usuario_id = ?", usuarioID).Find(&lista).Error
	return lista, err
}

func (r *Repository) ListarPorStatus(usuarioID uint, status string) ([]Orcamento, error) {
	var lista []Orcamento
	err := r.DB.Preload("Cliente").
		Where("usuario_id = ? AND status = ?", usuarioID, status).
		Find(&lista).Error
	return lista, err
}

func (r *Repository) BuscarPorID(id uint) (*Orcamento, error) {
	var o Orcamento
	if err := r.DB.Preload("Cliente").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Deletar(o *Orcamento) error {
	return r.DB.Delete(o).Error
}

// verificarConflito procura outro orçamento do mesmo cliente na mesma data e
// hora (ou, sem hora, com hora também nula). Encontrou: devolve o erro de
// conflito com status e horário do registro existente.
func verificarConflito(tx *gorm.DB, o *Orcamento, ignorarID uint) error {
	if o.DataServico == nil {
		return nil
	}

	q := tx.Model(&Orcamento{}).
		Where("cliente_id = ? AND data_servico = ?", o.ClienteID, *o.DataServico)
	if o.HoraServico != nil {
		q = q.Where("hora_servico = ?", *o.HoraServico)
	} else {
		q = q.Where("hora_servico IS NULL")
	}
	if ignorarID > 0 {
		q = q.Where("id <> ?", ignorarID)
	}

	var existente Orcamento
	err := q.First(&existente).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return &ErroConflitoAgendamento{
		Status: existente.Status,
		Data:   *o.DataServico,
		Hora:   existente.HoraServico,
	}
}
