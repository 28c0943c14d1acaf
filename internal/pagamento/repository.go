// internal/pagamento/repository.go
package pagamento

import (
	"github.com/Arkyehub/Precifix-sub000/internal/precificacao"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para MetodoPagamento
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(m *MetodoPagamento) error {
	return r.DB.Create(m).Error
}

func (r *Repository) ListarPorUsuario(usuarioID uint) ([]MetodoPagamento, error) {
	var lista []MetodoPagamento
	err := r.DB.Preload("Parcelas").Where("usuario_id = ?", usuarioID).Find(&lista).Error
	return lista, err
}

func (r *Repository) BuscarPorID(id uint) (*MetodoPagamento, error) {
	var m MetodoPagamento
	if err := r.DB.Preload("Parcelas").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Atualizar(m *MetodoPagamento) error {
	return r.DB.Save(m).Error
}

func (r *Repository) Deletar(m *MetodoPagamento) error {
	return r.DB.Delete(m).Error
}

// SubstituirParcelas troca todas as faixas de parcelas do método dentro de uma
// transação única.
func (r *Repository) SubstituirParcelas(metodoID uint, parcelas []TaxaParcela) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("metodo_pagamento_id = ?", metodoID).Delete(&TaxaParcela{}).Error; err != nil {
			return err
		}
		for i := range parcelas {
			parcelas[i].ID = 0
			parcelas[i].MetodoPagamentoID = metodoID
		}
		if len(parcelas) == 0 {
			return nil
		}
		return tx.Create(&parcelas).Error
	})
}

// SemearPadrao cria os métodos de pagamento iniciais de uma conta nova:
// dinheiro, pix, débito e crédito de 1 a 12 parcelas sem taxa.
func (r *Repository) SemearPadrao(usuarioID uint) error {
	metodos := []MetodoPagamento{
		{UsuarioID: usuarioID, Tipo: precificacao.PagamentoDinheiro},
		{UsuarioID: usuarioID, Tipo: precificacao.PagamentoPix},
		{UsuarioID: usuarioID, Tipo: precificacao.PagamentoCartaoDebito},
	}

	credito := MetodoPagamento{UsuarioID: usuarioID, Tipo: precificacao.PagamentoCartaoCredito}
	for n := 1; n <= 12; n++ {
		credito.Parcelas = append(credito.Parcelas, TaxaParcela{NumeroParcelas: n})
	}
	metodos = append(metodos, credito)

	return r.DB.Create(&metodos).Error
}
