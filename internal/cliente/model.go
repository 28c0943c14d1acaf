// internal/cliente/model.go
package cliente

import (
	"time"

	"gorm.io/gorm"
)

// Cliente é o dono do veículo atendido.
type Cliente struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UsuarioID uint           `gorm:"not null;index" json:"usuarioId"`
	Nome      string         `gorm:"size:255;not null" json:"nome"`
	Telefone  string         `gorm:"size:20" json:"telefone"`
	Email     string         `gorm:"size:100" json:"email"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	VeiculoModelo string `gorm:"size:100" json:"veiculoModelo"`
	VeiculoPlaca  string `gorm:"size:10" json:"veiculoPlaca"`
	VeiculoCor    string `gorm:"size:30" json:"veiculoCor"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}
