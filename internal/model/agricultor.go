// /internal/model/agricultor.go
package model

import "time"

// Agricultor representa um vendedor cadastrado na plataforma.
// É dono de zero ou mais anúncios de Cultivo.
type Agricultor struct {
	ID          uint   `gorm:"primaryKey"`
	Nome        string `gorm:"not null"`
	Email       string `gorm:"unique;not null"`
	SenhaHash   string `gorm:"not null"`
	Telefone    string `gorm:"size:20;not null"`
	Localizacao string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Agricultor) TableName() string {
	return "agricultores"
}
