// /internal/model/comprador.go
package model

import "time"

// Comprador representa um comprador cadastrado. Compradores não possuem
// anúncios; apenas navegam pela feira.
type Comprador struct {
	ID          uint   `gorm:"primaryKey"`
	Nome        string `gorm:"not null"`
	Email       string `gorm:"unique;not null"`
	SenhaHash   string `gorm:"not null"`
	Telefone    string `gorm:"size:20;not null"`
	Localizacao string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Comprador) TableName() string {
	return "compradores"
}
