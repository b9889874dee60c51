package models

import "time"

// Barbeiro (funcionário) da barbearia. A disponibilidade semanal fica
// em jsonb: chaves monday..sunday, cada dia em um dos dois formatos
// legados (lista de horários ou intervalo start/end).
type Barber struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	BarbershopID uint       `gorm:"index" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	AvatarURL   string `gorm:"size:255" json:"avatar_url"`
	Active      bool   `gorm:"default:true" json:"active"`

	Availability JSON `gorm:"type:jsonb" json:"availability"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
