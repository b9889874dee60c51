package models

import "time"

// Trilha de auditoria por barbearia. Gravada de forma assíncrona pelo
// dispatcher em internal/audit; nunca bloqueia a requisição.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint   `gorm:"index:idx_audit_shop_time,priority:1" json:"barbershop_id"`
	UserID       *uint  `json:"user_id"`
	Action       string `gorm:"size:50;not null" json:"action"`

	Entity   string `gorm:"size:50" json:"entity"`
	EntityID *uint  `json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `gorm:"index:idx_audit_shop_time,priority:2" json:"created_at"`
}
