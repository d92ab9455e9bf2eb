package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// assignID gives a row a fresh uuid unless the caller already chose one.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (s *Salon) BeforeCreate(*gorm.DB) error                { assignID(&s.ID); return nil }
func (c *Client) BeforeCreate(*gorm.DB) error               { assignID(&c.ID); return nil }
func (s *Staff) BeforeCreate(*gorm.DB) error                { assignID(&s.ID); return nil }
func (a *Appointment) BeforeCreate(*gorm.DB) error          { assignID(&a.ID); return nil }
func (p *Product) BeforeCreate(*gorm.DB) error              { assignID(&p.ID); return nil }
func (t *InventoryTransaction) BeforeCreate(*gorm.DB) error { assignID(&t.ID); return nil }
func (n *Notification) BeforeCreate(*gorm.DB) error         { assignID(&n.ID); return nil }
func (e *OutboxEvent) BeforeCreate(*gorm.DB) error          { assignID(&e.ID); return nil }
func (p *Payment) BeforeCreate(*gorm.DB) error              { assignID(&p.ID); return nil }
